package templater

import (
	"fmt"
	"io"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// unsafePathChar matches anything Android's native build chokes on in the
// project path.
var unsafePathChar = regexp.MustCompile(`[^A-Za-z0-9_./-]`)

// WriteSummary echoes the run configuration.
func WriteSummary(w io.Writer, cfg Config) {
	id := cfg.Identity()
	fmt.Fprintf(w, "namespace    = %s\n", id.Namespace)
	fmt.Fprintf(w, "domain       = %s\n", id.Domain)
	fmt.Fprintf(w, "app          = %s\n", id.AppName)
	fmt.Fprintf(w, "app lower    = %s\n", id.AppLower())
	fmt.Fprintf(w, "logo         = %s\n", cfg.Logo())
	for _, f := range Features {
		fmt.Fprintf(w, "--%-11s = %t\n", f.Name, cfg.Enabled(f.Name))
	}
}

// UnsafeWorkingDir reports whether dir contains characters outside
// [A-Za-z0-9_./-]. The volume name and separators of the host OS are
// accepted.
func UnsafeWorkingDir(dir string) bool {
	dir = strings.TrimPrefix(dir, filepath.VolumeName(dir))
	return unsafePathChar.MatchString(filepath.ToSlash(dir))
}

// WriteGuidance prints the next steps after a successful run. cwd is the
// directory the project was generated in.
func WriteGuidance(w io.Writer, cfg Config, layout Layout, cwd string) {
	id := cfg.Identity()
	project := path.Join(filepath.ToSlash(layout.OutputDir), id.AppLower())
	activity := path.Join(project, layout.RenamedTemplateFile(mainJavaFile(layout), id))

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("~ ", 32))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Open the generated Hello World app in Android Studio and test it")
	fmt.Fprintln(w)

	if cfg.Enabled("admob") {
		fmt.Fprintf(w, "AdMob: replace your ad app id in -> %s\n", path.Join(project, "app/src/main/AndroidManifest.xml"))
		fmt.Fprintf(w, "AdMob: replace your ad reward id in -> %s\n", activity)
		fmt.Fprintln(w)
	}
	if cfg.Enabled("billing") {
		fmt.Fprintf(w, "Billing: replace your billing product ids in -> %s\n", activity)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "You should now be ready to compile your own app in Android Studio")

	if UnsafeWorkingDir(cwd) {
		warn := color.New(color.FgYellow, color.Bold)
		fmt.Fprintln(w)
		warn.Fprintln(w, "WARNING, GENERATED DIRECTORY CONTAINS A SPECIAL CHARACTER OR SPACES!")
		warn.Fprintln(w, "  MOVE IT TO ANOTHER LOCATION!")
		fmt.Fprintf(w, "    pwd is: <%s>\n", cwd)
		fmt.Fprintln(w, `    e.g. C:\android\mia on windows`)
	}
}

// mainJavaFile is the Java template file inside the skeleton package, the
// activity users edit.
func mainJavaFile(layout Layout) string {
	prefix := path.Join(layout.JavaRoot, strings.Trim(layout.SkeletonPackage, "/")) + "/"
	for _, rel := range layout.TemplateFiles {
		if strings.HasPrefix(rel, prefix) && strings.HasSuffix(rel, ".java") {
			return rel
		}
	}
	return prefix + "Main.java"
}
