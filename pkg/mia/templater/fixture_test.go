package templater

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var skeletonFiles = map[string]string{
	"app/jni/mia/Android.mk": `LOCAL_MODULE := @@@package_underscored@@@
#@@@USE_ADMOB@@@LOCAL_CFLAGS += -DMIA_ADMOB
#@@@USE_FULLSCREEN@@@LOCAL_CFLAGS += -DMIA_FULLSCREEN
#@@@USE_WINDOW@@@LOCAL_CFLAGS += -DMIA_WINDOW
`,
	"app/src/main/java/de/horsimann/mia/Main.java": `package @@@package_dotted@@@;
//@@@USE_ADMOB@@@import com.google.android.gms.ads.MobileAds;
//@@@USE_BILLING@@@import com.android.billingclient.api.BillingClient;
public class Main {
    static { System.loadLibrary("@@@package_slashed@@@"); }
}
`,
	"app/src/main/AndroidManifest.xml": `<manifest package="@@@package_dotted@@@">
<!--@@@USE_ADMOB@@@<meta-data android:name="admob"/>@@@USE_ADMOB@@@-->
<!--@@@USE_FULLSCREEN@@@<fullscreen/>@@@USE_FULLSCREEN@@@-->
</manifest>
`,
	"app/build.gradle": `applicationId "@@@package_dotted@@@"
//@@@USE_BILLING@@@implementation "com.android.billingclient:billing:6.0.1"
`,
	"app/src/main/res/values/strings.xml": `<string name="app_name">@@@app_name@@@</string>
`,
	"app/src/main/res/values/styles.xml": `<style>
<!--@@@USE_WINDOW@@@<item name="windowed"/>@@@USE_WINDOW@@@-->
<!--@@@USE_FULLSCREEN@@@<item name="fullscreen"/>@@@USE_FULLSCREEN@@@-->
</style>
`,
	"gradlew": "#!/bin/sh\n",
}

// fixture lays out a mia checkout below a temp dir and returns a layout
// pointing at it.
func fixture(t *testing.T) Layout {
	t.Helper()
	root := t.TempDir()

	put := func(rel, content string) {
		t.Helper()
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	for rel, content := range skeletonFiles {
		put("android/in/"+rel, content)
	}
	put("include/mia.h", "#pragma once\n")
	put("src/main.c", "int main() { return 0; }\n")
	put("res/img/splash.png", "png")
	for _, logo := range []string{"debug", "release"} {
		for _, d := range DefaultLayout().Densities {
			put("logo/"+logo+"/mipmap-"+d+"/ic_launcher.png", logo+"-"+d)
		}
	}

	layout := DefaultLayout()
	layout.SkeletonDir = filepath.Join(root, "android", "in")
	layout.OutputDir = filepath.Join(root, "android", "out")
	layout.IncludeDir = filepath.Join(root, "include")
	layout.SourceDir = filepath.Join(root, "src")
	layout.ResourceDir = filepath.Join(root, "res")
	layout.LogoDir = filepath.Join(root, "logo")
	return layout
}

func mustConfig(t *testing.T, ns, domain, app string, features ...string) Config {
	t.Helper()
	cfg, err := NewConfig(Identity{Namespace: ns, Domain: domain, AppName: app}, "", features...)
	require.NoError(t, err)
	return cfg
}
