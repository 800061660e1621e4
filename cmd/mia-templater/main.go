package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/horsimann/mia/go/miatools/internal/buildinfo"
	"github.com/horsimann/mia/go/miatools/internal/console"
	"github.com/horsimann/mia/go/miatools/pkg/logging"
	"github.com/horsimann/mia/go/miatools/pkg/mia/archive"
	"github.com/horsimann/mia/go/miatools/pkg/mia/templater"
)

var (
	configPath    string
	logLevel      string
	archiveFormat string
	noWait        bool
	versionFlag   bool
	featureFlags  map[string]*bool
	rootCmd       *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "mia-templater <namespace> <domain> <app-name> [logo]",
		Short: "Create a renamed Android project from the mia skeleton",
		Long: `Copies the mia Android skeleton to out/<app>, fills in the package
name and app name, enables the selected features and renames the Java
package directories. The logo defaults to "debug".`,
		Example:       "  mia-templater de horsimann Tea\n  mia-templater de horsimann Tea release --fullscreen --admob",
		Args:          checkArgs,
		RunE:          runTemplate,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a layout JSON file overriding the default paths")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, json[:level])")
	rootCmd.Flags().StringVar(&archiveFormat, "archive", "", "Also pack the project as tar, tar.gz/tgz or tar.bz2/tbz2")
	rootCmd.Flags().BoolVar(&noWait, "no-wait", false, "Exit without waiting for a keypress")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	featureFlags = make(map[string]*bool, len(templater.Features))
	for _, f := range templater.Features {
		featureFlags[f.Name] = rootCmd.Flags().Bool(f.Name, false, "Enable "+f.Name)
	}
}

func checkArgs(cmd *cobra.Command, args []string) error {
	if versionFlag {
		return nil
	}
	return cobra.RangeArgs(3, 4)(cmd, args)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTemplate(cmd *cobra.Command, args []string) error {
	if versionFlag {
		buildinfo.Write(cmd.OutOrStdout(), "mia-templater")
		return nil
	}

	identity := templater.Identity{Namespace: args[0], Domain: args[1], AppName: args[2]}
	var logo string
	if len(args) > 3 {
		logo = args[3]
	}
	var features []string
	for _, f := range templater.Features {
		if *featureFlags[f.Name] {
			features = append(features, f.Name)
		}
	}

	cfg, err := templater.NewConfig(identity, logo, features...)
	if err != nil {
		return err
	}

	var format archive.Format
	if archiveFormat != "" {
		if format, err = archive.ParseFormat(archiveFormat); err != nil {
			return err
		}
	}

	// input is valid, from here on failures are not usage errors
	cmd.SilenceUsage = true

	level, source := logging.ResolveLevel(logLevel, "MIA_TEMPLATER_LOG_LEVEL", "MIA_LOG_LEVEL")
	logger := logging.NewLogger(logging.Options{Name: "mia-templater", Level: level})
	logger.Debug("🔧 Log level resolved", "level", level, "source", source)

	templater.WriteSummary(cmd.OutOrStdout(), cfg)

	layout, err := templater.LoadLayout(configPath)
	if err != nil {
		return err
	}

	project, err := templater.NewMaterializer(layout, logger).Materialize(cfg)
	if err != nil {
		logger.Error("❌ Materialization failed", "error", err)
		return err
	}

	if format != nil {
		a := archive.New(format, layout.FileMode(), logger.Named("archive"))
		dst := a.PathFor(project)
		entries, err := a.Create(project, dst)
		if err != nil {
			logger.Error("❌ Archiving failed", "error", err)
			return err
		}
		if err := a.Verify(dst, entries); err != nil {
			return err
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	templater.WriteGuidance(cmd.OutOrStdout(), cfg, layout, cwd)

	if noWait {
		return nil
	}
	return console.WaitForKey(os.Stdin)
}
