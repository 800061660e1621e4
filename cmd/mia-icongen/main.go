package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/horsimann/mia/go/miatools/internal/buildinfo"
	"github.com/horsimann/mia/go/miatools/pkg/logging"
	"github.com/horsimann/mia/go/miatools/pkg/mia/iconset"
)

var (
	templatePath string
	outputDir    string
	logLevel     string
	versionFlag  bool
	rootCmd      *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "mia-icongen",
		Short: "Derive favicon, web and Android launcher icons from a pixel-art template",
		Long: `Scales a small square template up by whole pixels and writes
favicon.ico, icon180/196/512.png and mipmap-*/ic_launcher.png.`,
		Args:          cobra.NoArgs,
		RunE:          generateIcons,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.Flags().StringVar(&templatePath, "template", iconset.DefaultTemplate, "Template image (PNG, BMP or WebP)")
	rootCmd.Flags().StringVar(&outputDir, "dir", ".", "Directory the icons are written to")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, json[:level])")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generateIcons(cmd *cobra.Command, args []string) error {
	if versionFlag {
		buildinfo.Write(cmd.OutOrStdout(), "mia-icongen")
		return nil
	}

	level, source := logging.ResolveLevel(logLevel, "MIA_ICONGEN_LOG_LEVEL", "MIA_LOG_LEVEL")
	logger := logging.NewLogger(logging.Options{Name: "mia-icongen", Level: level})
	logger.Debug("🔧 Log level resolved", "level", level, "source", source)

	g := iconset.NewGenerator(iconset.Options{Template: templatePath, OutputDir: outputDir}, logger)
	if _, err := g.Run(); err != nil {
		logger.Error("❌ Icon generation failed", "error", err)
		return err
	}
	return nil
}
