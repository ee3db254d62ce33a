package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/hailam/tokenfiles/internal/adapters/factory"
	"github.com/hailam/tokenfiles/internal/adapters/fswriter"
	"github.com/hailam/tokenfiles/internal/adapters/hclconfig"
	"github.com/hailam/tokenfiles/internal/adapters/tokens"
	"github.com/hailam/tokenfiles/internal/application"
	"github.com/hailam/tokenfiles/internal/logging"
	"github.com/hailam/tokenfiles/internal/ports"

	// Formats and templates register themselves with the factory.
	_ "github.com/hailam/tokenfiles/internal/adapters/css"
	_ "github.com/hailam/tokenfiles/internal/adapters/csv"
	_ "github.com/hailam/tokenfiles/internal/adapters/dxf"
	_ "github.com/hailam/tokenfiles/internal/adapters/html"
	_ "github.com/hailam/tokenfiles/internal/adapters/json"
	_ "github.com/hailam/tokenfiles/internal/adapters/pdf"
	_ "github.com/hailam/tokenfiles/internal/adapters/png"
	_ "github.com/hailam/tokenfiles/internal/adapters/txt"
	_ "github.com/hailam/tokenfiles/internal/adapters/xlsx"
	_ "github.com/hailam/tokenfiles/internal/adapters/xml"
)

// Variables to hold flag values
var (
	configPath string
	tokensPath string
	outRoot    string
	platforms  []string
	workers    int
	logLevel   string
	logFormat  string
	quiet      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tokenfiles",
		Short: "Generates platform files from a resolved design-token dictionary.",
		Long: `tokenfiles reads a resolved token dictionary (JSON) and a platform file (HCL)
and writes every file each platform lists, using the named format or template.`,
		SilenceUsage: true,
	}

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build all (or the selected) platforms.",
		Args:  cobra.NoArgs,
		RunE:  runBuild,
	}
	buildCmd.Flags().StringVarP(&configPath, "config", "c", "platforms.hcl", "Path to the HCL platform file")
	buildCmd.Flags().StringVarP(&tokensPath, "tokens", "t", "tokens.json", "Path to the resolved token dictionary")
	buildCmd.Flags().StringVarP(&outRoot, "out", "o", ".", "Directory the build paths are relative to")
	buildCmd.Flags().StringSliceVarP(&platforms, "platform", "p", nil, "Only build the named platform (repeatable)")
	buildCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Files generated concurrently per platform (0 = sequential)")
	buildCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable the progress spinner")

	formatsCmd := &cobra.Command{
		Use:   "formats",
		Short: "List the available formats and templates.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range factory.RegisteredFormats() {
				fmt.Fprintf(cmd.OutOrStdout(), "format    %s\n", name)
			}
			for _, name := range factory.RegisteredTemplates() {
				fmt.Fprintf(cmd.OutOrStdout(), "template  %s\n", name)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.AddCommand(buildCmd, formatsCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints errors automatically, but we exit non-zero
		os.Exit(1)
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := logging.New(logLevel, logFormat, os.Stderr)
	ctx = logging.WithLogger(ctx, logger)

	// --- Composition Root: Initialize Adapters and Core Logic ---
	writers := func(p *ports.PlatformConfig) ports.FileWriter {
		return fswriter.New(outRoot, p.BuildPath, logger)
	}
	service := application.NewBuildService(tokens.New(), hclconfig.New(factory.NewRegistry()), writers, logger)
	// --- End Composition Root ---

	if !quiet {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Suffix = " loading"
		s.Start()
		defer s.Stop()
		service.OnPlatform = func(name string, index, total int) {
			s.Lock()
			s.Suffix = fmt.Sprintf(" building %s (%d/%d)", name, index+1, total)
			s.Unlock()
		}
	}

	err := service.Build(ctx, application.BuildRequest{
		TokensPath: tokensPath,
		ConfigPath: configPath,
		Platforms:  platforms,
		Workers:    workers,
	})
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	logging.FromContext(ctx).Info("build complete")
	return nil
}
