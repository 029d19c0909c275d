package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:           "vizserve",
	Short:         "Serve HTML visualizations from a folder",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Bundle the visualizations into a txtar archive",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to a TOML configuration file")
	flags.StringP("dir", "d", defaultDir, "Base folder holding the visualizations")
	flags.Bool("strict", false, "Fail listing requests when the base folder is missing")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().String("host", defaultHost, "Host to listen on")
	rootCmd.Flags().IntP("port", "p", defaultPort, "Port to listen on (overrides PORT)")
	rootCmd.Flags().Float64("rate-limit", 0, "Requests per second allowed across all clients, 0 disables limiting")
	rootCmd.Flags().Int("rate-burst", 0, "Burst size for the rate limiter")
	rootCmd.Flags().Duration("shutdown-timeout", defaultShutdownTimeout, "Graceful shutdown timeout")

	exportCmd.Flags().Bool("all", false, "Include every file, not only visualizations")
	exportCmd.Flags().StringP("output", "o", "", "Write the archive to a file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// commandConfig resolves the configuration for cmd. Only flags set on the
// command line override the file and environment values.
func commandConfig(cmd *cobra.Command) (Config, error) {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	config, err := loadConfig(configPath, os.Getenv)
	if err != nil {
		return config, err
	}
	if err := applyFlags(&config, flags); err != nil {
		return config, err
	}
	return config, config.validate()
}

func applyFlags(config *Config, flags *pflag.FlagSet) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "dir":
			config.Dir, err = flags.GetString(f.Name)
		case "host":
			config.Host, err = flags.GetString(f.Name)
		case "port":
			config.Port, err = flags.GetInt(f.Name)
		case "strict":
			config.Strict, err = flags.GetBool(f.Name)
		case "verbose":
			config.Verbose, err = flags.GetBool(f.Name)
		case "rate-limit":
			config.RateLimit, err = flags.GetFloat64(f.Name)
		case "rate-burst":
			config.RateBurst, err = flags.GetInt(f.Name)
		case "shutdown-timeout":
			config.ShutdownTimeout, err = flags.GetDuration(f.Name)
		}
	})
	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runServe(cmd *cobra.Command, _ []string) error {
	config, err := commandConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), config.Verbose)
	slog.SetDefault(logger)

	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).WithTextStyle(pterm.NewStyle(pterm.FgLightWhite)).Println("vizserve")
	pterm.Info.Printfln("Serving %s at http://%s", config.Dir, config.addr())

	return listenAndServe(config, logger)
}

func runExport(cmd *cobra.Command, _ []string) error {
	config, err := commandConfig(cmd)
	if err != nil {
		return err
	}
	all, _ := cmd.Flags().GetBool("all")
	output, _ := cmd.Flags().GetString("output")

	out := cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer closeAndIgnoreError(f)
		out = f
	}

	result, err := exportArchive(out, config.Dir, all)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	printer := pterm.Success.WithWriter(cmd.ErrOrStderr())
	printer.Printfln("Exported %d files from %s (%s)", result.Files, config.Dir, result.Digest)
	return nil
}
