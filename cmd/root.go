package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/config"
	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/logging"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	// cfg and logger are populated before any subcommand runs.
	cfg    config.Config
	logger zerolog.Logger
)

// rootCmd is the base command for the CLI.  It delegates to
// subcommands defined in client.go and server.go.  See init
// functions in those files for flag definitions.
var rootCmd = &cobra.Command{
	Use:   "usersvc",
	Short: "CLI for the gRPC user service",
	Long:  "Command line interface to run the gRPC user service and interact with it as a client.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}
		logger, err = logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
		return err
	},
	SilenceUsage: true,
}

// Execute runs the root command.  It should be invoked from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath,
		"config", "c", "", "Path to a YAML config file")

	rootCmd.PersistentFlags().StringVar(&logLevel,
		"log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.PersistentFlags().StringVar(&logFormat,
		"log-format", "console", "Log format (console or json)")
}
