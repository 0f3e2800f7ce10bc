package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/metrics"
	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/server"
	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/store"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the gRPC server",
	Long:  "Commands related to running the gRPC server.",
}

var runServerCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the gRPC server",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if flags.Changed("addr") {
			cfg.ListenAddr, _ = flags.GetString("addr")
		}
		if flags.Changed("metrics-addr") {
			cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
		}
		if flags.Changed("database-url") {
			cfg.DatabaseURL, _ = flags.GetString("database-url")
		}
		if flags.Changed("default-limit") {
			cfg.DefaultLimit, _ = flags.GetUint32("default-limit")
		}
		if flags.Changed("queue-capacity") {
			cfg.QueueCapacity, _ = flags.GetInt("queue-capacity")
		}
		if flags.Changed("max-pool-size") {
			cfg.MaxPoolSize, _ = flags.GetInt("max-pool-size")
		}
		if flags.Changed("strict-mail") {
			cfg.StrictMail, _ = flags.GetBool("strict-mail")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		st, err := store.Open(ctx, cfg.DatabaseURL, store.Options{MaxPoolSize: cfg.MaxPoolSize})
		if err != nil {
			return err
		}
		defer func() {
			if err := st.Close(); err != nil {
				logger.Warn().Err(err).Msg("closing store")
			}
		}()

		logger.Info().
			Str("addr", cfg.ListenAddr).
			Uint32("default_limit", cfg.DefaultLimit).
			Int("queue_capacity", cfg.QueueCapacity).
			Bool("strict_mail", cfg.StrictMail).
			Msg("starting gRPC user service")

		return server.Run(ctx, cfg.ListenAddr, st, server.Options{
			DefaultLimit:  cfg.DefaultLimit,
			QueueCapacity: cfg.QueueCapacity,
			StrictMail:    cfg.StrictMail,
			MetricsAddr:   cfg.MetricsAddr,
			Logger:        logger,
			Metrics:       metrics.New(),
		})
	},
}

func init() {
	runServerCmd.Flags().StringP("addr", "a", "0.0.0.0:9090", "Address to listen on")
	runServerCmd.Flags().String("metrics-addr", "", "Address for the /metrics endpoint (disabled when empty)")
	runServerCmd.Flags().StringP("database-url", "d", "memory://",
		"Store connection string (postgres://, mysql://, sqlite://, redis://, memory://)")
	runServerCmd.Flags().Uint32("default-limit", 1024, "Rows returned by ListUsers when the request sets no limit")
	runServerCmd.Flags().Int("queue-capacity", 1024, "Users buffered per ListUsers stream")
	runServerCmd.Flags().Int("max-pool-size", 10, "Maximum store connections")
	runServerCmd.Flags().Bool("strict-mail", false, "Reject trailing text after a valid mail address")

	serverCmd.AddCommand(runServerCmd)
	rootCmd.AddCommand(serverCmd)
}
