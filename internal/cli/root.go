package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/lanscout/internal/config"
	"github.com/MrSnakeDoc/lanscout/internal/logger"
)

// options are flags shared by every command. Set flags win over the environment.
type options struct {
	serviceFile string
	logLevel    string
	listen      string
}

// NewRootCmd builds the lanscout command tree. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "lanscout",
		Short:         "LAN service status dashboard",
		Long:          `lanscout probes the TCP ports of local services and serves their status as JSON and a small dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.serviceFile, "services", "s", "", "path to services.yaml (overrides LANSCOUT_SERVICE_FILE)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides LANSCOUT_LOG_LEVEL)")
	flags.StringVarP(&opts.listen, "listen", "l", "", "listen address, e.g. :5050 (overrides LANSCOUT_LISTEN_PORT)")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newScanCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *options) *config.Config {
	cfg := config.Load()
	flags := cmd.Flags()
	if flags.Changed("services") {
		cfg.ServiceFile = opts.serviceFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("listen") {
		cfg.ListenPort = opts.listen
	}
	return cfg
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.New(cfg.LogLevel, cfg.PrettyLog)
}
