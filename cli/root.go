// Package cli implements the board command line.
package cli

import (
	"context"
	"fmt"

	"github.com/reikouwu/House-Liber-Arce/pkg/config"
	"github.com/reikouwu/House-Liber-Arce/pkg/logger"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "board",
		Short:             "House Liber Arce staff board server",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: SetupGlobalConfig,
	}
	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file")
	flags.String("env-file", ".env", "Path to an environment file loaded when present")
	flags.String("log-level", "", "Log level: debug, info, warn, error or disabled")
	flags.Bool("log-json", false, "Emit logs as JSON")
	flags.Bool("log-source", false, "Include source locations in logs")

	root.AddCommand(
		ServeCmd(),
		MigrateCmd(),
		SectionsCmd(),
		VersionCmd(),
	)
	return root
}

// SetupGlobalConfig loads the env file, resolves configuration from defaults,
// YAML, environment and flags, then installs the logger. Both are attached to
// the command context.
func SetupGlobalConfig(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := loadEnvFile(cmd); err != nil {
		return err
	}
	sources := make([]config.Source, 0, 2)
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if configFile != "" {
		sources = append(sources, config.NewYAMLProvider(configFile))
	}
	sources = append(sources, config.NewCLIProvider(extractCLIFlags(cmd)))
	cfg, err := config.NewService().Load(ctx, sources...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	_, _, logSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	level, err := logger.ParseLevel(cfg.Runtime.LogLevel)
	if err != nil {
		return err
	}
	log := logger.SetupLogger(level, cfg.Runtime.LogJSON, logSource)
	ctx = config.ContextWithConfig(ctx, cfg)
	ctx = logger.ContextWithLogger(ctx, log)
	cmd.SetContext(ctx)
	return nil
}
