// Package cli holds the electionat command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbagde424/ElectionAT-sub001/internal/app"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

// RootCommand builds the command tree. serve is also what runs without a subcommand.
func RootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "electionat",
		Short:         "Election administration API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd := serveCommand()
	rootCmd.RunE = serveCmd.RunE
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(
		serveCmd,
		migrateCommand(),
		seedCommand(),
		createAdminCommand(),
		importMongoCommand(),
	)
	return rootCmd
}

func Execute(ctx context.Context) error {
	return RootCommand().ExecuteContext(ctx)
}

// bootstrap loads configuration and builds the logger every command shares.
func bootstrap() (app.Config, *logger.Logger, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return app.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.LogMode())
	if err != nil {
		return app.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

// withApp runs fn against a fully wired application and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	a, err := app.New(cmd.Context(), cfg, log)
	if err != nil {
		log.Sync()
		return err
	}
	defer a.Close()
	return fn(a)
}
