package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hbagde424/ElectionAT-sub001/internal/app"
	httpserver "github.com/hbagde424/ElectionAT-sub001/internal/http"
)

func serveCommand() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, cfg, log)
			if err != nil {
				log.Error("Failed to initialize app", "error", err)
				log.Sync()
				return err
			}
			defer a.Close()
			a.Start()

			log.Info("Server starting", "addr", a.Addr(), "env", cfg.Env, "version", cfg.Version)
			if err := httpserver.NewServer(a.Router).Run(ctx, a.Addr()); err != nil {
				log.Error("Server failed", "error", err)
				return err
			}
			log.Info("Server stopped")
			return nil
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides PORT)")
	return cmd
}
