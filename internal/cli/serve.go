package cli

import (
	"fmt"
	"os"

	"auction-house/internal/config"
	"auction-house/internal/server"
	"auction-house/utils"

	"github.com/spf13/cobra"
)

func serveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the auction house over HTTP",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			utils.SetOutput(os.Stdout)
			level := cfg.Log.Level
			if opts.debug {
				level = "debug"
			}
			if err := utils.SetLevel(level); err != nil {
				return fmt.Errorf("log level %q: %w", level, err)
			}

			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			router := server.SetupRouter(svc)

			utils.Info("starting auction server", map[string]any{"port": cfg.Server.Port})
			if err := router.Run(cfg.Server.Port); err != nil {
				utils.Error("server stopped", map[string]any{"error": err.Error()})
				return fmt.Errorf("failed to start server: %w", err)
			}
			return nil
		},
	}
}
