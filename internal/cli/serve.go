package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suraj274001/bulk-image-renamer/internal/config"
	"github.com/suraj274001/bulk-image-renamer/internal/logging"
	"github.com/suraj274001/bulk-image-renamer/internal/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the rename HTTP server",
	Long: `Run the HTTP server exposing POST /rename.

Settings come from the environment: RENAMER_PORT (default 3000),
RENAMER_OUTPUT_DIR (default "renamed"), RENAMER_MAX_UPLOAD_MB
(default 50) and RENAMER_DEBUG.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		log := logging.New(cfg.Debug)
		defer func() { _ = log.Sync() }()

		router := routes.SetupRouter(cfg, log)
		log.Info("listening",
			zap.Int("port", cfg.Port),
			zap.String("outputDir", cfg.OutputDir))

		if err := router.Run(cfg.Addr()); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	},
}
