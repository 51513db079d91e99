package cli

import (
	"github.com/spf13/cobra"

	"personal-assistant/internal/config"
	"personal-assistant/internal/logging"
	"personal-assistant/internal/repository/sqlite"
	"personal-assistant/internal/seed"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the starter projects and rituals, then exit",
		Long:  "Seeds the starter catalog into the configured database. Safe to run repeatedly: catalogs that already have rows are skipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			repo, err := sqlite.New(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer repo.Close()

			return seed.Run(cmd.Context(), repo, logger)
		},
	}
}
