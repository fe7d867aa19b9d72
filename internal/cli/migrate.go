package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/db"
)

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every table and index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			theDB, err := db.Open(cfg.DB, log)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close(theDB) }()

			if err := db.AutoMigrateAll(theDB); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrated %d tables (%s)\n", len(db.Models()), cfg.DB.Driver)
			return nil
		},
	}
}
