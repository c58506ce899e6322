package main

import (
	"spi-eshop-be/internal/model"
	"spi-eshop-be/pkg/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the store tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		if err := database.Migrate(db, model.All()...); err != nil {
			return err
		}
		okf("✔ migrated %d tables\n", len(model.All()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
