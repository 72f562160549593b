package cmd

import (
	"monument-catalog/feature/monument"

	"github.com/spf13/cobra"
)

// migrateCmd creates or updates the catalog tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime()
		if err != nil {
			return err
		}
		db, err := rt.openDatabase()
		if err != nil {
			return err
		}
		if err := monument.NewRepository(db).Migrate(); err != nil {
			return err
		}
		rt.logger.Info("Catalog tables migrated")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
