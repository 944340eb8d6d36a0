package main

import (
	"fmt"

	"github.com/spf13/cobra"

	database "edusuite_backend/internals/databases"
)

func migrateCmd() *cobra.Command {
	var skipSeed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables and seed the curricula",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := open()
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("auto migrate: %w", err)
			}
			if !skipSeed {
				if err := database.SeedCurricula(cmd.Context(), db); err != nil {
					return fmt.Errorf("seed curricula: %w", err)
				}
			}
			fmt.Println("migration complete")
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "do not seed the curricula table")
	return cmd
}
