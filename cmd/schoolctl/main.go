package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"edusuite_backend/internals/configs"
	database "edusuite_backend/internals/databases"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "schoolctl",
		Short:   "Operator tasks for the EduSuite backend",
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configs.LoadEnv()
		},
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(createSuperAdminCmd())
	rootCmd.AddCommand(sweepFeesCmd())
	rootCmd.AddCommand(pruneCacheCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// open loads config and connects; callers close the pool.
func open() (*configs.Config, *gorm.DB, error) {
	cfg, err := configs.Load()
	if err != nil {
		return nil, nil, err
	}
	configs.SetupLogger(cfg.Env, cfg.LogLevel)
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
