package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/magscene/magsav-api/internal/config"
	"github.com/magscene/magsav-api/internal/db"
	"github.com/magscene/magsav-api/internal/logger"
)

const defaultConfigPath = "./cmd/app/config.yml"

// Execute runs the magsav command line. Without a subcommand it serves the
// API.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "magsav",
		Short:         "MAGSAV back office API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path of the YAML configuration file")

	root.AddCommand(
		newServeCmd(&configPath),
		newMigrateCmd(&configPath),
		newImportCmd(&configPath, newDBImporter),
	)

	return root
}

// bootstrap loads the configuration, installs the logger and opens the
// database shared by every subcommand.
func bootstrap(configPath string) (*config.AppConfig, *gorm.DB, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger -> %w", err)
	}

	var postgresDB *gorm.DB
	if conf.DatabaseURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(conf.DatabaseURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database -> %w", err)
	}

	return conf, postgresDB, nil
}
