package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/magscene/magsav-api/internal/repository/dao"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, postgresDB, err := bootstrap(*configPath)
			if err != nil {
				return err
			}

			if err = dao.InitTables(postgresDB); err != nil {
				return fmt.Errorf("failed to migrate the database -> %w", err)
			}

			zap.L().Info("database schema is up to date")

			return nil
		},
	}
}
