package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository"
	"github.com/magscene/magsav-api/internal/repository/dao"
	"github.com/magscene/magsav-api/internal/service"
)

type importer interface {
	Import(ctx context.Context, entity string, r io.Reader, dryRun bool) (domain.ImportResult, error)
}

// importerFactory opens whatever the importer writes to.
type importerFactory func(configPath string) (importer, error)

func newDBImporter(configPath string) (importer, error) {
	_, postgresDB, err := bootstrap(configPath)
	if err != nil {
		return nil, err
	}

	preferences := repository.NewPreferenceRepository(dao.NewPreferenceDAO(postgresDB))

	return service.NewImportService(service.ImportStores{
		Societes:    repository.NewSocieteRepository(dao.NewSocieteDAO(postgresDB)),
		Vehicules:   repository.NewVehiculeRepository(dao.NewVehiculeDAO(postgresDB)),
		Categories:  service.NewCategoryService(repository.NewCategoryRepository(dao.NewCategoryDAO(postgresDB)), nil),
		Specialites: service.NewSpecialiteService(preferences),
	}, nil), nil
}

func newImportCmd(configPath *string, open importerFactory) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:       "import <" + strings.Join(service.ImportEntities, "|") + "> <file>",
		Short:     "Import a CSV file or a JSON configuration file into the database",
		Example:   "  magsav import societes ./clients.csv --dry-run\n  magsav import categories ./categories.json",
		Args:      cobra.MatchAll(cobra.ExactArgs(2), validEntity),
		ValidArgs: service.ImportEntities,
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, path := args[0], args[1]

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("os.Open -> %w", err)
			}
			defer f.Close()

			imp, err := open(*configPath)
			if err != nil {
				return err
			}

			result, err := imp.Import(cmd.Context(), entity, f, dryRun)
			if err != nil {
				return fmt.Errorf("importer.Import -> %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(result)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing")

	return cmd
}

func validEntity(_ *cobra.Command, args []string) error {
	if slices.Contains(service.ImportEntities, args[0]) {
		return nil
	}

	return fmt.Errorf("unknown entity %q, expected one of %s", args[0], strings.Join(service.ImportEntities, ", "))
}
