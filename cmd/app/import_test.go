package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magscene/magsav-api/internal/domain"
)

type fakeImporter struct {
	entity  string
	content string
	dryRun  bool
	calls   int
}

func (f *fakeImporter) Import(_ context.Context, entity string, r io.Reader, dryRun bool) (domain.ImportResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return domain.ImportResult{}, err
	}
	f.calls++
	f.entity, f.content, f.dryRun = entity, string(raw), dryRun

	return domain.ImportResult{BatchID: "batch", Entity: entity, Rows: 1, Created: 1, DryRun: dryRun, Errors: []string{}}, nil
}

func runImport(t *testing.T, open importerFactory, args ...string) (string, error) {
	t.Helper()

	configPath := "config.yml"
	cmd := newImportCmd(&configPath, open)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestImportCmd_DryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.csv")
	require.NoError(t, os.WriteFile(path, []byte("nom;type\nFestival Nord;client\n"), 0o600))

	fake := &fakeImporter{}
	var gotConfig string
	open := func(configPath string) (importer, error) {
		gotConfig = configPath
		return fake, nil
	}

	out, err := runImport(t, open, "societes", path, "--dry-run")
	require.NoError(t, err)

	assert.Equal(t, "config.yml", gotConfig)
	assert.Equal(t, "societes", fake.entity)
	assert.True(t, fake.dryRun)
	assert.Equal(t, "nom;type\nFestival Nord;client\n", fake.content)

	var result domain.ImportResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "batch", result.BatchID)
	assert.True(t, result.DryRun)
}

func TestImportCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"nom":"Son"}]`), 0o600))

	fake := &fakeImporter{}
	_, err := runImport(t, func(string) (importer, error) { return fake, nil }, "categories", path)
	require.NoError(t, err)

	assert.Equal(t, "categories", fake.entity)
	assert.False(t, fake.dryRun)
}

func TestImportCmd_Rejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.csv")
	require.NoError(t, os.WriteFile(path, []byte("nom\nx\n"), 0o600))

	fake := &fakeImporter{}
	open := func(string) (importer, error) { return fake, nil }

	_, err := runImport(t, open, "produits", path)
	assert.ErrorContains(t, err, `unknown entity "produits"`)

	_, err = runImport(t, open, "societes")
	assert.Error(t, err)

	_, err = runImport(t, open, "societes", filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Zero(t, fake.calls)

	boom := errors.New("database unreachable")
	_, err = runImport(t, func(string) (importer, error) { return nil, boom }, "societes", path)
	assert.ErrorIs(t, err, boom)
}
