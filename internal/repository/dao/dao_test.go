package dao

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	dbMock, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbMock.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: dbMock,
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	return db, mock
}

func TestSocieteDAO_Insert(t *testing.T) {
	db, mock := setupMockDB(t)
	d := NewSocieteDAO(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "societes"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	created, err := d.Insert(context.Background(), Societe{Type: "client", Nom: "Festival Nord"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocieteDAO_FindByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	d := NewSocieteDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "societes" WHERE "societes"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "nom"}))

	_, err := d.FindByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrSocieteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocieteDAO_SearchByNom_EscapesPattern(t *testing.T) {
	db, mock := setupMockDB(t)
	d := NewSocieteDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "societes" WHERE nom ILIKE $1 ORDER BY nom`)).
		WithArgs(`%50\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "nom"}).AddRow(1, "client", "Remise 50%"))

	found, err := d.SearchByNom(context.Background(), "50%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Remise 50%", found[0].Nom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocieteDAO_Delete_Missing(t *testing.T) {
	db, mock := setupMockDB(t)
	d := NewSocieteDAO(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "societes" WHERE "societes"."id" = $1`)).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := d.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, ErrSocieteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocieteDAO_Stats(t *testing.T) {
	db, mock := setupMockDB(t)
	d := NewSocieteDAO(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS total`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "clients", "fournisseurs", "manufacturiers", "avec_email"}).
			AddRow(10, 6, 3, 1, 8))

	stats, err := d.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SocieteStats{Total: 10, Clients: 6, Fournisseurs: 3, Manufacturiers: 1, AvecEmail: 8}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehiculeDAO_Insert_DuplicateImmatriculation(t *testing.T) {
	db, mock := setupMockDB(t)
	d := NewVehiculeDAO(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "vehicules"`)).
		WillReturnError(&pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			ConstraintName: "idx_vehicules_immatriculation",
			Message:        `duplicate key value violates unique constraint "idx_vehicules_immatriculation"`,
		})
	mock.ExpectRollback()

	_, err := d.Insert(context.Background(), Vehicule{Immatriculation: "AB-123-CD", TypeVehicule: "VL", Statut: "DISPONIBLE"})
	assert.ErrorIs(t, err, ErrImmatriculationExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehiculeDAO_FindPage(t *testing.T) {
	db, mock := setupMockDB(t)
	d := NewVehiculeDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "vehicules" WHERE statut = $1`)).
		WithArgs("DISPONIBLE").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "vehicules" WHERE statut = $1 ORDER BY immatriculation`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "immatriculation", "statut"}).AddRow(21, "ZZ-999-ZZ", "DISPONIBLE"))

	vehicules, total, err := d.FindPage(context.Background(), VehiculeFilter{Statut: "DISPONIBLE"}, 20, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, vehicules, 1)
	assert.Equal(t, "ZZ-999-ZZ", vehicules[0].Immatriculation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehiculeDAO_UpdateStatut_Missing(t *testing.T) {
	db, mock := setupMockDB(t)
	d := NewVehiculeDAO(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "vehicules" SET "statut"=$1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := d.UpdateStatut(context.Background(), 4, "MAINTENANCE")
	assert.ErrorIs(t, err, ErrVehiculeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommandeDAO_CountByNumeroPrefix(t *testing.T) {
	db, mock := setupMockDB(t)
	d := NewCommandeDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "commandes" WHERE numero_commande LIKE $1`)).
		WithArgs("CMD-20240307-%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := d.CountByNumeroPrefix(context.Background(), "CMD-20240307-")
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommandeDAO_UpdateStatut(t *testing.T) {
	db, mock := setupMockDB(t)
	d := NewCommandeDAO(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "commandes" SET "statut"=$1`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, d.UpdateStatut(context.Background(), 2, "ENVOYEE"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceDAO_Get_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	d := NewPreferenceDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "preferences" WHERE key = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

	_, err := d.Get(context.Background(), "current_theme")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoogleConfigDAO_UpdateTokens(t *testing.T) {
	db, mock := setupMockDB(t)
	d := NewGoogleConfigDAO(db)
	expiry := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "google_configs" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, d.UpdateTokens(context.Background(), 1, "access", "refresh", "Bearer", &expiry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
}
