package migrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMigration(t *testing.T, dir, name, sql string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(sql), 0o644))
}

func TestApplyRunsPendingInVersionOrder(t *testing.T) {
	dir := t.TempDir()
	// V10 sorts after V2 numerically even though it sorts before it
	// lexically.
	writeMigration(t, dir, "V10__add_notes.sql", "ALTER TABLE a ADD COLUMN notes TEXT")
	writeMigration(t, dir, "V1__init.sql", "CREATE TABLE a (id INT)")
	writeMigration(t, dir, "V2__add_b.sql", "CREATE TABLE b (id INT)")
	writeMigration(t, dir, "README.txt", "not a migration")

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS schema_migrations`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT name FROM schema_migrations`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("V1__init.sql"))

	mock.ExpectExec(`CREATE TABLE b \(id INT\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO schema_migrations \(name\) VALUES \(\$1\)`).
		WithArgs("V2__add_b.sql").
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectExec(`ALTER TABLE a ADD COLUMN notes TEXT`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO schema_migrations \(name\) VALUES \(\$1\)`).
		WithArgs("V10__add_notes.sql").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, Apply(db, dir))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParseVersion(t *testing.T) {
	version, ok := parseVersion("V3__add_x.sql")
	assert.True(t, ok)
	assert.Equal(t, 3, version)

	_, ok = parseVersion("003_add_x.sql")
	assert.False(t, ok)

	_, ok = parseVersion("Vten__add_x.sql")
	assert.False(t, ok)
}
