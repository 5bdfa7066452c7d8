package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveInstructorPartialUpdate(t *testing.T) {
	db, mock := newMockDB(t)

	// Only the supplied columns appear in the statement; everything
	// else is left alone.
	mock.ExpectExec(`UPDATE instructors SET name_ko = \$1, title_ko = \$2, updated_at = now\(\) WHERE id = \$3`).
		WithArgs("김철수", "수석 코치", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := SaveInstructor(db, InstructorInput{
		ID:      int64Ptr(5),
		NameKo:  strPtr("김철수"),
		TitleKo: strPtr("수석 코치"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveInstructorUpdateWithoutFields(t *testing.T) {
	db, mock := newMockDB(t)

	// Nothing to write, nothing hits the database.
	id, err := SaveInstructor(db, InstructorInput{ID: int64Ptr(9)})
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveInstructorUpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE instructors SET name = \$1, updated_at = now\(\) WHERE id = \$2`).
		WithArgs("Nobody", int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := SaveInstructor(db, InstructorInput{ID: int64Ptr(404), Name: strPtr("Nobody")})
	require.Error(t, err)
	svcErr, ok := err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 404, svcErr.Status)
}

func TestSaveInstructorInsert(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO instructors \(name, email\) VALUES \(\$1, \$2\) RETURNING id`).
		WithArgs("Jane Doe", "jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	id, err := SaveInstructor(db, InstructorInput{
		Name:  strPtr("Jane Doe"),
		Email: strPtr("jane@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveInstructorInsertRequiresName(t *testing.T) {
	db, mock := newMockDB(t)

	_, err := SaveInstructor(db, InstructorInput{Title: strPtr("Coach")})
	require.Error(t, err)
	svcErr, ok := err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 400, svcErr.Status)

	_, err = SaveInstructor(db, InstructorInput{Name: strPtr("   ")})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorByIDMissing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM instructors WHERE id = \$1`).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	item, err := InstructorByID(db, 12)
	require.NoError(t, err)
	assert.Nil(t, item)
}
