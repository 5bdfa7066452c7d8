package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAiTrendMissingRow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM ai_trend_section ORDER BY id LIMIT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	item, err := AiTrend(db)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestSaveAiTrendPartialUpdate(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE ai_trend_section SET title_ko = \$1, link_url = \$2, updated_at = now\(\) WHERE id = \$3`).
		WithArgs("새 제목", "https://example.com/trends", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := SaveAiTrend(db, AiTrendInput{
		ID:      int64Ptr(1),
		TitleKo: strPtr("새 제목"),
		LinkURL: strPtr("https://example.com/trends"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAiTrendInsertRequiresFields(t *testing.T) {
	db, mock := newMockDB(t)

	_, err := SaveAiTrend(db, AiTrendInput{})
	require.Error(t, err)
	svcErr, ok := err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 400, svcErr.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
