package capacity

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Client, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewClient(sqlxDB), mock, func() { sqlxDB.Close() }
}

func TestForDate(t *testing.T) {
	client, mock, closer := setupMock(t)
	defer closer()

	ids := []string{"tpl-1", "tpl-2"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM get_capacity_for_classes($1::uuid[], $2::date)")).
		WithArgs(pq.Array(ids), "2024-06-10").
		WillReturnRows(sqlmock.NewRows([]string{
			"aula_id", "max_alunos", "vagas_disponiveis", "current_inscricoes", "is_full", "waitlist_count",
		}).
			AddRow("tpl-1", 12, 3, 9, false, 0).
			AddRow("tpl-2", 8, 0, 8, true, 2))

	result, err := client.ForDate(context.Background(), ids, "2024-06-10")
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, 3, result["tpl-1"].Available)
	assert.False(t, result["tpl-1"].IsFull)
	assert.True(t, result["tpl-2"].IsFull)
	assert.Equal(t, 2, result["tpl-2"].Waitlist)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForDateEmptyInput(t *testing.T) {
	client, mock, closer := setupMock(t)
	defer closer()

	result, err := client.ForDate(context.Background(), nil, "2024-06-10")
	require.NoError(t, err)
	assert.Empty(t, result)

	// No query should reach the database for an empty batch.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForDatePropagatesError(t *testing.T) {
	client, mock, closer := setupMock(t)
	defer closer()

	mock.ExpectQuery(regexp.QuoteMeta("FROM get_capacity_for_classes")).
		WillReturnError(context.DeadlineExceeded)

	_, err := client.ForDate(context.Background(), []string{"tpl-1"}, "2024-06-10")
	assert.Error(t, err)
}
