package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_CountPublishedBetween(t *testing.T) {
	conn, mock := newMockConnection(t)
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM posts WHERE status = \$1 AND user_id = \$2 AND created_at >= \$3 AND created_at < \$4`).
		WithArgs("published", "user-1", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	total, err := NewPostRepository(conn).CountPublishedBetween(context.Background(), "user-1", start, end)

	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
