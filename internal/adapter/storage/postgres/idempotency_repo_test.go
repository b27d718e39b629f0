package postgres

import (
	"context"
	"testing"
	"time"

	"fractional-asset-registry/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIdempotencyRepo(mock, domain.IdempotencyWindow)
	log := &domain.IdempotencyLog{
		Key:          "0xaa:mint:req-001",
		StatusCode:   201,
		ResponseJSON: []byte(`{"success":true}`),
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectExec("INSERT INTO idempotency_logs .+ ON CONFLICT \\(key\\) DO UPDATE .+ WHERE idempotency_logs.created_at < \\$5").
		WithArgs(log.Key, log.StatusCode, log.ResponseJSON, log.CreatedAt, log.CreatedAt.Add(-domain.IdempotencyWindow)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), log)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRepo_Create_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIdempotencyRepo(mock, time.Hour)
	mock.ExpectExec("INSERT INTO idempotency_logs").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(assert.AnError)

	err = repo.Create(context.Background(), &domain.IdempotencyLog{Key: "k"})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestIdempotencyRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewIdempotencyRepo(mock, time.Hour)
	repo.now = func() time.Time { return now }

	mock.ExpectQuery("SELECT .+ FROM idempotency_logs\\s+WHERE key = \\$1 AND created_at >= \\$2").
		WithArgs("0xaa:mint:req-001", now.Add(-time.Hour)).
		WillReturnRows(pgxmock.NewRows([]string{"key", "status_code", "response_json", "created_at"}).
			AddRow("0xaa:mint:req-001", 201, []byte(`{"success":true}`), now.Add(-time.Minute)))

	result, err := repo.Get(context.Background(), "0xaa:mint:req-001")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 201, result.StatusCode)
	assert.Equal(t, []byte(`{"success":true}`), result.ResponseJSON)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyRepo_Get_NotFoundOrExpired(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIdempotencyRepo(mock, time.Hour)

	mock.ExpectQuery("SELECT .+ FROM idempotency_logs").
		WithArgs("0xaa:buy:stale", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"key", "status_code", "response_json", "created_at"}))

	result, err := repo.Get(context.Background(), "0xaa:buy:stale")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
