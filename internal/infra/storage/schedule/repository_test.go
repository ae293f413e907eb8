package schedule

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestRepository_GetEntriesForDayOfWeek(t *testing.T) {
	repo, mock := newRepo(t)
	clock := func(h, m int) time.Time { return time.Date(0, 1, 1, h, m, 0, 0, time.UTC) }

	mock.ExpectQuery(`SELECT ws.id, .+ FROM work_schedule ws LEFT JOIN consultants c ON c.id = ws.consultant_id WHERE ws.day_of_week = \$1 AND ws.is_active = \$2 ORDER BY ws.start_time ASC, ws.id ASC`).
		WithArgs(2, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "day_of_week", "start_time", "end_time", "consultant_id", "name", "is_active"}).
			AddRow(1, 2, clock(9, 0), clock(11, 0), 1, "Мария", true).
			AddRow(2, 2, "14:30:00", "16:00:00", nil, nil, true))

	entries, err := repo.GetEntriesForDayOfWeek(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, types.TimeString("09:00"), entries[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), entries[0].EndTime)
	require.NotNil(t, entries[0].ConsultantName)
	assert.Equal(t, "Мария", *entries[0].ConsultantName)

	assert.Equal(t, types.TimeString("14:30"), entries[1].StartTime)
	assert.Nil(t, entries[1].ConsultantID)
	assert.Nil(t, entries[1].ConsultantName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IsDateBlocked(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS ( SELECT 1 FROM blocked_dates WHERE date = $1 )")).
		WithArgs("2025-06-10").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	blocked, err := repo.IsDateBlocked(context.Background(), time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestRepository_AddBlockedDate(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()
	reason := "Праздник"

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blocked_dates (date,reason,consultant_id) VALUES ($1,$2,$3) RETURNING id, created_at")).
		WithArgs("2025-06-12", &reason, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))

	bd, err := repo.AddBlockedDate(context.Background(), &domain.BlockedDate{
		Date:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Reason: &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), bd.ID)

	mock.ExpectQuery(`INSERT INTO blocked_dates`).WillReturnError(&pq.Error{Code: "23505"})
	_, err = repo.AddBlockedDate(context.Background(), &domain.BlockedDate{Date: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)})
	assert.ErrorIs(t, err, ErrDateAlreadyBlocked)
}

func TestRepository_GetBlockedDates(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT bd.id, .+ FROM blocked_dates bd LEFT JOIN consultants c ON c.id = bd.consultant_id ORDER BY bd.date ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "reason", "consultant_id", "name", "created_at"}).
			AddRow(1, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), "Праздник", nil, nil, now))

	dates, err := repo.GetBlockedDates(context.Background())
	require.NoError(t, err)
	require.Len(t, dates, 1)
	require.NotNil(t, dates[0].Reason)
	assert.Equal(t, "Праздник", *dates[0].Reason)
	assert.Nil(t, dates[0].ConsultantID)
}

func TestRepository_RemoveBlockedDate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM blocked_dates WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.RemoveBlockedDate(context.Background(), 3))

	mock.ExpectExec(`DELETE FROM blocked_dates`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.RemoveBlockedDate(context.Background(), 4), ErrBlockedDateNotFound)
}
