package booking

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newBooking() *domain.Booking {
	return &domain.Booking{
		Date:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Time:      "10:00",
		FullName:  "Иван Петров",
		Email:     "ivan@example.com",
		Phone:     "+79990001122",
		Category:  domain.CategoryApplicant,
		Messenger: domain.MessengerNone,
		Status:    domain.StatusPending,
	}
}

func bookingRow(id int64, status domain.BookingStatus) *sqlmock.Rows {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(bookingColumns).AddRow(
		id, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "10:00:00",
		"Иван Петров", "ivan@example.com", "+79990001122",
		"applicant", "telegram", "@ivan", "", string(status),
		now, now, nil,
	)
}

func TestRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs("2025-06-10", types.TimeString("10:00"), "Иван Петров", "ivan@example.com", "+79990001122",
			domain.CategoryApplicant, domain.MessengerNone, "", "", domain.StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))

	created, err := repo.Create(context.Background(), newBooking())
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_bookings_active_slot"})

	_, err := repo.Create(context.Background(), newBooking())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestRepository_Create_KeepsDriverError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	serialization := &pq.Error{Code: "40001"}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).WillReturnError(serialization)

	_, err := repo.Create(context.Background(), newBooking())
	assert.ErrorIs(t, err, ErrExecQuery)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestRepository_GetActiveBySlot_LocksInsideTransaction(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE .+ LIMIT 1 FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(bookingColumns))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	_, err = repo.GetActiveBySlot(ctx, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "10:00")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetActiveBySlot_NoLockOutsideTransaction(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE .+ LIMIT 1$`).
		WillReturnRows(bookingRow(3, domain.StatusPending))

	b, err := repo.GetActiveBySlot(context.Background(), time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "10:00")
	require.NoError(t, err)
	assert.Equal(t, int64(3), b.ID)
	assert.Equal(t, types.TimeString("10:00"), b.Time)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE deleted_at IS NULL AND id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(bookingRow(5, domain.StatusConfirmed))

	b, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Equal(t, domain.MessengerTelegram, b.Messenger)
	assert.Nil(t, b.DeletedAt)

	mock.ExpectQuery(`SELECT .+ FROM bookings`).WithArgs(int64(6)).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(context.Background(), 6)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_List_Filters(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	status := domain.StatusPending
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE deleted_at IS NULL AND \(full_name ILIKE \$1 OR email ILIKE \$2 OR phone ILIKE \$3\) AND status = \$4 AND date >= \$5 ORDER BY created_at DESC, id DESC`).
		WithArgs(`%50\%%`, `%50\%%`, `%50\%%`, domain.StatusPending, "2025-06-01").
		WillReturnRows(bookingRow(1, domain.StatusPending).AddRow(
			2, from, "11:00", "Анна", "anna@example.com", "+7", "parent", "none", "", "q", "pending", from, from, nil,
		))

	list, err := repo.List(context.Background(), domain.BookingsFilter{Search: " 50% ", Status: &status, From: &from})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, domain.CategoryParent, list[1].Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOccupiedTimes(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT time FROM bookings WHERE date = \$1 AND status <> \$2 ORDER BY time ASC`).
		WithArgs("2025-06-10", domain.StatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"time"}).AddRow("10:00").AddRow("14:00"))

	times, err := repo.GetOccupiedTimes(context.Background(), time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "14:00"}, times)
}

func TestRepository_UpdateStatus(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE deleted_at IS NULL AND id = \$2 RETURNING`).
		WithArgs(domain.StatusConfirmed, int64(4)).
		WillReturnRows(bookingRow(4, domain.StatusConfirmed))

	b, err := repo.UpdateStatus(context.Background(), 4, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, b.Status)

	mock.ExpectQuery(`UPDATE bookings`).WillReturnError(&pq.Error{Code: "23505"})
	_, err = repo.UpdateStatus(context.Background(), 4, domain.StatusPending)
	assert.ErrorIs(t, err, ErrSlotTaken)

	mock.ExpectQuery(`UPDATE bookings`).WillReturnRows(sqlmock.NewRows(bookingColumns))
	_, err = repo.UpdateStatus(context.Background(), 99, domain.StatusPending)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_SoftDelete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, deleted_at = NOW\(\), updated_at = NOW\(\) WHERE deleted_at IS NULL AND id = \$2`).
		WithArgs(domain.StatusCancelled, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SoftDelete(context.Background(), 4))

	mock.ExpectExec(`UPDATE bookings`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SoftDelete(context.Background(), 4), ErrBookingNotFound)
}
