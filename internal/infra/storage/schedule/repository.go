package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConsultationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

var entryColumns = []string{
	"ws.id",
	"ws.day_of_week",
	"ws.start_time",
	"ws.end_time",
	"ws.consultant_id",
	"c.name",
	"ws.is_active",
}

var blockedDateColumns = []string{
	"bd.id",
	"bd.date",
	"bd.reason",
	"bd.consultant_id",
	"c.name",
	"bd.created_at",
}

// Repository хранилище рабочего расписания и заблокированных дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetEntriesForDayOfWeek активные окна приема на день недели (1 = понедельник)
// Порядок: по времени начала, затем по id, чтобы выдача слотов была стабильной
func (r *Repository) GetEntriesForDayOfWeek(ctx context.Context, dayOfWeek int) ([]*domain.ScheduleEntry, error) {
	query, args, err := psqlbuilder.Select(entryColumns...).
		From("work_schedule ws").
		LeftJoin("consultants c ON c.id = ws.consultant_id").
		Where(squirrel.Eq{"ws.day_of_week": dayOfWeek, "ws.is_active": true}).
		OrderBy("ws.start_time ASC", "ws.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEntriesForDayOfWeek - build select query: %w", ErrBuildQuery, err)
	}

	return r.queryEntries(ctx, "GetEntriesForDayOfWeek", query, args)
}

// GetAllEntries все активные окна приема для админ-панели
func (r *Repository) GetAllEntries(ctx context.Context) ([]*domain.ScheduleEntry, error) {
	query, args, err := psqlbuilder.Select(entryColumns...).
		From("work_schedule ws").
		LeftJoin("consultants c ON c.id = ws.consultant_id").
		Where(squirrel.Eq{"ws.is_active": true}).
		OrderBy("ws.day_of_week ASC", "ws.start_time ASC", "ws.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllEntries - build select query: %w", ErrBuildQuery, err)
	}

	return r.queryEntries(ctx, "GetAllEntries", query, args)
}

func (r *Repository) queryEntries(ctx context.Context, op, query string, args []interface{}) ([]*domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	entries := make([]*domain.ScheduleEntry, 0)
	for rows.Next() {
		var (
			entry          domain.ScheduleEntry
			consultantID   sql.NullInt64
			consultantName sql.NullString
		)
		if err := rows.Scan(
			&entry.ID,
			&entry.DayOfWeek,
			&entry.StartTime,
			&entry.EndTime,
			&consultantID,
			&consultantName,
			&entry.IsActive,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan entry: %w", ErrScanRow, op, err)
		}
		entry.ConsultantID = nullInt64(consultantID)
		entry.ConsultantName = nullString(consultantName)
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %w", ErrScanRow, op, err)
	}

	return entries, nil
}

// IsDateBlocked заблокирована ли дата целиком
func (r *Repository) IsDateBlocked(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("blocked_dates").
		Where(squirrel.Eq{"date": types.FormatDate(date)}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsDateBlocked - build select query: %w", ErrBuildQuery, err)
	}

	var blocked bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&blocked); err != nil {
		return false, fmt.Errorf("%w: IsDateBlocked - scan: %w", ErrScanRow, err)
	}

	return blocked, nil
}

// GetBlockedDates все заблокированные даты по возрастанию
func (r *Repository) GetBlockedDates(ctx context.Context) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedDateColumns...).
		From("blocked_dates bd").
		LeftJoin("consultants c ON c.id = bd.consultant_id").
		OrderBy("bd.date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var (
			bd             domain.BlockedDate
			reason         sql.NullString
			consultantID   sql.NullInt64
			consultantName sql.NullString
		)
		if err := rows.Scan(&bd.ID, &bd.Date, &reason, &consultantID, &consultantName, &bd.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetBlockedDates - scan blocked date: %w", ErrScanRow, err)
		}
		bd.Date = types.DateOnly(bd.Date)
		bd.Reason = nullString(reason)
		bd.ConsultantID = nullInt64(consultantID)
		bd.ConsultantName = nullString(consultantName)
		dates = append(dates, &bd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - rows iteration: %w", ErrScanRow, err)
	}

	return dates, nil
}

// AddBlockedDate блокирует дату; повторная блокировка дает ErrDateAlreadyBlocked
func (r *Repository) AddBlockedDate(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("date", "reason", "consultant_id").
		Values(types.FormatDate(blocked.Date), blocked.Reason, blocked.ConsultantID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddBlockedDate - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&blocked.ID, &blocked.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return nil, ErrDateAlreadyBlocked
	}
	if err != nil {
		return nil, fmt.Errorf("%w: AddBlockedDate - execute insert: %w", ErrExecQuery, err)
	}

	blocked.Date = types.DateOnly(blocked.Date)
	return blocked, nil
}

// RemoveBlockedDate снимает блокировку по ID
func (r *Repository) RemoveBlockedDate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}
