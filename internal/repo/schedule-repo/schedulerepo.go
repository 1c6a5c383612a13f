package schedulerepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const scheduleColumns = "id, schedule_id, employer_id, worker_id, amount, frequency, next_payment_date, status, memo, created_at, " +
	"paying_for, paying_tx_hash, paying_since"

const (
	queryInsert = `
		INSERT INTO schedules (schedule_id, employer_id, worker_id, amount, frequency, next_payment_date, status, memo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	queryByID         = "SELECT " + scheduleColumns + " FROM schedules WHERE schedule_id = $1"
	queryByEmployer   = "SELECT " + scheduleColumns + " FROM schedules WHERE employer_id = $1 ORDER BY created_at DESC"
	queryForWorker    = "SELECT " + scheduleColumns + " FROM schedules WHERE worker_id = $1 ORDER BY created_at DESC"
	queryDue          = "SELECT " + scheduleColumns + " FROM schedules WHERE status = 'active' AND paying_for IS NULL AND next_payment_date <= $1 ORDER BY next_payment_date, id"
	queryLockDue      = "SELECT " + scheduleColumns + " FROM schedules WHERE schedule_id = $1 AND status = 'active' AND paying_for IS NULL AND next_payment_date <= $2 FOR UPDATE SKIP LOCKED"
	queryHold         = "UPDATE schedules SET paying_for = $2, paying_tx_hash = NULL, paying_since = now(), updated_at = now() WHERE schedule_id = $1 AND next_payment_date = $2 AND paying_for IS NULL AND status = 'active'"
	queryRecord       = "UPDATE schedules SET paying_tx_hash = $3, updated_at = now() WHERE schedule_id = $1 AND paying_for = $2 AND paying_tx_hash IS NULL"
	queryAdvance      = "UPDATE schedules SET next_payment_date = $3, paying_for = NULL, paying_tx_hash = NULL, paying_since = NULL, updated_at = now() WHERE schedule_id = $1 AND next_payment_date = $2 AND paying_for = $2"
	queryRelease      = "UPDATE schedules SET paying_for = NULL, paying_tx_hash = NULL, paying_since = NULL, updated_at = now() WHERE schedule_id = $1 AND paying_for = $2"
	queryUpdateStatus = "UPDATE schedules SET status = $2, updated_at = now() WHERE schedule_id = $1 AND status <> 'cancelled' RETURNING " + scheduleColumns
	queryRelationship = `
		SELECT schedule_id, employer_id, worker_id, status, created_at, CASE WHEN status = 'cancelled' THEN updated_at END
		FROM schedules
		WHERE ((employer_id = $1 AND worker_id = $2) OR (employer_id = $2 AND worker_id = $1))
		  AND created_at <= $3
		  AND ($4::text IS NULL OR schedule_id = $4)
		ORDER BY created_at
		LIMIT 1
	`
	queryCounterparties = `
		SELECT s.schedule_id, w.worker_id, w.name, w.role, s.created_at
		FROM schedules s
		JOIN workers w ON w.worker_id = CASE WHEN s.employer_id = $1 THEN s.worker_id ELSE s.employer_id END
		WHERE (s.employer_id = $1 OR s.worker_id = $1) AND s.created_at <= $2
		ORDER BY s.created_at
	`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.Schedule, error) {
	var s domain.Schedule
	err := row.Scan(&s.ID, &s.ScheduleID, &s.EmployerID, &s.WorkerID, &s.Amount, &s.Frequency,
		&s.NextPaymentDate, &s.Status, &s.Memo, &s.CreatedAt, &s.PayingFor, &s.PayingTxHash, &s.PayingSince)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	err := r.db.QueryRow(ctx, queryInsert, s.ScheduleID, s.EmployerID, s.WorkerID, s.Amount, s.Frequency,
		s.NextPaymentDate, s.Status, s.Memo).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		zap.L().Error("can't save schedule", zap.String("schedule_id", s.ScheduleID), zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) GetByID(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	s, err := scan(r.db.QueryRow(ctx, queryByID, scheduleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find schedule", zap.String("schedule_id", scheduleID), zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Schedule, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list schedules", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	schedules := []domain.Schedule{}
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			zap.L().Error("failed to scan schedule", zap.Error(err))
			return nil, err
		}
		schedules = append(schedules, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *Repository) ListByEmployer(ctx context.Context, employerID string) ([]domain.Schedule, error) {
	return r.list(ctx, queryByEmployer, employerID)
}

func (r *Repository) ListForWorker(ctx context.Context, workerID string) ([]domain.Schedule, error) {
	return r.list(ctx, queryForWorker, workerID)
}

// ListDue returns active schedules whose next payment date is on or before asOf. Held schedules are left out.
func (r *Repository) ListDue(ctx context.Context, asOf time.Time) ([]domain.Schedule, error) {
	return r.list(ctx, queryDue, domain.DateOf(asOf))
}

// LockDue re-reads a schedule inside the caller's transaction and locks its row. It returns
// nil when the schedule is no longer due or another runner holds the lock.
func (r *Repository) LockDue(ctx context.Context, scheduleID string, asOf time.Time) (*domain.Schedule, error) {
	s, err := scan(r.db.QueryRow(ctx, queryLockDue, scheduleID, domain.DateOf(asOf)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock schedule", zap.String("schedule_id", scheduleID), zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) exec(ctx context.Context, op, scheduleID, query string, args ...any) (bool, error) {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't "+op+" schedule", zap.String("schedule_id", scheduleID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Hold marks the payment for due as in flight. It reports false when the schedule is already held,
// no longer active or has moved past due.
func (r *Repository) Hold(ctx context.Context, scheduleID string, due time.Time) (bool, error) {
	return r.exec(ctx, "hold", scheduleID, queryHold, scheduleID, domain.DateOf(due))
}

// RecordPayment stores the signed transaction hash of a held payment. Only the first hash per hold is kept.
func (r *Repository) RecordPayment(ctx context.Context, scheduleID string, due time.Time, txHash string) (bool, error) {
	return r.exec(ctx, "record payment for", scheduleID, queryRecord, scheduleID, domain.DateOf(due), txHash)
}

// AdvanceNextDate moves the next payment date of a schedule held for from to another value and
// clears the hold. It reports whether the row was still held for from.
func (r *Repository) AdvanceNextDate(ctx context.Context, scheduleID string, from, to time.Time) (bool, error) {
	return r.exec(ctx, "advance", scheduleID, queryAdvance, scheduleID, domain.DateOf(from), domain.DateOf(to))
}

// Release clears the hold for due without moving the schedule, so the date is paid again.
func (r *Repository) Release(ctx context.Context, scheduleID string, due time.Time) (bool, error) {
	return r.exec(ctx, "release", scheduleID, queryRelease, scheduleID, domain.DateOf(due))
}

// UpdateStatus never touches a cancelled schedule; it returns nil in that case.
func (r *Repository) UpdateStatus(ctx context.Context, scheduleID string, status domain.ScheduleStatus) (*domain.Schedule, error) {
	s, err := scan(r.db.QueryRow(ctx, queryUpdateStatus, scheduleID, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update schedule status", zap.String("schedule_id", scheduleID), zap.Error(err))
		return nil, err
	}
	return s, nil
}

// FindRelationship returns the oldest schedule between a and b (in either direction) created on
// or before startedBefore, optionally narrowed to one schedule.
func (r *Repository) FindRelationship(ctx context.Context, a, b string, scheduleID *string, startedBefore time.Time) (*domain.Relationship, error) {
	var rel domain.Relationship
	err := r.db.QueryRow(ctx, queryRelationship, a, b, startedBefore, scheduleID).
		Scan(&rel.ScheduleID, &rel.EmployerID, &rel.WorkerID, &rel.Status, &rel.StartedAt, &rel.EndedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find relationship", zap.String("a", a), zap.String("b", b), zap.Error(err))
		return nil, err
	}
	return &rel, nil
}

// Counterparties lists everyone userID has a schedule with that started on or before startedBefore.
func (r *Repository) Counterparties(ctx context.Context, userID string, startedBefore time.Time) ([]domain.EligibleReviewee, error) {
	rows, err := r.db.Query(ctx, queryCounterparties, userID, startedBefore)
	if err != nil {
		zap.L().Error("failed to list counterparties", zap.String("worker_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := []domain.EligibleReviewee{}
	for rows.Next() {
		var e domain.EligibleReviewee
		if err := rows.Scan(&e.ScheduleID, &e.WorkerID, &e.Name, &e.Role, &e.StartedAt); err != nil {
			zap.L().Error("failed to scan counterparty", zap.Error(err))
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
