package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stpnv0/TennisHub/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const eventColumns = `e.id, e.kind, e.name, e.description, e.coach_name, e.club_id,
		e.start_time, e.end_time, e.capacity, e.created_at, e.updated_at,
		COALESCE(
			(SELECT array_agg(m.user_id::text ORDER BY m.joined_at)
			 FROM event_members m WHERE m.event_id = e.id),
			'{}'
		)`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	var members []string
	if err := row.Scan(
		&e.ID, &e.Kind, &e.Name, &e.Description, &e.CoachName, &e.ClubID,
		&e.StartTime, &e.EndTime, &e.Capacity, &e.CreatedAt, &e.UpdatedAt,
		pq.Array(&members),
	); err != nil {
		return nil, err
	}
	if members == nil {
		members = []string{}
	}
	e.MemberIDs = members
	return &e, nil
}

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, kind, name, description, coach_name, club_id,
			  	start_time, end_time, capacity, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Kind, e.Name, e.Description, e.CoachName, e.ClubID,
		e.StartTime, e.EndTime, e.Capacity, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE ($1 = '' OR e.kind = $1)
			    AND ($2::bigint IS NULL OR e.club_id = $2)
			  ORDER BY e.start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, string(filter.Kind), filter.ClubID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) ListByMember(ctx context.Context, userID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  JOIN event_members em ON em.event_id = e.id
			  WHERE em.user_id = $1
			  ORDER BY e.start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list events by member: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET name = $2, description = $3, coach_name = $4,
			      start_time = $5, end_time = $6, capacity = $7, updated_at = $8
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Description, e.CoachName,
		e.StartTime, e.EndTime, e.Capacity, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return expectOneRow(res, domain.ErrEventNotFound)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return expectOneRow(res, domain.ErrEventNotFound)
}

func (r *EventRepository) MutateMembers(ctx context.Context, id string, fn ports.MemberMutation) (*domain.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем мероприятие до конца транзакции
	lockQuery := `SELECT id FROM events WHERE id = $1 FOR UPDATE`
	var locked string
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.id = $1`
	event, err := scanEvent(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("read event: %w", err)
	}

	// Применяем изменение и сохраняем только разницу
	before := append([]string(nil), event.MemberIDs...)
	if err = fn(event); err != nil {
		return nil, err
	}
	added, removed := domain.MemberDiff(before, event.MemberIDs)

	if len(added) > 0 {
		insert := `INSERT INTO event_members (event_id, user_id, joined_at)
				   SELECT $1, unnest($2::uuid[]), now()`
		if _, err = tx.ExecContext(ctx, insert, id, pq.Array(added)); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case pgUniqueViolation:
					return nil, domain.ErrAlreadyMember
				case pgForeignKeyViolation:
					return nil, domain.ErrUserNotFound
				}
			}
			return nil, fmt.Errorf("insert members: %w", err)
		}
	}

	if len(removed) > 0 {
		del := `DELETE FROM event_members WHERE event_id = $1 AND user_id = ANY($2::uuid[])`
		if _, err = tx.ExecContext(ctx, del, id, pq.Array(removed)); err != nil {
			return nil, fmt.Errorf("delete members: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return event, nil
}

func collectEvents(rows *sql.Rows) ([]*domain.Event, error) {
	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
