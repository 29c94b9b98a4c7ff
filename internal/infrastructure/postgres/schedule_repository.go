package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/domain/repository"
)

var _ repository.ScheduleRepository = (*ScheduleRepo)(nil)

// ScheduleRepo PostgreSQL implementation of the ScheduleRepository port.
type ScheduleRepo struct {
	pool *pgxpool.Pool
}

// NewScheduleRepository builds the persistence adapter for the calendar.
func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{pool: pool}
}

// Create persists a calendar entry.
func (r *ScheduleRepo) Create(ev *entity.ScheduleEvent) error {
	query := `
		INSERT INTO schedule_events (id, title, date, type, description)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		ev.ID, ev.Title, ev.Date, ev.Type, ev.Description,
	)
	if err != nil {
		return fmt.Errorf("insert schedule event: %w", err)
	}
	return nil
}

// List returns the calendar ordered by date.
func (r *ScheduleRepo) List() ([]*entity.ScheduleEvent, error) {
	query := `SELECT id, title, date, type, description FROM schedule_events ORDER BY date`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list schedule events: %w", err)
	}
	defer rows.Close()
	var list []*entity.ScheduleEvent
	for rows.Next() {
		var ev entity.ScheduleEvent
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.Date, &ev.Type, &ev.Description); err != nil {
			return nil, fmt.Errorf("scan schedule event: %w", err)
		}
		list = append(list, &ev)
	}
	return list, rows.Err()
}
