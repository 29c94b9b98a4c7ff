package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/domain/repository"
)

var _ repository.VisitRequestRepository = (*VisitRequestRepo)(nil)

// VisitRequestRepo PostgreSQL implementation of the VisitRequestRepository port.
type VisitRequestRepo struct {
	pool *pgxpool.Pool
}

// NewVisitRequestRepository builds the persistence adapter for visit requests.
func NewVisitRequestRepository(pool *pgxpool.Pool) *VisitRequestRepo {
	return &VisitRequestRepo{pool: pool}
}

const visitColumns = `id, visitor_name, visitor_id, visitor_phone, relationship,
		soldier_name, soldier_rank, parent_unit, specific_unit, unit_category,
		visit_date, time_slot, note, status, feedback, proposed_time, created_at, arrived_at`

// Create persists a new request; a taken ID maps to domain.ErrDuplicate so
// the ledger regenerates the code.
func (r *VisitRequestRepo) Create(req *entity.VisitRequest) error {
	query := `
		INSERT INTO visit_requests (` + visitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.pool.Exec(context.Background(), query,
		req.ID, req.VisitorName, req.VisitorID, req.VisitorPhone, req.Relationship,
		req.SoldierName, req.SoldierRank, req.ParentUnit, req.SpecificUnit, req.UnitCategory,
		req.VisitDate, req.TimeSlot, req.Note, req.Status, req.Feedback, req.ProposedTime,
		req.CreatedAt, req.ArrivedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert visit request: %w", err)
	}
	return nil
}

// GetByID returns (nil, nil) on a miss.
func (r *VisitRequestRepo) GetByID(id string) (*entity.VisitRequest, error) {
	query := `SELECT ` + visitColumns + ` FROM visit_requests WHERE id = $1`
	req, err := scanVisitRow(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visit request by id: %w", err)
	}
	return req, nil
}

// List returns all requests, most recent first.
func (r *VisitRequestRepo) List() ([]*entity.VisitRequest, error) {
	query := `SELECT ` + visitColumns + ` FROM visit_requests ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list visit requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.VisitRequest
	for rows.Next() {
		req, err := scanVisitRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan visit request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// TransitionStatus is a compare-and-set: the WHERE clause pins the expected
// current status, so a concurrent writer that got there first makes this a
// no-op and the caller sees the guard fail.
func (r *VisitRequestRepo) TransitionStatus(id, from string, patch repository.StatusPatch) (bool, error) {
	query := `
		UPDATE visit_requests
		SET status = $3, feedback = $4, proposed_time = $5,
		    arrived_at = COALESCE($6, arrived_at)
		WHERE id = $1 AND status = $2`
	tag, err := r.pool.Exec(context.Background(), query,
		id, from, patch.Status, patch.Feedback, patch.ProposedTime, patch.ArrivedAt,
	)
	if err != nil {
		return false, fmt.Errorf("transition visit request: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVisitRow(row rowScanner) (*entity.VisitRequest, error) {
	var req entity.VisitRequest
	err := row.Scan(
		&req.ID, &req.VisitorName, &req.VisitorID, &req.VisitorPhone, &req.Relationship,
		&req.SoldierName, &req.SoldierRank, &req.ParentUnit, &req.SpecificUnit, &req.UnitCategory,
		&req.VisitDate, &req.TimeSlot, &req.Note, &req.Status, &req.Feedback, &req.ProposedTime,
		&req.CreatedAt, &req.ArrivedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
