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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo PostgreSQL implementation of the AccountRepository port.
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository builds the persistence adapter for accounts.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `username, display_name, role, unit, parent_unit, password_hash, email, phone, created_at`

// Create persists a new account. The primary key on username makes the
// uniqueness check and the insert one atomic statement.
func (r *AccountRepo) Create(acc *entity.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		acc.Username, acc.DisplayName, acc.Role, acc.Unit, acc.ParentUnit,
		acc.PasswordHash, acc.Email, acc.Phone, acc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByUsername returns (nil, nil) on a miss.
func (r *AccountRepo) GetByUsername(username string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1`
	var a entity.Account
	err := r.pool.QueryRow(context.Background(), query, username).Scan(
		&a.Username, &a.DisplayName, &a.Role, &a.Unit, &a.ParentUnit,
		&a.PasswordHash, &a.Email, &a.Phone, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by username: %w", err)
	}
	return &a, nil
}

// List returns all accounts ordered by creation time.
func (r *AccountRepo) List() ([]*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(
			&a.Username, &a.DisplayName, &a.Role, &a.Unit, &a.ParentUnit,
			&a.PasswordHash, &a.Email, &a.Phone, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update rewrites the mutable fields (display name and credential).
func (r *AccountRepo) Update(acc *entity.Account) error {
	query := `
		UPDATE accounts SET display_name = $2, password_hash = $3
		WHERE username = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		acc.Username, acc.DisplayName, acc.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an account by username.
func (r *AccountRepo) Delete(username string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM accounts WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
