// Package memory holds mutex-guarded in-memory implementations of the
// repository ports. They back the unit tests and the DB-less development
// mode; the postgres package is the production twin.
package memory

import (
	"sort"
	"sync"

	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo in-memory AccountRepository.
type AccountRepo struct {
	mu   sync.RWMutex
	accs map[string]entity.Account
}

// NewAccountRepository builds an empty store.
func NewAccountRepository() *AccountRepo {
	return &AccountRepo{accs: make(map[string]entity.Account)}
}

// Create inserts the account; check-then-insert happens under one lock, so
// concurrent creates of the same username cannot both succeed.
func (r *AccountRepo) Create(acc *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accs[acc.Username]; exists {
		return domain.ErrDuplicateUsername
	}
	r.accs[acc.Username] = *acc
	return nil
}

// GetByUsername returns (nil, nil) on a miss.
func (r *AccountRepo) GetByUsername(username string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accs[username]
	if !ok {
		return nil, nil
	}
	return &acc, nil
}

// List returns all accounts ordered by creation time.
func (r *AccountRepo) List() ([]*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Account, 0, len(r.accs))
	for _, acc := range r.accs {
		a := acc
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Update replaces the stored account.
func (r *AccountRepo) Update(acc *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accs[acc.Username]; !ok {
		return domain.ErrNotFound
	}
	r.accs[acc.Username] = *acc
	return nil
}

// Delete removes the account if present.
func (r *AccountRepo) Delete(username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accs[username]; !ok {
		return domain.ErrNotFound
	}
	delete(r.accs, username)
	return nil
}
