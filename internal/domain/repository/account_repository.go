package repository

import "github.com/hoangnv/visitgate-api/internal/domain/entity"

// AccountRepository is the persistence port for Account. Lookups return
// (nil, nil) on a miss. Create must perform its uniqueness check and insert
// atomically, so concurrent registrations with the same username cannot
// both succeed; the loser gets domain.ErrDuplicateUsername.
type AccountRepository interface {
	Create(acc *entity.Account) error
	GetByUsername(username string) (*entity.Account, error)
	List() ([]*entity.Account, error)
	Update(acc *entity.Account) error
	Delete(username string) error
}
