package usecase

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hoangnv/visitgate-api/internal/application/auth"
	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/access"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/domain/org"
	"github.com/hoangnv/visitgate-api/internal/domain/repository"
)

// staff usernames: lowercase alphanumeric, no whitespace.
var usernameRe = regexp.MustCompile(`^[a-z0-9]+$`)

// AccountUseCase admin-driven account management: issuing and revoking staff
// credentials. Both operations require the organization-wide scope, which
// only the root identity holds.
type AccountUseCase struct {
	accounts repository.AccountRepository
	policy   access.Policy
	staffMin int
}

// NewAccountUseCase builds the use case.
func NewAccountUseCase(accounts repository.AccountRepository, policy access.Policy, staffMinPassword int) *AccountUseCase {
	return &AccountUseCase{accounts: accounts, policy: policy, staffMin: staffMinPassword}
}

// CreateStaff issues OFFICER or ADMIN credentials scoped to a unit path.
// The sentinel whole-unit value scopes the account to the entire parent unit.
func (uc *AccountUseCase) CreateStaff(actor *entity.Account, in dto.CreateStaffRequest) (*dto.AccountResponse, error) {
	if !uc.policy.CanManageAccounts(actor) {
		return nil, domain.ErrForbidden
	}
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if !usernameRe.MatchString(username) {
		return nil, domain.ErrInvalidUsername
	}
	// The root username stays reserved even when the seeded record is gone.
	if username == strings.ToLower(uc.policy.RootUsername) {
		return nil, domain.ErrDuplicateUsername
	}
	if in.Role != entity.RoleOfficer && in.Role != entity.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < uc.staffMin {
		return nil, domain.ErrWeakCredential
	}

	parent, err := org.ResolveParent(in.Category, in.ParentUnit)
	if err != nil {
		return nil, err
	}
	if !org.IsValidPath(parent.Name, in.SpecificUnit) {
		return nil, domain.ErrInvalidUnitPath
	}
	unit := parent.Name
	if in.SpecificUnit != org.WholeUnit {
		unit = in.SpecificUnit + " - " + parent.Name
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acc := &entity.Account{
		Username:     username,
		DisplayName:  in.DisplayName,
		Role:         in.Role,
		Unit:         unit,
		ParentUnit:   parent.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.accounts.Create(acc); err != nil {
		return nil, err
	}
	return auth.ToAccountResponse(acc), nil
}

// Delete revokes an account. The root identity can never be deleted, not
// even by itself. Requests filed against the account's unit are untouched.
func (uc *AccountUseCase) Delete(actor *entity.Account, username string) error {
	if !uc.policy.CanManageAccounts(actor) {
		return domain.ErrForbidden
	}
	if username == uc.policy.RootUsername {
		return domain.ErrForbidden
	}
	existing, err := uc.accounts.GetByUsername(username)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.accounts.Delete(username)
}

// List returns all accounts for the management screen. Admin role only;
// mutation stays root-only.
func (uc *AccountUseCase) List(actor *entity.Account) ([]*dto.AccountResponse, error) {
	if actor == nil || actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	accs, err := uc.accounts.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AccountResponse, 0, len(accs))
	for _, a := range accs {
		out = append(out, auth.ToAccountResponse(a))
	}
	return out, nil
}
