// Package auth implements registration, login and profile self-service.
package auth

import (
	"hash/fnv"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/domain/repository"
	"github.com/hoangnv/visitgate-api/pkg/jwt"
)

// Config parameters for the auth use case. The two password minimums are
// deliberately separate: admin-issued staff credentials and visitor
// self-registration are independently configured flows.
type Config struct {
	JWTSecret          string
	JWTExpMinutes      int
	JWTIssuer          string
	VisitorMinPassword int
	StaffMinPassword   int

	// RootUsername is reserved: no registration may claim it, even when the
	// seeded root record is missing from the store.
	RootUsername string
}

var phoneRe = regexp.MustCompile(`^\d{10,11}$`)

// profile write stripes; one mutex per stripe serializes the
// read-modify-write per username within the process.
const profileLockStripes = 8

// AuthUseCase registration and login.
type AuthUseCase struct {
	accounts repository.AccountRepository
	cfg      Config
	locks    [profileLockStripes]sync.Mutex
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(accounts repository.AccountRepository, cfg Config) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, cfg: cfg}
}

func (uc *AuthUseCase) lockFor(username string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(username))
	return &uc.locks[h.Sum32()%profileLockStripes]
}

// RegisterVisitor self-registers a visitor account. The identifier (email or
// phone number) becomes the username; the account gets VISITOR role and the
// unaffiliated unit. The repository's atomic create resolves concurrent
// registrations of the same identifier.
func (uc *AuthUseCase) RegisterVisitor(in dto.RegisterRequest) (*dto.AccountResponse, error) {
	identifier := strings.TrimSpace(in.Identifier)
	if in.DisplayName == "" || identifier == "" {
		return nil, domain.ErrInvalidInput
	}
	isEmail := strings.Contains(identifier, "@")
	if !isEmail && !phoneRe.MatchString(identifier) {
		return nil, domain.ErrInvalidUsername
	}
	if identifier == uc.cfg.RootUsername {
		return nil, domain.ErrDuplicateUsername
	}
	if len(in.Password) < uc.cfg.VisitorMinPassword {
		return nil, domain.ErrWeakCredential
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acc := &entity.Account{
		Username:     identifier,
		DisplayName:  in.DisplayName,
		Role:         entity.RoleVisitor,
		Unit:         entity.UnitUnaffiliated,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if isEmail {
		acc.Email = identifier
	} else {
		acc.Phone = identifier
	}
	if err := uc.accounts.Create(acc); err != nil {
		return nil, err
	}
	return ToAccountResponse(acc), nil
}

// Login verifies credentials and issues a JWT carrying role and unit scope.
// Any mismatch (unknown username or wrong password) is the same ErrAuthFailed.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	acc, err := uc.accounts.GetByUsername(strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrAuthFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrAuthFailed
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, acc.Username, acc.Role, acc.Unit, uc.cfg.JWTIssuer, uc.cfg.JWTExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Account: *ToAccountResponse(acc)}, nil
}

// UpdateProfile changes display name and/or password. Role and unit are
// immutable here: rescoping an account is delete + recreate by the root
// identity.
func (uc *AuthUseCase) UpdateProfile(username string, in dto.UpdateProfileRequest) (*dto.AccountResponse, error) {
	mu := uc.lockFor(username)
	mu.Lock()
	defer mu.Unlock()

	acc, err := uc.accounts.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	if in.DisplayName != "" {
		acc.DisplayName = in.DisplayName
	}
	if in.Password != "" {
		min := uc.cfg.StaffMinPassword
		if acc.Role == entity.RoleVisitor {
			min = uc.cfg.VisitorMinPassword
		}
		if len(in.Password) < min {
			return nil, domain.ErrWeakCredential
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		acc.PasswordHash = string(hash)
	}
	if err := uc.accounts.Update(acc); err != nil {
		return nil, err
	}
	return ToAccountResponse(acc), nil
}

// RootConfig describes the seeded root identity.
type RootConfig struct {
	Username    string
	Password    string
	DisplayName string
	Unit        string
}

// EnsureRoot seeds the root identity if it is missing. Called at startup:
// the store must always contain exactly one unconditionally privileged,
// undeletable account.
func EnsureRoot(accounts repository.AccountRepository, root RootConfig) error {
	existing, err := accounts.GetByUsername(root.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(root.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return accounts.Create(&entity.Account{
		Username:     root.Username,
		DisplayName:  root.DisplayName,
		Role:         entity.RoleAdmin,
		Unit:         root.Unit,
		PasswordHash: string(hash),
		Phone:        root.Username,
		CreatedAt:    time.Now(),
	})
}

// ToAccountResponse strips the credential from an account.
func ToAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		Username:    a.Username,
		DisplayName: a.DisplayName,
		Role:        a.Role,
		Unit:        a.Unit,
		ParentUnit:  a.ParentUnit,
		Email:       a.Email,
		Phone:       a.Phone,
		CreatedAt:   a.CreatedAt,
	}
}
