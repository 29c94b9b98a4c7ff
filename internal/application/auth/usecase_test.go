package auth_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hoangnv/visitgate-api/internal/application/auth"
	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/infrastructure/memory"
	pkgjwt "github.com/hoangnv/visitgate-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "visitgate-test"
	testRoot   = "0353991356"
)

func newAuthUC() (*auth.AuthUseCase, *memory.AccountRepo) {
	repo := memory.NewAccountRepository()
	uc := auth.NewAuthUseCase(repo, auth.Config{
		JWTSecret:          testSecret,
		JWTExpMinutes:      60,
		JWTIssuer:          testIssuer,
		VisitorMinPassword: 6,
		StaffMinPassword:   3,
		RootUsername:       testRoot,
	})
	return uc, repo
}

func TestRegisterVisitor_ByPhone(t *testing.T) {
	uc, _ := newAuthUC()
	acc, err := uc.RegisterVisitor(dto.RegisterRequest{
		Identifier:  "0909123456",
		DisplayName: "Nguyễn Thị Hoa",
		Password:    "matkhau6",
	})
	require.NoError(t, err)

	assert.Equal(t, "0909123456", acc.Username)
	assert.Equal(t, "0909123456", acc.Phone)
	assert.Equal(t, entity.RoleVisitor, acc.Role)
	assert.Equal(t, entity.UnitUnaffiliated, acc.Unit)
}

func TestRegisterVisitor_ByEmail(t *testing.T) {
	uc, _ := newAuthUC()
	acc, err := uc.RegisterVisitor(dto.RegisterRequest{
		Identifier:  "hoa@example.com",
		DisplayName: "Nguyễn Thị Hoa",
		Password:    "matkhau6",
	})
	require.NoError(t, err)
	assert.Equal(t, "hoa@example.com", acc.Email)
	assert.Empty(t, acc.Phone)
}

func TestRegisterVisitor_InvalidIdentifier(t *testing.T) {
	uc, _ := newAuthUC()
	for _, id := range []string{"hoa", "090912", "090912345678"} {
		_, err := uc.RegisterVisitor(dto.RegisterRequest{
			Identifier: id, DisplayName: "Hoa", Password: "matkhau6",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidUsername, "identifier %q", id)
	}
}

func TestRegisterVisitor_WeakPassword(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterVisitor(dto.RegisterRequest{
		Identifier: "0909123456", DisplayName: "Hoa", Password: "12345",
	})
	assert.ErrorIs(t, err, domain.ErrWeakCredential)
}

func TestRegisterVisitor_Duplicate(t *testing.T) {
	uc, _ := newAuthUC()
	in := dto.RegisterRequest{Identifier: "0909123456", DisplayName: "Hoa", Password: "matkhau6"}
	_, err := uc.RegisterVisitor(in)
	require.NoError(t, err)
	_, err = uc.RegisterVisitor(in)
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

// The root username is reserved even on a store that has not been seeded
// yet: nobody can claim the privileged identity by registering first.
func TestRegisterVisitor_RootUsernameReserved(t *testing.T) {
	uc, repo := newAuthUC()

	_, err := uc.RegisterVisitor(dto.RegisterRequest{
		Identifier: testRoot, DisplayName: "Kẻ mạo danh", Password: "matkhau6",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	stored, err := repo.GetByUsername(testRoot)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestRegisterVisitor_PasswordIsHashed(t *testing.T) {
	uc, repo := newAuthUC()
	_, err := uc.RegisterVisitor(dto.RegisterRequest{
		Identifier: "0909123456", DisplayName: "Hoa", Password: "matkhau6",
	})
	require.NoError(t, err)

	stored, err := repo.GetByUsername("0909123456")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "matkhau6", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("matkhau6")))
}

func TestLogin_TokenCarriesRoleAndUnit(t *testing.T) {
	uc, repo := newAuthUC()
	require.NoError(t, auth.EnsureRoot(repo, auth.RootConfig{
		Username: "0353991356", Password: "123",
		DisplayName: "BCH TRUNG ĐOÀN", Unit: "Ban Chỉ huy Đơn vị",
	}))

	out, err := uc.Login(dto.LoginRequest{Username: "0353991356", Password: "123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.Account.Role)

	username, role, unit, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "0353991356", username)
	assert.Equal(t, entity.RoleAdmin, role)
	assert.Equal(t, "Ban Chỉ huy Đơn vị", unit)
}

// Unknown username and wrong password are indistinguishable to the caller.
func TestLogin_Failures(t *testing.T) {
	uc, repo := newAuthUC()
	require.NoError(t, auth.EnsureRoot(repo, auth.RootConfig{
		Username: "0353991356", Password: "123", DisplayName: "BCH", Unit: "BCH",
	}))

	_, err := uc.Login(dto.LoginRequest{Username: "0353991356", Password: "sai"})
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
	_, err = uc.Login(dto.LoginRequest{Username: "khongton", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestEnsureRoot_Idempotent(t *testing.T) {
	repo := memory.NewAccountRepository()
	cfg := auth.RootConfig{Username: "0353991356", Password: "123", DisplayName: "BCH", Unit: "BCH"}
	require.NoError(t, auth.EnsureRoot(repo, cfg))

	first, err := repo.GetByUsername("0353991356")
	require.NoError(t, err)
	require.NotNil(t, first)

	// A second startup must not rewrite the stored credential.
	cfg.Password = "different"
	require.NoError(t, auth.EnsureRoot(repo, cfg))
	second, err := repo.GetByUsername("0353991356")
	require.NoError(t, err)
	assert.Equal(t, first.PasswordHash, second.PasswordHash)
}

func TestUpdateProfile_RoleDependentMinimum(t *testing.T) {
	uc, repo := newAuthUC()
	_, err := uc.RegisterVisitor(dto.RegisterRequest{
		Identifier: "0909123456", DisplayName: "Hoa", Password: "matkhau6",
	})
	require.NoError(t, err)
	require.NoError(t, auth.EnsureRoot(repo, auth.RootConfig{
		Username: "0353991356", Password: "123", DisplayName: "BCH", Unit: "BCH",
	}))

	// Visitor: 6-char minimum applies on change too.
	_, err = uc.UpdateProfile("0909123456", dto.UpdateProfileRequest{Password: "12345"})
	assert.ErrorIs(t, err, domain.ErrWeakCredential)

	// Staff: 3-char minimum.
	_, err = uc.UpdateProfile("0353991356", dto.UpdateProfileRequest{Password: "456"})
	require.NoError(t, err)
	_, err = uc.Login(dto.LoginRequest{Username: "0353991356", Password: "456"})
	require.NoError(t, err)
}

func TestUpdateProfile_DisplayNameOnlyKeepsPassword(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterVisitor(dto.RegisterRequest{
		Identifier: "0909123456", DisplayName: "Hoa", Password: "matkhau6",
	})
	require.NoError(t, err)

	acc, err := uc.UpdateProfile("0909123456", dto.UpdateProfileRequest{DisplayName: "Hoa Nguyễn"})
	require.NoError(t, err)
	assert.Equal(t, "Hoa Nguyễn", acc.DisplayName)

	_, err = uc.Login(dto.LoginRequest{Username: "0909123456", Password: "matkhau6"})
	require.NoError(t, err)
}

// Two concurrent updates to the same account, one changing the display name
// and one changing the password, must both survive regardless of order.
func TestUpdateProfile_ConcurrentUpdatesKeepBothFields(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterVisitor(dto.RegisterRequest{
		Identifier: "0909123456", DisplayName: "Hoa", Password: "matkhau6",
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := uc.UpdateProfile("0909123456", dto.UpdateProfileRequest{DisplayName: "Hoa Nguyễn"})
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := uc.UpdateProfile("0909123456", dto.UpdateProfileRequest{Password: "matkhaumoi"})
		assert.NoError(t, err)
	}()
	wg.Wait()

	out, err := uc.Login(dto.LoginRequest{Username: "0909123456", Password: "matkhaumoi"})
	require.NoError(t, err)
	assert.Equal(t, "Hoa Nguyễn", out.Account.DisplayName)
}

func TestUpdateProfile_UnknownAccount(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.UpdateProfile("khongton", dto.UpdateProfileRequest{DisplayName: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
