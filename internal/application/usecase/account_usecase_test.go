package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangnv/visitgate-api/internal/application/auth"
	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/application/usecase"
	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/access"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/domain/org"
	"github.com/hoangnv/visitgate-api/internal/infrastructure/memory"
)

func newAccountFixture(t *testing.T) (*usecase.AccountUseCase, *memory.AccountRepo) {
	t.Helper()
	repo := memory.NewAccountRepository()
	require.NoError(t, auth.EnsureRoot(repo, auth.RootConfig{
		Username:    testRoot,
		Password:    "123",
		DisplayName: "BCH TRUNG ĐOÀN",
		Unit:        "Ban Chỉ huy Đơn vị",
	}))
	uc := usecase.NewAccountUseCase(repo, access.Policy{RootUsername: testRoot}, 3)
	return uc, repo
}

func validStaff() dto.CreateStaffRequest {
	return dto.CreateStaffRequest{
		Username:     "daidoi1",
		Password:     "abc",
		DisplayName:  "Cán bộ Đại đội 1",
		Role:         entity.RoleOfficer,
		Category:     org.CategoryBattalion,
		ParentUnit:   "Tiểu đoàn 1",
		SpecificUnit: "Đại đội 1",
	}
}

func TestCreateStaff_SubUnitScope(t *testing.T) {
	uc, _ := newAccountFixture(t)
	acc, err := uc.CreateStaff(rootActor(), validStaff())
	require.NoError(t, err)

	assert.Equal(t, "Đại đội 1 - Tiểu đoàn 1", acc.Unit)
	assert.Equal(t, "Tiểu đoàn 1", acc.ParentUnit)
}

func TestCreateStaff_WholeUnitScope(t *testing.T) {
	uc, _ := newAccountFixture(t)
	in := validStaff()
	in.Username = "tieudoan1"
	in.SpecificUnit = org.WholeUnit

	acc, err := uc.CreateStaff(rootActor(), in)
	require.NoError(t, err)
	assert.Equal(t, "Tiểu đoàn 1", acc.Unit,
		"whole-unit sentinel scopes to the parent unit itself")
}

func TestCreateStaff_OnlyRootMayCreate(t *testing.T) {
	uc, _ := newAccountFixture(t)
	admin := &entity.Account{Username: "admin1", Role: entity.RoleAdmin, Unit: "Tiểu đoàn 1"}

	_, err := uc.CreateStaff(admin, validStaff())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.CreateStaff(nil, validStaff())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateStaff_Validation(t *testing.T) {
	uc, _ := newAccountFixture(t)

	in := validStaff()
	in.Username = "Đại đội"
	_, err := uc.CreateStaff(rootActor(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidUsername)

	in = validStaff()
	in.Role = entity.RoleVisitor
	_, err = uc.CreateStaff(rootActor(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "visitor accounts self-register")

	in = validStaff()
	in.Password = "ab"
	_, err = uc.CreateStaff(rootActor(), in)
	assert.ErrorIs(t, err, domain.ErrWeakCredential)

	in = validStaff()
	in.SpecificUnit = "Đại đội 9"
	_, err = uc.CreateStaff(rootActor(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidUnitPath)
}

func TestCreateStaff_DuplicateUsername(t *testing.T) {
	uc, _ := newAccountFixture(t)
	_, err := uc.CreateStaff(rootActor(), validStaff())
	require.NoError(t, err)
	_, err = uc.CreateStaff(rootActor(), validStaff())
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

// The root username is reserved independently of the seeded record: even on
// a store that lost its seed, nobody can mint an account under it.
func TestCreateStaff_RootUsernameReserved(t *testing.T) {
	repo := memory.NewAccountRepository()
	uc := usecase.NewAccountUseCase(repo, access.Policy{RootUsername: testRoot}, 3)

	in := validStaff()
	in.Username = testRoot
	_, err := uc.CreateStaff(rootActor(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	stored, err := repo.GetByUsername(testRoot)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestCreateStaff_UsernameLowercased(t *testing.T) {
	uc, repo := newAccountFixture(t)
	in := validStaff()
	in.Username = "DaiDoi1"
	acc, err := uc.CreateStaff(rootActor(), in)
	require.NoError(t, err)
	assert.Equal(t, "daidoi1", acc.Username)

	stored, err := repo.GetByUsername("daidoi1")
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestDelete_RootIsProtected(t *testing.T) {
	uc, repo := newAccountFixture(t)

	err := uc.Delete(rootActor(), testRoot)
	assert.ErrorIs(t, err, domain.ErrForbidden, "the root identity is undeletable, even by itself")

	still, err := repo.GetByUsername(testRoot)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestDelete_Staff(t *testing.T) {
	uc, repo := newAccountFixture(t)
	_, err := uc.CreateStaff(rootActor(), validStaff())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(rootActor(), "daidoi1"))
	gone, err := repo.GetByUsername("daidoi1")
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.ErrorIs(t, uc.Delete(rootActor(), "daidoi1"), domain.ErrNotFound)
}

func TestList_AdminOnly(t *testing.T) {
	uc, _ := newAccountFixture(t)
	_, err := uc.CreateStaff(rootActor(), validStaff())
	require.NoError(t, err)

	accs, err := uc.List(rootActor())
	require.NoError(t, err)
	assert.Len(t, accs, 2)

	officer := &entity.Account{Username: "daidoi1", Role: entity.RoleOfficer, Unit: "Đại đội 1 - Tiểu đoàn 1"}
	_, err = uc.List(officer)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
