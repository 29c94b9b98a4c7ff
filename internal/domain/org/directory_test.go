package org_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/org"
)

func TestCategories_Order(t *testing.T) {
	assert.Equal(t, []string{
		org.CategoryBattalion, org.CategoryRegimentHQ, org.CategoryDirectCompany,
	}, org.Categories())
}

func TestParentsOf_Battalions(t *testing.T) {
	parents, err := org.ParentsOf(org.CategoryBattalion)
	require.NoError(t, err)
	require.Len(t, parents, 3)
	assert.Equal(t, "Tiểu đoàn 1", parents[0].Name)
	assert.Contains(t, parents[0].SubUnits, "Đại đội 1")
	assert.Contains(t, parents[0].SubUnits, "bTT (Thông tin)",
		"every battalion carries the support platoons")
}

func TestParentsOf_UnknownCategory(t *testing.T) {
	_, err := org.ParentsOf("BRIGADE")
	assert.ErrorIs(t, err, domain.ErrInvalidUnitPath)
}

func TestResolveParent_ExactMatch(t *testing.T) {
	p, err := org.ResolveParent(org.CategoryBattalion, "Tiểu đoàn 2")
	require.NoError(t, err)
	assert.Equal(t, "D2", p.ID)
}

// A parent name left over from a previous category selection falls back to
// the category's first parent instead of failing the submission.
func TestResolveParent_FallbackWithinCategory(t *testing.T) {
	p, err := org.ResolveParent(org.CategoryRegimentHQ, "Tiểu đoàn 1")
	require.NoError(t, err)
	assert.Equal(t, "Cơ quan Trung đoàn", p.Name)

	p, err = org.ResolveParent(org.CategoryBattalion, "")
	require.NoError(t, err)
	assert.Equal(t, "Tiểu đoàn 1", p.Name)
}

func TestResolveParent_UnknownCategoryFails(t *testing.T) {
	_, err := org.ResolveParent("", "Tiểu đoàn 1")
	assert.ErrorIs(t, err, domain.ErrInvalidUnitPath)
}

func TestSubUnitsOf(t *testing.T) {
	subs, err := org.SubUnitsOf("Các đại đội trực thuộc")
	require.NoError(t, err)
	assert.Contains(t, subs, "C20 (Trinh sát)")

	_, err = org.SubUnitsOf("Đại đội 1")
	assert.ErrorIs(t, err, domain.ErrInvalidUnitPath, "a sub-unit is not a parent")
}

func TestIsValidPath(t *testing.T) {
	assert.True(t, org.IsValidPath("Tiểu đoàn 1", "Đại đội 1"))
	assert.False(t, org.IsValidPath("Tiểu đoàn 1", "Đại đội 5"),
		"Đại đội 5 belongs to Tiểu đoàn 2")
	assert.False(t, org.IsValidPath("Tiểu đoàn 9", "Đại đội 1"))

	// The whole-unit sentinel is valid under any existing parent.
	assert.True(t, org.IsValidPath("Tiểu đoàn 3", org.WholeUnit))
	assert.True(t, org.IsValidPath("Cơ quan Trung đoàn", org.WholeUnit))
	assert.False(t, org.IsValidPath("Không tồn tại", org.WholeUnit))
}
