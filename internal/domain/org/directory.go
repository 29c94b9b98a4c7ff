// Package org holds the static organizational directory: three unit blocks
// (battalions, regiment headquarters, direct companies), each with parent
// units and their sub-units. The data is reference-only and fixed at compile
// time; nothing in the system creates or mutates units.
package org

import "github.com/hoangnv/visitgate-api/internal/domain"

// Unit categories.
const (
	CategoryBattalion     = "BATTALION"
	CategoryRegimentHQ    = "REGIMENT_HQ"
	CategoryDirectCompany = "DIRECT_COMPANY"
)

// WholeUnit is the sentinel "specific unit" meaning the whole parent unit.
// An account scoped with this sentinel sees every sub-unit under its parent.
const WholeUnit = "TOÀN TIỂU ĐOÀN"

// CategoryLabels maps category keys to display labels.
var CategoryLabels = map[string]string{
	CategoryBattalion:     "Khối Tiểu đoàn",
	CategoryRegimentHQ:    "Khối Cơ quan",
	CategoryDirectCompany: "Khối Trực thuộc",
}

// ParentUnit is one selectable parent unit with its declared sub-units.
type ParentUnit struct {
	ID       string
	Name     string
	SubUnits []string
}

var battalionSubUnits = func(companies ...string) []string {
	return append(companies,
		"bTT (Thông tin)", "bSPG (Hỏa lực)", "b12,7 (Phòng không)", "bNQ (Nuôi quân)")
}

var structure = map[string][]ParentUnit{
	CategoryBattalion: {
		{ID: "D1", Name: "Tiểu đoàn 1", SubUnits: battalionSubUnits("Đại đội 1", "Đại đội 2", "Đại đội 3", "Đại đội 4")},
		{ID: "D2", Name: "Tiểu đoàn 2", SubUnits: battalionSubUnits("Đại đội 5", "Đại đội 6", "Đại đội 7", "Đại đội 8")},
		{ID: "D3", Name: "Tiểu đoàn 3", SubUnits: battalionSubUnits("Đại đội 9", "Đại đội 10", "Đại đội 11", "Đại đội 12")},
	},
	CategoryRegimentHQ: {
		{ID: "HQ", Name: "Cơ quan Trung đoàn", SubUnits: []string{
			"Ban Tham mưu", "Ban Chính trị", "Ban Hậu cần - Kỹ thuật",
		}},
	},
	CategoryDirectCompany: {
		{ID: "DC", Name: "Các đại đội trực thuộc", SubUnits: []string{
			"C14 (Cối 100)", "C15 (SPG9)", "C16 (SMPK 12,7)", "C17 (Công binh)",
			"C18 (Thông tin)", "C20 (Trinh sát)", "C24 (Quân y)", "C25 (Vận tải)",
		}},
	},
}

// Categories returns the category keys in presentation order.
func Categories() []string {
	return []string{CategoryBattalion, CategoryRegimentHQ, CategoryDirectCompany}
}

// ParentsOf returns the parent units declared under a category, in order.
// Unknown categories yield ErrInvalidUnitPath.
func ParentsOf(category string) ([]ParentUnit, error) {
	units, ok := structure[category]
	if !ok {
		return nil, domain.ErrInvalidUnitPath
	}
	return units, nil
}

// ResolveParent finds a parent unit by category and name. When the name is
// empty or not declared under that category, it falls back to the first
// declared parent of the category (the registration form resets the parent
// selector this way whenever the category changes). An unknown category is
// never silently substituted: it fails with ErrInvalidUnitPath.
func ResolveParent(category, parentName string) (ParentUnit, error) {
	units, ok := structure[category]
	if !ok {
		return ParentUnit{}, domain.ErrInvalidUnitPath
	}
	for _, u := range units {
		if u.Name == parentName {
			return u, nil
		}
	}
	return units[0], nil
}

// SubUnitsOf returns the ordered sub-unit names of a parent unit, searched
// across all categories. Unknown parents yield ErrInvalidUnitPath.
func SubUnitsOf(parentName string) ([]string, error) {
	for _, units := range structure {
		for _, u := range units {
			if u.Name == parentName {
				return u.SubUnits, nil
			}
		}
	}
	return nil, domain.ErrInvalidUnitPath
}

// IsValidPath reports whether (parentName, specificName) is a declared unit
// path. The sentinel WholeUnit is valid for every existing parent.
func IsValidPath(parentName, specificName string) bool {
	subs, err := SubUnitsOf(parentName)
	if err != nil {
		return false
	}
	if specificName == WholeUnit {
		return true
	}
	for _, s := range subs {
		if s == specificName {
			return true
		}
	}
	return false
}
