// Package access is the single implementation of the unit-scope
// authorization rule. Every listing and every mutating operation consults
// this package; no screen or handler carries its own copy of the rule.
package access

import "github.com/hoangnv/visitgate-api/internal/domain/entity"

// Scope is what an account may see and act on: either the whole
// organization, or one unit-path prefix.
type Scope struct {
	All  bool
	Unit string // composite scope string when All is false
}

// Policy evaluates scopes. RootUsername identifies the one unconditionally
// privileged identity; it is configuration, not a constant, so deployments
// can rotate it without a rebuild.
type Policy struct {
	RootUsername string
}

// Scope returns the account's scope. The root identity always maps to the
// organization-wide scope regardless of its stored unit. Visitor accounts
// have no administrative scope at all; their access is the anonymous
// tracking path.
func (p Policy) Scope(acc *entity.Account) Scope {
	if acc == nil || acc.Role == entity.RoleVisitor {
		return Scope{}
	}
	if acc.Username == p.RootUsername {
		return Scope{All: true}
	}
	return Scope{Unit: acc.Unit}
}

// CanView reports whether the account may see (and therefore act on) the
// request. Two granularities: a scope equal to the request's parent unit
// covers every sub-unit under it; a scope equal to the request's
// "specific - parent" composite covers only that sub-unit.
func (p Policy) CanView(acc *entity.Account, r *entity.VisitRequest) bool {
	s := p.Scope(acc)
	if s.All {
		return true
	}
	if s.Unit == "" {
		return false
	}
	return s.Unit == r.ParentUnit || s.Unit == r.UnitComposite()
}

// CanManageAccounts reports whether the account may create or delete
// accounts. Only the organization-wide scope (the root identity) qualifies.
func (p Policy) CanManageAccounts(acc *entity.Account) bool {
	return p.Scope(acc).All
}
