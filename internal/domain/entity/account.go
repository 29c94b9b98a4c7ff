package entity

import "time"

// Roles for Account.
const (
	RoleVisitor = "VISITOR"
	RoleOfficer = "OFFICER"
	RoleAdmin   = "ADMIN"
)

// UnitUnaffiliated is the unit assigned to self-registered visitor accounts.
const UnitUnaffiliated = "Khách tự do"

// Account is an identity in the system. Staff accounts (OFFICER/ADMIN) are
// issued by an admin and carry a unit scope; visitor accounts self-register
// and have no administrative scope at all.
//
// Unit is the composite scope string: either a parent unit name
// ("Tiểu đoàn 1", whole battalion) or "specific - parent"
// ("Đại đội 1 - Tiểu đoàn 1", one company only). ParentUnit keeps the parent
// half separately so scope checks never have to re-split the composite.
type Account struct {
	Username     string
	DisplayName  string
	Role         string // VISITOR, OFFICER, ADMIN
	Unit         string
	ParentUnit   string
	PasswordHash string // bcrypt hash, never the plain credential after persist
	Email        string
	Phone        string
	CreatedAt    time.Time
}
