package entity

import "time"

// Visit request states.
const (
	StatusPending    = "PENDING"
	StatusApproved   = "APPROVED"
	StatusReproposed = "REPROPOSED"
	StatusRejected   = "REJECTED"
	StatusArrived    = "ARRIVED"
)

// StatusLabels maps each state to its display label (used on the tracking
// screen and in exported reports).
var StatusLabels = map[string]string{
	StatusPending:    "Chờ duyệt",
	StatusApproved:   "Đã duyệt",
	StatusReproposed: "Đề nghị đổi lịch",
	StatusRejected:   "Từ chối",
	StatusArrived:    "Đã đến cổng",
}

// VisitRequest is one registration by a relative to visit a soldier.
//
// ID is a short human-typeable code handed to the visitor at submission; it
// doubles as the tracking / gate lookup key. ParentUnit, SpecificUnit and
// UnitCategory are fixed at creation: a request always belongs to the unit it
// was filed against. Status changes only through the transition table in the
// visit package.
type VisitRequest struct {
	ID           string
	VisitorName  string
	VisitorID    string // citizen ID number (CCCD/CMND)
	VisitorPhone string
	Relationship string
	SoldierName  string
	SoldierRank  string
	ParentUnit   string
	SpecificUnit string
	UnitCategory string
	VisitDate    string // YYYY-MM-DD
	TimeSlot     string // "HH:MM - HH:MM"
	Note         string
	Status       string
	Feedback     string
	ProposedTime string // set only by a REPROPOSED transition
	CreatedAt    time.Time
	ArrivedAt    *time.Time
}

// UnitComposite returns the "specific - parent" display string.
func (r *VisitRequest) UnitComposite() string {
	return r.SpecificUnit + " - " + r.ParentUnit
}
