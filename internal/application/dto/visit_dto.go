package dto

import "time"

// SubmitVisitRequest a visitor's registration form.
type SubmitVisitRequest struct {
	VisitorName  string `json:"visitor_name"`
	VisitorID    string `json:"visitor_id"`
	VisitorPhone string `json:"visitor_phone"`
	Relationship string `json:"relationship"`
	SoldierName  string `json:"soldier_name"`
	SoldierRank  string `json:"soldier_rank"`
	Category     string `json:"category"`
	ParentUnit   string `json:"parent_unit"`
	SpecificUnit string `json:"specific_unit"`
	VisitDate    string `json:"visit_date"` // YYYY-MM-DD
	TimeSlot     string `json:"time_slot"`  // "HH:MM - HH:MM"
	Note         string `json:"note"`
}

// DecisionRequest body for approve/reject.
type DecisionRequest struct {
	Feedback string `json:"feedback"`
}

// ReproposeRequest body for proposing a different time window.
type ReproposeRequest struct {
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
	Feedback  string `json:"feedback"`
}

// VisitFilters narrows a scoped listing. All fields optional.
type VisitFilters struct {
	Search string `query:"search"` // visitor name / soldier name / sub-unit, substring
	Status string `query:"status"` // one status, or empty for all
	Date   string `query:"date"`   // exact visit date YYYY-MM-DD
}

// VisitResponse one request as seen by visitors and officers.
type VisitResponse struct {
	ID           string     `json:"id"`
	VisitorName  string     `json:"visitor_name"`
	VisitorID    string     `json:"visitor_id"`
	VisitorPhone string     `json:"visitor_phone"`
	Relationship string     `json:"relationship"`
	SoldierName  string     `json:"soldier_name"`
	SoldierRank  string     `json:"soldier_rank"`
	ParentUnit   string     `json:"parent_unit"`
	SpecificUnit string     `json:"specific_unit"`
	UnitCategory string     `json:"unit_category"`
	VisitDate    string     `json:"visit_date"`
	TimeSlot     string     `json:"time_slot"`
	Note         string     `json:"note,omitempty"`
	Status       string     `json:"status"`
	StatusLabel  string     `json:"status_label"`
	Feedback     string     `json:"feedback,omitempty"`
	ProposedTime string     `json:"proposed_time,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ArrivedAt    *time.Time `json:"arrived_at,omitempty"`
}

// AdviceResponse advisory text for one request. Always present: failures of
// the advisory service are replaced by a fixed fallback phrase.
type AdviceResponse struct {
	ID     string `json:"id"`
	Advice string `json:"advice"`
}

// DashboardStats counts over the requester's visible set.
type DashboardStats struct {
	Total    int    `json:"total"`
	Pending  int    `json:"pending"`
	Approved int    `json:"approved"`
	Arrived  int    `json:"arrived"`
	Rejected int    `json:"rejected"`
	Scope    string `json:"scope"` // unit label shown on the dashboard header
}
