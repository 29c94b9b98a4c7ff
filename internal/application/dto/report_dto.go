package dto

// ReportRow one line of the exported visit register.
type ReportRow struct {
	Seq          int    `json:"seq"`
	VisitorName  string `json:"visitor_name"`
	VisitorPhone string `json:"visitor_phone"`
	SoldierName  string `json:"soldier_name"`
	Unit         string `json:"unit"` // "specific - parent" composite
	TimeSlot     string `json:"time_slot"`
	StatusLabel  string `json:"status_label"`
}

// VisitReport the full report: header fields plus ordered rows. Consumable
// by any document renderer; the PDF generator is one consumer.
type VisitReport struct {
	UnitName string      `json:"unit_name"`
	Date     string      `json:"date"`
	Rows     []ReportRow `json:"rows"`
}
