package entity

// Schedule event types.
const (
	ScheduleTypeTraining   = "TRAINING"
	ScheduleTypeDuty       = "DUTY"
	ScheduleTypeRestricted = "RESTRICTED"
	ScheduleTypeEvent      = "EVENT"
)

// ScheduleEvent is one entry in the unit's activity calendar. The advisory
// service reads these to warn officers about clashes between a requested
// visit and training or combat-readiness duty.
type ScheduleEvent struct {
	ID          string
	Title       string
	Date        string // YYYY-MM-DD
	Type        string // TRAINING, DUTY, RESTRICTED, EVENT
	Description string
}
