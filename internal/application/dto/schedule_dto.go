package dto

// CreateScheduleRequest a new calendar entry.
type CreateScheduleRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"` // YYYY-MM-DD
	Type        string `json:"type"` // TRAINING, DUTY, RESTRICTED, EVENT
	Description string `json:"description"`
}

// ScheduleResponse one calendar entry.
type ScheduleResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
}
