package repository

import "github.com/hoangnv/visitgate-api/internal/domain/entity"

// ScheduleRepository is the persistence port for the unit activity calendar.
type ScheduleRepository interface {
	Create(ev *entity.ScheduleEvent) error
	List() ([]*entity.ScheduleEvent, error)
}
