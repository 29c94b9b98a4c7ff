package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/domain/repository"
)

var scheduleTypes = map[string]bool{
	entity.ScheduleTypeTraining:   true,
	entity.ScheduleTypeDuty:       true,
	entity.ScheduleTypeRestricted: true,
	entity.ScheduleTypeEvent:      true,
}

// ScheduleUseCase manages the unit activity calendar consumed by officers
// and by the advisory service.
type ScheduleUseCase struct {
	schedules repository.ScheduleRepository
}

// NewScheduleUseCase builds the use case.
func NewScheduleUseCase(schedules repository.ScheduleRepository) *ScheduleUseCase {
	return &ScheduleUseCase{schedules: schedules}
}

// Create adds a calendar entry.
func (uc *ScheduleUseCase) Create(in dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if in.Title == "" || !scheduleTypes[in.Type] {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse(dateLayout, in.Date); err != nil {
		return nil, domain.ErrInvalidInput
	}
	ev := &entity.ScheduleEvent{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Date:        in.Date,
		Type:        in.Type,
		Description: in.Description,
	}
	if err := uc.schedules.Create(ev); err != nil {
		return nil, err
	}
	return toScheduleResponse(ev), nil
}

// List returns the calendar ordered by date.
func (uc *ScheduleUseCase) List() ([]*dto.ScheduleResponse, error) {
	evs, err := uc.schedules.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ScheduleResponse, 0, len(evs))
	for _, ev := range evs {
		out = append(out, toScheduleResponse(ev))
	}
	return out, nil
}

func toScheduleResponse(ev *entity.ScheduleEvent) *dto.ScheduleResponse {
	return &dto.ScheduleResponse{
		ID:          ev.ID,
		Title:       ev.Title,
		Date:        ev.Date,
		Type:        ev.Type,
		Description: ev.Description,
	}
}
