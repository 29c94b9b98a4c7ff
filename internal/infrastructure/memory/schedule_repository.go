package memory

import (
	"sort"
	"sync"

	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/domain/repository"
)

var _ repository.ScheduleRepository = (*ScheduleRepo)(nil)

// ScheduleRepo in-memory ScheduleRepository.
type ScheduleRepo struct {
	mu  sync.RWMutex
	evs []entity.ScheduleEvent
}

// NewScheduleRepository builds an empty calendar.
func NewScheduleRepository() *ScheduleRepo {
	return &ScheduleRepo{}
}

// Create appends a calendar entry.
func (r *ScheduleRepo) Create(ev *entity.ScheduleEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evs = append(r.evs, *ev)
	return nil
}

// List returns the calendar ordered by date.
func (r *ScheduleRepo) List() ([]*entity.ScheduleEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.ScheduleEvent, 0, len(r.evs))
	for _, ev := range r.evs {
		e := ev
		out = append(out, &e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out, nil
}
