package usecase

import (
	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
)

// DashboardUseCase aggregates status counts over the actor's visible set for
// the monitoring screen.
type DashboardUseCase struct {
	visits *VisitUseCase
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(visits *VisitUseCase) *DashboardUseCase {
	return &DashboardUseCase{visits: visits}
}

// Stats counts the visible requests per status.
func (uc *DashboardUseCase) Stats(actor *entity.Account) (*dto.DashboardStats, error) {
	visible, err := uc.visits.Visible(actor)
	if err != nil {
		return nil, err
	}
	stats := &dto.DashboardStats{Total: len(visible), Scope: actor.Unit}
	if uc.visits.policy.Scope(actor).All {
		stats.Scope = "TOÀN ĐƠN VỊ"
	}
	for _, r := range visible {
		switch r.Status {
		case entity.StatusPending:
			stats.Pending++
		case entity.StatusApproved:
			stats.Approved++
		case entity.StatusArrived:
			stats.Arrived++
		case entity.StatusRejected:
			stats.Rejected++
		}
	}
	return stats, nil
}
