package ports

import (
	"context"

	"github.com/hoangnv/visitgate-api/internal/domain/entity"
)

// AdvisoryService is the outbound port for the external advisory collaborator.
// Any adapter (Gemini, another model, a mock) implements this contract; the
// application layer knows only the interface.
//
// The context must carry a timeout: the call is best-effort and must never
// hold up a request transition. Callers substitute a fixed fallback phrase on
// any error, so adapters are free to fail loudly.
type AdvisoryService interface {
	// SuggestVisitAdvice returns a short guidance text for the officer
	// reviewing the request, given the unit's activity calendar.
	SuggestVisitAdvice(ctx context.Context, r *entity.VisitRequest, schedules []*entity.ScheduleEvent) (string, error)
}
