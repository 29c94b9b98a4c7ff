package usecase

import (
	"context"
	"time"

	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/application/ports"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/domain/repository"
	"github.com/hoangnv/visitgate-api/pkg/logger"
)

// AdviceFallback is returned whenever the advisory service fails or times
// out. Advisory text is guidance only; it never gates a transition and its
// failure is never surfaced to the caller as an error.
const AdviceFallback = "Không thể lấy tư vấn từ AI vào lúc này."

// AdviceUseCase fetches best-effort guidance for the officer reviewing a
// request, cross-checking the unit's activity calendar.
type AdviceUseCase struct {
	visits    *VisitUseCase
	schedules repository.ScheduleRepository
	advisory  ports.AdvisoryService
	timeout   time.Duration
	log       *logger.Logger
}

// NewAdviceUseCase builds the use case. timeout bounds the external call.
func NewAdviceUseCase(visits *VisitUseCase, schedules repository.ScheduleRepository, advisory ports.AdvisoryService, timeout time.Duration, log *logger.Logger) *AdviceUseCase {
	return &AdviceUseCase{visits: visits, schedules: schedules, advisory: advisory, timeout: timeout, log: log}
}

// Advise returns a short suggestion for the request within the actor's
// scope. The only errors it returns are the scope/lookup ones; advisory
// failures degrade to the fallback phrase.
func (uc *AdviceUseCase) Advise(ctx context.Context, actor *entity.Account, id string) (*dto.AdviceResponse, error) {
	r, err := uc.visits.Get(actor, id)
	if err != nil {
		return nil, err
	}

	schedules, err := uc.schedules.List()
	if err != nil {
		// The calendar is an input to advice, not a requirement.
		uc.log.Warn().Err(err).Msg("advice: schedule list failed, advising without calendar")
		schedules = nil
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	advice, err := uc.advisory.SuggestVisitAdvice(callCtx, r, schedules)
	if err != nil || advice == "" {
		if err != nil {
			uc.log.Warn().Err(err).Str("id", id).Msg("advice: advisory call failed, using fallback")
		}
		advice = AdviceFallback
	}
	return &dto.AdviceResponse{ID: r.ID, Advice: advice}, nil
}
