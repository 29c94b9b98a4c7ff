package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangnv/visitgate-api/internal/application/usecase"
	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/infrastructure/memory"
	"github.com/hoangnv/visitgate-api/pkg/logger"
)

// stubAdvisory scripts the advisory port for tests.
type stubAdvisory struct {
	advice string
	err    error
	delay  time.Duration
	calls  int
}

func (s *stubAdvisory) SuggestVisitAdvice(ctx context.Context, _ *entity.VisitRequest, _ []*entity.ScheduleEvent) (string, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.advice, s.err
}

func newAdviceFixture(t *testing.T, stub *stubAdvisory, timeout time.Duration) (*usecase.AdviceUseCase, *usecase.VisitUseCase) {
	t.Helper()
	visitUC := newVisitUC()
	scheduleRepo := memory.NewScheduleRepository()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return usecase.NewAdviceUseCase(visitUC, scheduleRepo, stub, timeout, log), visitUC
}

func TestAdvise_ReturnsServiceText(t *testing.T) {
	stub := &stubAdvisory{advice: "Không trùng lịch, có thể duyệt."}
	uc, visitUC := newAdviceFixture(t, stub, time.Second)
	r, err := visitUC.Submit(validSubmission())
	require.NoError(t, err)

	out, err := uc.Advise(context.Background(), rootActor(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Không trùng lịch, có thể duyệt.", out.Advice)
	assert.Equal(t, 1, stub.calls)
}

func TestAdvise_FallbackOnServiceError(t *testing.T) {
	stub := &stubAdvisory{err: errors.New("HTTP 500")}
	uc, visitUC := newAdviceFixture(t, stub, time.Second)
	r, err := visitUC.Submit(validSubmission())
	require.NoError(t, err)

	out, err := uc.Advise(context.Background(), rootActor(), r.ID)
	require.NoError(t, err, "advisory failure never surfaces as an error")
	assert.Equal(t, usecase.AdviceFallback, out.Advice)
}

func TestAdvise_FallbackOnEmptyReply(t *testing.T) {
	stub := &stubAdvisory{advice: ""}
	uc, visitUC := newAdviceFixture(t, stub, time.Second)
	r, err := visitUC.Submit(validSubmission())
	require.NoError(t, err)

	out, err := uc.Advise(context.Background(), rootActor(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, usecase.AdviceFallback, out.Advice)
}

func TestAdvise_FallbackOnTimeout(t *testing.T) {
	stub := &stubAdvisory{advice: "quá muộn", delay: 200 * time.Millisecond}
	uc, visitUC := newAdviceFixture(t, stub, 20*time.Millisecond)
	r, err := visitUC.Submit(validSubmission())
	require.NoError(t, err)

	out, err := uc.Advise(context.Background(), rootActor(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, usecase.AdviceFallback, out.Advice)
}

func TestAdvise_ScopeStillEnforced(t *testing.T) {
	stub := &stubAdvisory{advice: "OK"}
	uc, visitUC := newAdviceFixture(t, stub, time.Second)
	r, err := visitUC.Submit(validSubmission()) // Đại đội 1 - Tiểu đoàn 1
	require.NoError(t, err)

	other := &entity.Account{Username: "tieudoan2", Role: entity.RoleOfficer, Unit: "Tiểu đoàn 2"}
	_, err = uc.Advise(context.Background(), other, r.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, stub.calls, "no advisory call for an out-of-scope request")

	_, err = uc.Advise(context.Background(), rootActor(), "ZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
