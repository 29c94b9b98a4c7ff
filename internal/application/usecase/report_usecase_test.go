package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/application/usecase"
	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/domain/org"
)

// stubPDF records what it was asked to render.
type stubPDF struct {
	lastReport *dto.VisitReport
	lastPass   *entity.VisitRequest
}

func (s *stubPDF) GenerateVisitReport(_ context.Context, report *dto.VisitReport) ([]byte, error) {
	s.lastReport = report
	return []byte("%PDF-report"), nil
}

func (s *stubPDF) GenerateVisitPass(_ context.Context, r *entity.VisitRequest) ([]byte, error) {
	s.lastPass = r
	return []byte("%PDF-pass"), nil
}

func TestBuild_RowsAreScopedAndNumbered(t *testing.T) {
	visitUC := newVisitUC()
	uc := usecase.NewReportUseCase(visitUC, &stubPDF{})

	submitTo(t, visitUC, "Tiểu đoàn 1", "Đại đội 1", org.CategoryBattalion)
	submitTo(t, visitUC, "Tiểu đoàn 1", "Đại đội 2", org.CategoryBattalion)
	submitTo(t, visitUC, "Tiểu đoàn 2", "Đại đội 5", org.CategoryBattalion)

	report, err := uc.Build(battalionOfficer(), dto.VisitFilters{})
	require.NoError(t, err)

	assert.Equal(t, "Tiểu đoàn 1", report.UnitName)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, 1, report.Rows[0].Seq)
	assert.Equal(t, 2, report.Rows[1].Seq)
	assert.Equal(t, "Chờ duyệt", report.Rows[0].StatusLabel)
	assert.Contains(t, report.Rows[0].Unit, " - Tiểu đoàn 1")
}

func TestBuild_RootHeaderIsWholeOrganization(t *testing.T) {
	visitUC := newVisitUC()
	uc := usecase.NewReportUseCase(visitUC, &stubPDF{})
	submitTo(t, visitUC, "Tiểu đoàn 1", "Đại đội 1", org.CategoryBattalion)

	report, err := uc.Build(rootActor(), dto.VisitFilters{Date: "2026-09-15"})
	require.NoError(t, err)
	assert.Equal(t, "TOÀN ĐƠN VỊ", report.UnitName)
	assert.Equal(t, "2026-09-15", report.Date)
}

func TestRenderPDF_DelegatesToGenerator(t *testing.T) {
	visitUC := newVisitUC()
	pdf := &stubPDF{}
	uc := usecase.NewReportUseCase(visitUC, pdf)
	submitTo(t, visitUC, "Tiểu đoàn 1", "Đại đội 1", org.CategoryBattalion)

	out, err := uc.RenderPDF(context.Background(), rootActor(), dto.VisitFilters{})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-report"), out)
	require.NotNil(t, pdf.lastReport)
	assert.Len(t, pdf.lastReport.Rows, 1)
}

func TestRenderPass_OnlyApprovedOrArrived(t *testing.T) {
	visitUC := newVisitUC()
	pdf := &stubPDF{}
	uc := usecase.NewReportUseCase(visitUC, pdf)
	r := submitTo(t, visitUC, "Tiểu đoàn 1", "Đại đội 1", org.CategoryBattalion)

	_, err := uc.RenderPass(context.Background(), r.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "a pending request has no pass")
	assert.Nil(t, pdf.lastPass)

	_, err = visitUC.Approve(rootActor(), r.ID, "")
	require.NoError(t, err)
	out, err := uc.RenderPass(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-pass"), out)

	_, err = visitUC.ConfirmArrival(r.ID)
	require.NoError(t, err)
	_, err = uc.RenderPass(context.Background(), r.ID)
	require.NoError(t, err, "an arrived visit still prints its pass")

	_, err = uc.RenderPass(context.Background(), "ZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDashboardStats_CountsPerStatus(t *testing.T) {
	visitUC := newVisitUC()
	uc := usecase.NewDashboardUseCase(visitUC)

	a := submitTo(t, visitUC, "Tiểu đoàn 1", "Đại đội 1", org.CategoryBattalion)
	b := submitTo(t, visitUC, "Tiểu đoàn 1", "Đại đội 2", org.CategoryBattalion)
	submitTo(t, visitUC, "Tiểu đoàn 2", "Đại đội 5", org.CategoryBattalion)

	_, err := visitUC.Approve(rootActor(), a.ID, "")
	require.NoError(t, err)
	_, err = visitUC.Reject(rootActor(), b.ID, "")
	require.NoError(t, err)

	stats, err := uc.Stats(battalionOfficer())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Approved)
	assert.Equal(t, 1, stats.Rejected)
	assert.Equal(t, 0, stats.Pending)
	assert.Equal(t, "Tiểu đoàn 1", stats.Scope)

	rootStats, err := uc.Stats(rootActor())
	require.NoError(t, err)
	assert.Equal(t, 3, rootStats.Total)
	assert.Equal(t, "TOÀN ĐƠN VỊ", rootStats.Scope)

	visitor := &entity.Account{Username: "0909123456", Role: entity.RoleVisitor}
	_, err = uc.Stats(visitor)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
