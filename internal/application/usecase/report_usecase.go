package usecase

import (
	"context"

	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/application/ports"
	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
)

// ReportUseCase projects the scope-filtered request set into report rows and
// delegates rendering to the PDF generator. The projection itself is a pure
// transform with no I/O of its own.
type ReportUseCase struct {
	visits *VisitUseCase
	pdf    ports.ReportPDFGenerator
}

// NewReportUseCase builds the use case.
func NewReportUseCase(visits *VisitUseCase, pdf ports.ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{visits: visits, pdf: pdf}
}

// Build computes the report over the actor's visible set, narrowed by the
// filters. Rows keep the listing order (most recent first) and are numbered
// from 1.
func (uc *ReportUseCase) Build(actor *entity.Account, f dto.VisitFilters) (*dto.VisitReport, error) {
	listed, err := uc.visits.ListForAccount(actor, f)
	if err != nil {
		return nil, err
	}
	report := &dto.VisitReport{
		UnitName: actor.Unit,
		Date:     f.Date,
		Rows:     make([]dto.ReportRow, 0, len(listed)),
	}
	if uc.visits.policy.Scope(actor).All {
		report.UnitName = "TOÀN ĐƠN VỊ"
	}
	for i, r := range listed {
		report.Rows = append(report.Rows, dto.ReportRow{
			Seq:          i + 1,
			VisitorName:  r.VisitorName,
			VisitorPhone: r.VisitorPhone,
			SoldierName:  r.SoldierName,
			Unit:         r.SpecificUnit + " - " + r.ParentUnit,
			TimeSlot:     r.TimeSlot,
			StatusLabel:  r.StatusLabel,
		})
	}
	return report, nil
}

// RenderPDF builds the report and renders it for printing.
func (uc *ReportUseCase) RenderPDF(ctx context.Context, actor *entity.Account, f dto.VisitFilters) ([]byte, error) {
	report, err := uc.Build(actor, f)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateVisitReport(ctx, report)
}

// RenderPass renders the printable gate pass with the request's QR code.
// Only an approved (or already arrived) visit has a pass.
func (uc *ReportUseCase) RenderPass(ctx context.Context, id string) ([]byte, error) {
	r, err := uc.visits.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r.Status != entity.StatusApproved && r.Status != entity.StatusArrived {
		return nil, domain.ErrForbidden
	}
	return uc.pdf.GenerateVisitPass(ctx, r)
}
