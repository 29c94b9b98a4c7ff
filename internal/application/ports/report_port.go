package ports

import (
	"context"

	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
)

// ReportPDFGenerator renders the already-computed report or a single visit
// pass as a printable document. Pure presentation: it never reads storage.
type ReportPDFGenerator interface {
	// GenerateVisitReport renders the A4 visit register for printing.
	GenerateVisitReport(ctx context.Context, report *dto.VisitReport) ([]byte, error)
	// GenerateVisitPass renders a one-page gate pass with the request's
	// code as a QR image for scanning at the gate.
	GenerateVisitPass(ctx context.Context, r *entity.VisitRequest) ([]byte, error)
}
