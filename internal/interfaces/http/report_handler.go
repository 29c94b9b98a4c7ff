package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/application/usecase"
	"github.com/hoangnv/visitgate-api/internal/domain"
)

// ReportHandler serves the visit register (JSON and PDF) and the printable
// gate pass.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get returns the scoped register as JSON.
// GET /api/reports/visits?search=&status=&date=
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	var f dto.VisitFilters
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tham số lọc không hợp lệ"})
	}
	report, err := h.uc.Build(Actor(c), f)
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// GetPDF renders the scoped register for printing.
// GET /api/reports/visits/pdf?search=&status=&date=
func (h *ReportHandler) GetPDF(c *fiber.Ctx) error {
	var f dto.VisitFilters
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tham số lọc không hợp lệ"})
	}
	pdfBytes, err := h.uc.RenderPDF(c.Context(), Actor(c), f)
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="so-dang-ky-tham.pdf"`)
	return c.Send(pdfBytes)
}

// GetPass renders the gate pass of one approved visit. Public: the visitor
// downloads it from the tracking screen with only the code.
// GET /api/visits/:id/pass
func (h *ReportHandler) GetPass(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.RenderPass(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "không tìm thấy yêu cầu thăm"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NOT_APPROVED", Message: "yêu cầu chưa được phê duyệt, không có giấy hẹn"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="giay-hen-tham.pdf"`)
	return c.Send(pdfBytes)
}
