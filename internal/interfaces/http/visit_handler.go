package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/application/usecase"
	"github.com/hoangnv/visitgate-api/internal/domain"
)

// VisitHandler handles the request lifecycle: public submission and
// tracking, officer decisions, arrival confirmation.
type VisitHandler struct {
	uc     *usecase.VisitUseCase
	advice *usecase.AdviceUseCase
}

// NewVisitHandler builds the handler.
func NewVisitHandler(uc *usecase.VisitUseCase, advice *usecase.AdviceUseCase) *VisitHandler {
	return &VisitHandler{uc: uc, advice: advice}
}

// Submit godoc
// @Summary      Đăng ký thăm quân nhân
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitVisitRequest  true  "thông tin đăng ký"
// @Success      201   {object}  dto.VisitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/visits [post]
func (h *VisitHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "nội dung yêu cầu không hợp lệ"})
	}
	r, err := h.uc.Submit(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "thiếu thông tin bắt buộc hoặc ngày thăm không hợp lệ"})
		}
		if err == domain.ErrInvalidUnitPath {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_UNIT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

// List returns the requests inside the caller's scope, filtered.
// GET /api/visits?search=&status=&date=
func (h *VisitHandler) List(c *fiber.Ctx) error {
	var f dto.VisitFilters
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tham số lọc không hợp lệ"})
	}
	out, err := h.uc.ListForAccount(Actor(c), f)
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Approve moves a pending request to APPROVED.
// POST /api/visits/:id/approve
func (h *VisitHandler) Approve(c *fiber.Ctx) error {
	var in dto.DecisionRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "nội dung yêu cầu không hợp lệ"})
	}
	r, err := h.uc.Approve(Actor(c), c.Params("id"), in.Feedback)
	return h.respondDecision(c, r, err)
}

// Reject moves a pending request to REJECTED.
// POST /api/visits/:id/reject
func (h *VisitHandler) Reject(c *fiber.Ctx) error {
	var in dto.DecisionRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "nội dung yêu cầu không hợp lệ"})
	}
	r, err := h.uc.Reject(Actor(c), c.Params("id"), in.Feedback)
	return h.respondDecision(c, r, err)
}

// Repropose moves a pending request to REPROPOSED with a new time window.
// POST /api/visits/:id/repropose
func (h *VisitHandler) Repropose(c *fiber.Ctx) error {
	var in dto.ReproposeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "nội dung yêu cầu không hợp lệ"})
	}
	r, err := h.uc.Repropose(Actor(c), c.Params("id"), in.StartTime, in.EndTime, in.Feedback)
	return h.respondDecision(c, r, err)
}

func (h *VisitHandler) respondDecision(c *fiber.Ctx, r *dto.VisitResponse, err error) error {
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "khung giờ đề xuất không hợp lệ"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "không tìm thấy yêu cầu thăm"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
		}
		if err == domain.ErrInvalidTransition {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(r)
}

// ConfirmArrival marks an approved visit as arrived. Public: the gate guard
// scans the pass code, no account involved.
// POST /api/visits/:id/arrival
func (h *VisitHandler) ConfirmArrival(c *fiber.Ctx) error {
	r, err := h.uc.ConfirmArrival(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "không tìm thấy yêu cầu thăm"})
		}
		if err == domain.ErrInvalidTransition {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(r)
}

// Track is the anonymous status lookup by code or phone number.
// GET /api/visits/track?q=
func (h *VisitHandler) Track(c *fiber.Ctx) error {
	r, err := h.uc.Track(c.Query("q"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "thiếu từ khóa tra cứu"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "không tìm thấy yêu cầu thăm phù hợp"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(r)
}

// Advice returns AI guidance for one request within the caller's scope.
// GET /api/visits/:id/advice
func (h *VisitHandler) Advice(c *fiber.Ctx) error {
	out, err := h.advice.Advise(c.Context(), Actor(c), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "không tìm thấy yêu cầu thăm"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
