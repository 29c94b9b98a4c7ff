package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/org"
)

// UnitHandler exposes the static organizational directory consumed by the
// registration form's cascading selectors.
type UnitHandler struct{}

// NewUnitHandler builds the handler.
func NewUnitHandler() *UnitHandler { return &UnitHandler{} }

type categoryNode struct {
	Key     string     `json:"key"`
	Label   string     `json:"label"`
	Parents []unitNode `json:"parents"`
}

type unitNode struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	SubUnits []string `json:"sub_units"`
}

// Tree returns the full directory: categories, parents, sub-units.
// GET /api/units
func (h *UnitHandler) Tree(c *fiber.Ctx) error {
	out := make([]categoryNode, 0, 3)
	for _, key := range org.Categories() {
		parents, err := org.ParentsOf(key)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		node := categoryNode{Key: key, Label: org.CategoryLabels[key]}
		for _, p := range parents {
			node.Parents = append(node.Parents, unitNode{ID: p.ID, Name: p.Name, SubUnits: p.SubUnits})
		}
		out = append(out, node)
	}
	return c.JSON(out)
}

// SubUnits returns the sub-units of one parent unit.
// GET /api/units/sub?parent=
func (h *UnitHandler) SubUnits(c *fiber.Ctx) error {
	parent := c.Query("parent")
	if parent == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parent là bắt buộc"})
	}
	subs, err := org.SubUnitsOf(parent)
	if err != nil {
		if err == domain.ErrInvalidUnitPath {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(subs)
}
