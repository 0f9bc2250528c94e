package server

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlanHandler serves the plan CRUD endpoints. Simple CRUD needs no
// service layer between handler and repo.
type PlanHandler struct {
	repo PlanRepo
}

// NewPlanHandler creates a handler over the given repository.
func NewPlanHandler(repo PlanRepo) *PlanHandler {
	return &PlanHandler{repo: repo}
}

type planPayload struct {
	Name string         `json:"name"`
	Data datatypes.JSON `json:"data"`
}

// CreatePlan stores a new plan document.
func (h *PlanHandler) CreatePlan(c *fiber.Ctx) error {
	var dto planPayload
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if len(dto.Data) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing plan data",
		})
	}

	id, err := h.repo.Create(dto.Name, dto.Data)
	if err != nil {
		log.Println(err, "Error creating plan")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create plan",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid":    id.String(),
		"message": "Plan created successfully",
	})
}

// ListPlans returns summaries of all stored plans.
func (h *PlanHandler) ListPlans(c *fiber.Ctx) error {
	records, err := h.repo.List()
	if err != nil {
		log.Println(err, "Error listing plans")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list plans",
		})
	}

	plans := make([]fiber.Map, 0, len(records))
	for _, r := range records {
		plans = append(plans, fiber.Map{
			"uuid":       r.UUID.String(),
			"name":       r.Name,
			"updated_at": r.UpdatedAt,
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"plans": plans,
	})
}

// GetPlan returns one stored plan with its document.
func (h *PlanHandler) GetPlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid plan id",
		})
	}

	record, err := h.repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Plan not found",
			})
		}
		log.Println(err, "Error getting plan")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get plan",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"plan": record,
	})
}

// UpdatePlan overwrites a stored plan document.
func (h *PlanHandler) UpdatePlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid plan id",
		})
	}

	var dto planPayload
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if _, err := h.repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Plan not found",
			})
		}
		log.Println(err, "Error getting plan")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update plan",
		})
	}

	if err := h.repo.Update(id, dto.Name, dto.Data); err != nil {
		log.Println(err, "Error updating plan")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update plan",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Plan updated successfully",
	})
}

// DeletePlan removes a stored plan.
func (h *PlanHandler) DeletePlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid plan id",
		})
	}

	if err := h.repo.Delete(id); err != nil {
		log.Println(err, "Error deleting plan")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete plan",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Plan deleted successfully",
	})
}
