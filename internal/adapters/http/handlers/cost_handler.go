package handlers

import (
	"errors"
	"strconv"

	"costtrack/internal/core/domain"
	"costtrack/internal/core/services"
	"costtrack/internal/i18n"
	"costtrack/internal/pkg/pagination"
	"costtrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// CostHandler handles cost entry endpoints
type CostHandler struct {
	costService *services.CostService
	settings    *services.SettingsService
	store       *session.Store
}

// NewCostHandler creates a new cost handler
func NewCostHandler(costService *services.CostService, settings *services.SettingsService, store *session.Store) *CostHandler {
	return &CostHandler{
		costService: costService,
		settings:    settings,
		store:       store,
	}
}

// CostRequest represents a cost entry submission. Every field arrives
// as a raw string and goes through the validation pipeline unchanged.
type CostRequest struct {
	Name        string `json:"name"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (r *CostRequest) fields() map[string]string {
	return map[string]string{
		"name":        r.Name,
		"amount":      r.Amount,
		"date":        r.Date,
		"description": r.Description,
		"category":    r.Category,
	}
}

// Create handles cost entry creation
// @Summary Create cost entry
// @Description Validate and persist a new cost entry
// @Tags Costs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CostRequest true "Cost entry fields"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /costs [post]
func (h *CostHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CostRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	cost, result, err := h.costService.Create(c.Context(), userID, req.fields())
	if err != nil {
		return response.InternalServerError(c, "Failed to create cost entry")
	}
	if !result.OK() {
		return response.ValidationFailed(c, result.Errors, result.Fields)
	}

	return response.Created(c, i18n.T(h.lang(c), "cost_created"), fiber.Map{
		"cost": cost,
	})
}

// List handles cost entry listing
// @Summary List cost entries
// @Description List the current user's cost entries, newest date first
// @Tags Costs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /costs [get]
func (h *CostHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	params := pagination.GetParams(c)

	costs, total, err := h.costService.ListByUser(c.Context(), userID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list cost entries")
	}

	return response.Success(c, "Cost entries retrieved successfully", fiber.Map{
		"costs":      costs,
		"pagination": pagination.GetMeta(params, total),
	})
}

// Get handles single cost entry retrieval
// @Summary Get cost entry
// @Description Get one of the current user's cost entries
// @Tags Costs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cost entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /costs/{id} [get]
func (h *CostHandler) Get(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid cost entry ID")
	}

	cost, err := h.costService.GetByID(c.Context(), userID, uint(id))
	if err != nil {
		// Another user's entry is reported as missing, not forbidden
		if errors.Is(err, domain.ErrCostNotFound) || errors.Is(err, domain.ErrNotOwner) {
			return response.NotFound(c, i18n.T(h.lang(c), "not_found"))
		}
		return response.InternalServerError(c, "Failed to get cost entry")
	}

	return response.Success(c, "Cost entry retrieved successfully", fiber.Map{
		"cost": cost,
	})
}

// Delete handles cost entry deletion
// @Summary Delete cost entry
// @Description Delete one of the current user's cost entries
// @Tags Costs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cost entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /costs/{id} [delete]
func (h *CostHandler) Delete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid cost entry ID")
	}

	if err := h.costService.Delete(c.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, domain.ErrCostNotFound) || errors.Is(err, domain.ErrNotOwner) {
			return response.NotFound(c, i18n.T(h.lang(c), "not_found"))
		}
		return response.InternalServerError(c, "Failed to delete cost entry")
	}

	return response.Success(c, i18n.T(h.lang(c), "cost_deleted"), nil)
}

// lang resolves the response language from the session
func (h *CostHandler) lang(c *fiber.Ctx) string {
	fallback := h.settings.DefaultLanguage(c.Context())
	sess, err := h.store.Get(c)
	if err != nil {
		return fallback
	}
	return sessionLanguage(sess, fallback)
}
