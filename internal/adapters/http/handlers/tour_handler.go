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

// TourHandler handles tour program endpoints
type TourHandler struct {
	tourService *services.TourService
	settings    *services.SettingsService
	store       *session.Store
}

// NewTourHandler creates a new tour handler
func NewTourHandler(tourService *services.TourService, settings *services.SettingsService, store *session.Store) *TourHandler {
	return &TourHandler{
		tourService: tourService,
		settings:    settings,
		store:       store,
	}
}

// TourRequest represents a tour program submission. Raw strings only;
// the validation pipeline owns all parsing.
type TourRequest struct {
	Name        string `json:"name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Destination string `json:"destination"`
	TotalCost   string `json:"total_cost"`
	Description string `json:"description"`
}

func (r *TourRequest) fields() map[string]string {
	return map[string]string{
		"name":        r.Name,
		"start_date":  r.StartDate,
		"end_date":    r.EndDate,
		"destination": r.Destination,
		"total_cost":  r.TotalCost,
		"description": r.Description,
	}
}

// Create handles tour program creation
// @Summary Create tour program
// @Description Validate and persist a new tour program
// @Tags Tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TourRequest true "Tour program fields"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /tours [post]
func (h *TourHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req TourRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tour, result, err := h.tourService.Create(c.Context(), userID, req.fields())
	if err != nil {
		return response.InternalServerError(c, "Failed to create tour program")
	}
	if !result.OK() {
		return response.ValidationFailed(c, result.Errors, result.Fields)
	}

	return response.Created(c, i18n.T(h.lang(c), "tour_created"), fiber.Map{
		"tour": tour,
	})
}

// List handles tour program listing
// @Summary List tour programs
// @Description List the current user's tour programs, newest start date first
// @Tags Tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /tours [get]
func (h *TourHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	params := pagination.GetParams(c)

	tours, total, err := h.tourService.ListByUser(c.Context(), userID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list tour programs")
	}

	return response.Success(c, "Tour programs retrieved successfully", fiber.Map{
		"tours":      tours,
		"pagination": pagination.GetMeta(params, total),
	})
}

// Get handles single tour program retrieval
// @Summary Get tour program
// @Description Get one of the current user's tour programs
// @Tags Tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tour program ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /tours/{id} [get]
func (h *TourHandler) Get(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid tour program ID")
	}

	tour, err := h.tourService.GetByID(c.Context(), userID, uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrTourNotFound) || errors.Is(err, domain.ErrNotOwner) {
			return response.NotFound(c, i18n.T(h.lang(c), "not_found"))
		}
		return response.InternalServerError(c, "Failed to get tour program")
	}

	return response.Success(c, "Tour program retrieved successfully", fiber.Map{
		"tour": tour,
	})
}

// Delete handles tour program deletion
// @Summary Delete tour program
// @Description Delete one of the current user's tour programs
// @Tags Tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tour program ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /tours/{id} [delete]
func (h *TourHandler) Delete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid tour program ID")
	}

	if err := h.tourService.Delete(c.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, domain.ErrTourNotFound) || errors.Is(err, domain.ErrNotOwner) {
			return response.NotFound(c, i18n.T(h.lang(c), "not_found"))
		}
		return response.InternalServerError(c, "Failed to delete tour program")
	}

	return response.Success(c, i18n.T(h.lang(c), "tour_deleted"), nil)
}

// lang resolves the response language from the session
func (h *TourHandler) lang(c *fiber.Ctx) string {
	fallback := h.settings.DefaultLanguage(c.Context())
	sess, err := h.store.Get(c)
	if err != nil {
		return fallback
	}
	return sessionLanguage(sess, fallback)
}
