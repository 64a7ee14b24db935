package handlers

import (
	"errors"

	"costtrack/internal/core/services"
	"costtrack/internal/core/validation"
	"costtrack/internal/i18n"
	"costtrack/internal/pkg/pagination"
	"costtrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SettingsHandler handles language and system setting endpoints
type SettingsHandler struct {
	settings *services.SettingsService
	store    *session.Store
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings *services.SettingsService, store *session.Store) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		store:    store,
	}
}

// LanguageRequest represents a language change request body
type LanguageRequest struct {
	Language string `json:"language"`
}

// GetLanguage returns the session's current display language
// @Summary Get current language
// @Description Returns the session language and the allowed codes
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /settings/language [get]
func (h *SettingsHandler) GetLanguage(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return response.InternalServerError(c, "Failed to load session")
	}

	lang := sessionLanguage(sess, h.settings.DefaultLanguage(c.Context()))

	return response.Success(c, "Language retrieved successfully", fiber.Map{
		"language": lang,
		"allowed":  h.settings.AllowedLanguages(),
	})
}

// ChangeLanguage switches the session's display language
// @Summary Change language
// @Description Validate the requested code and store it in the session
// @Tags Settings
// @Accept json
// @Produce json
// @Param body body LanguageRequest true "Language code"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /settings/language [put]
func (h *SettingsHandler) ChangeLanguage(c *fiber.Ctx) error {
	var req LanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return response.InternalServerError(c, "Failed to load session")
	}
	fallback := h.settings.DefaultLanguage(c.Context())

	lang, err := h.settings.ValidateLanguage(req.Language)
	if err != nil {
		if errors.Is(err, validation.ErrInvalidLanguage) {
			return response.BadRequest(c, i18n.T(sessionLanguage(sess, fallback), "language_invalid"))
		}
		return response.InternalServerError(c, "Failed to change language")
	}

	sess.Set(sessKeyLanguage, lang)
	if err := sess.Save(); err != nil {
		return response.InternalServerError(c, "Failed to save session")
	}

	return response.Success(c, i18n.T(lang, "language_changed"), fiber.Map{
		"language": lang,
	})
}

// SetDefaultLanguage stores the system-wide fallback language
// @Summary Set default language
// @Description Admin only, stores the fallback language system setting
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body LanguageRequest true "Language code"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /settings/default-language [put]
func (h *SettingsHandler) SetDefaultLanguage(c *fiber.Ctx) error {
	var req LanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.settings.SetDefaultLanguage(c.Context(), req.Language); err != nil {
		if errors.Is(err, validation.ErrInvalidLanguage) {
			return response.BadRequest(c, "Language not supported")
		}
		return response.InternalServerError(c, "Failed to set default language")
	}

	return response.Success(c, "Default language updated successfully", fiber.Map{
		"language": req.Language,
	})
}

// ListSettings returns every system setting
// @Summary List system settings
// @Description Admin only, lists all system settings
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /settings [get]
func (h *SettingsHandler) ListSettings(c *fiber.Ctx) error {
	settings, err := h.settings.ListSettings(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list settings")
	}

	return response.Success(c, "Settings retrieved successfully", fiber.Map{
		"settings": settings,
	})
}

// ListUsers returns a page of registered users
// @Summary List users
// @Description Admin only, lists provisioned user accounts
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /settings/users [get]
func (h *SettingsHandler) ListUsers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	users, total, err := h.settings.ListUsers(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	responses := make([]interface{}, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}

	return response.Success(c, "Users retrieved successfully", fiber.Map{
		"users":      responses,
		"pagination": pagination.GetMeta(params, total),
	})
}
