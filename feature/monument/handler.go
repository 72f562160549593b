package monument

import (
	"context"
	"errors"

	"monument-catalog/core/logger"
	"monument-catalog/core/reconcile"
	"monument-catalog/core/utils"
	"monument-catalog/feature/monument/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for monument reviews.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the monument and suggestion routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/monuments/:id/diff", h.HandleDiffMonument)

	suggestions := app.Group("/suggestions")
	suggestions.Get("/:id/diff", h.HandleDiffSuggestion)
	suggestions.Post("/:id/approve", h.HandleApprove)
	suggestions.Post("/:id/reject", h.HandleReject)
}

func toggleFromQuery(c *fiber.Ctx) reconcile.Toggle {
	return reconcile.Toggle{
		ShowAllChanged: utils.ParseToggle(c.Query("all")),
		ShowUnchanged:  utils.ParseToggle(c.Query("unchanged")),
	}
}

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrMonumentNotFound), errors.Is(err, ErrSuggestionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrSuggestionClosed):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleDiffMonument reviews a proposed update against a monument.
// @Summary Diff Proposed Update
// @Description Compares a proposed update with the monument's current state and returns the changed and unchanged attributes.
// @Tags monuments
// @Accept json
// @Produce json
// @Param id path int true "Monument ID"
// @Param all query boolean false "Show all changed attributes"
// @Param unchanged query boolean false "Show unchanged attributes"
// @Param mode query string false "Media display mode (update, suggestion)"
// @Param update body UpdateRequest true "Proposed update"
// @Success 200 {object} reconcile.Review "Review"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Monument Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /monuments/{id}/diff [post]
func (h *Handler) HandleDiffMonument(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	req, err := DecodeUpdate(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mode := reconcile.UpdateMode
	if c.Query("mode") == reconcile.SuggestionMode.String() {
		mode = reconcile.SuggestionMode
	}

	review, err := h.service.DiffMonument(c.Context(), id, req.Update(), mode, toggleFromQuery(c))
	if err != nil {
		status := errorStatus(err)
		if status == fiber.StatusInternalServerError {
			l.Error("Monument diff failed", zap.Uint("monument_id", id), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(review)
}

// HandleDiffSuggestion reviews a stored suggestion.
// @Summary Diff Suggestion
// @Description Compares a pending suggestion with its monument's current state.
// @Tags suggestions
// @Produce json
// @Param id path int true "Suggestion ID"
// @Param all query boolean false "Show all changed attributes"
// @Param unchanged query boolean false "Show unchanged attributes"
// @Success 200 {object} SuggestionReview "Suggestion Review"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /suggestions/{id}/diff [get]
func (h *Handler) HandleDiffSuggestion(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := h.service.DiffSuggestion(c.Context(), id, toggleFromQuery(c))
	if err != nil {
		status := errorStatus(err)
		if status == fiber.StatusInternalServerError {
			l.Error("Suggestion diff failed", zap.Uint("suggestion_id", id), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(review)
}

// HandleApprove approves a pending suggestion.
// @Summary Approve Suggestion
// @Description Marks a pending suggestion as approved. The monument itself is not modified.
// @Tags suggestions
// @Produce json
// @Param id path int true "Suggestion ID"
// @Success 200 {object} map[string]interface{} "Moderated"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Already Moderated"
// @Router /suggestions/{id}/approve [post]
func (h *Handler) HandleApprove(c *fiber.Ctx) error {
	return h.moderate(c, h.service.Approve)
}

// HandleReject rejects a pending suggestion.
// @Summary Reject Suggestion
// @Description Marks a pending suggestion as rejected.
// @Tags suggestions
// @Produce json
// @Param id path int true "Suggestion ID"
// @Success 200 {object} map[string]interface{} "Moderated"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Already Moderated"
// @Router /suggestions/{id}/reject [post]
func (h *Handler) HandleReject(c *fiber.Ctx) error {
	return h.moderate(c, h.service.Reject)
}

func (h *Handler) moderate(c *fiber.Ctx, action func(ctx context.Context, id uint) (*models.Suggestion, error)) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	suggestion, err := action(c.Context(), id)
	if err != nil {
		status := errorStatus(err)
		if status == fiber.StatusInternalServerError {
			l.Error("Suggestion moderation failed", zap.Uint("suggestion_id", id), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"suggestion_id": suggestion.ID,
		"monument_id":   suggestion.MonumentID,
		"status":        suggestion.Status,
	})
}
