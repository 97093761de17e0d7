package handlers

import (
	"tillpoint/internal/core/services"
	"tillpoint/internal/pkg/pagination"
	"tillpoint/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TillHandler handles till record endpoints
type TillHandler struct {
	tillService *services.TillService
}

// NewTillHandler creates a new till handler
func NewTillHandler(tillService *services.TillService) *TillHandler {
	return &TillHandler{tillService: tillService}
}

// OpenTillRequest represents a drawer sign-in request body
type OpenTillRequest struct {
	Amount float64 `json:"amount" validate:"gte=0"`
}

// Open records a drawer sign-in for the authenticated principal
// @Summary Open till
// @Tags Till
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body OpenTillRequest true "Opening amount"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /till [post]
func (h *TillHandler) Open(c *fiber.Ctx) error {
	var req OpenTillRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return response.BadRequest(c, "Amount must be zero or positive")
	}

	userID, okID := c.Locals("userID").(uint)
	username, okName := c.Locals("username").(string)
	if !okID || !okName {
		return response.Forbidden(c, "Invalid access token")
	}

	till, err := h.tillService.Open(c.Context(), userID, username, &services.OpenTillInput{Amount: req.Amount})
	if err != nil {
		return response.InternalServerError(c, "Failed to open till")
	}

	return response.Created(c, "Till opened successfully", till)
}

// List handles paginated till record listing
// @Summary List till records
// @Tags Till
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /till [get]
func (h *TillHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	output, err := h.tillService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list till records")
	}

	return response.Success(c, "", fiber.Map{
		"tills": output.Tills,
		"meta":  pagination.GetMeta(params, output.Total),
	})
}

// Summary returns today's till aggregate
// @Summary Till summary for today
// @Tags Till
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /till/summary [get]
func (h *TillHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.tillService.TodaySummary(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute till summary")
	}
	return response.Success(c, "", summary)
}
