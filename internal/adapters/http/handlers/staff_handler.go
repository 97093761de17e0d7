package handlers

import (
	"errors"
	"strings"

	"tillpoint/internal/core/domain"
	"tillpoint/internal/core/services"
	"tillpoint/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StaffHandler handles cashier and manager administration endpoints
type StaffHandler struct {
	staffService *services.StaffService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService *services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// CreatePrincipalRequest represents principal creation request body
type CreatePrincipalRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	LastName string `json:"last_name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,min=3,max=80"`
	Passcode string `json:"passcode" validate:"required,min=4,max=6"`
}

// UpdatePrincipalRequest represents principal update request body
type UpdatePrincipalRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	LastName string `json:"last_name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,min=3,max=80"`
}

// CreateCashier handles cashier creation
// @Summary Create cashier
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreatePrincipalRequest true "Cashier data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /cashiers [post]
func (h *StaffHandler) CreateCashier(c *fiber.Ctx) error {
	return h.create(c, domain.RoleCashier)
}

// CreateManager handles manager creation
// @Summary Create manager
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreatePrincipalRequest true "Manager data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /managers [post]
func (h *StaffHandler) CreateManager(c *fiber.Ctx) error {
	return h.create(c, domain.RoleManager)
}

func (h *StaffHandler) create(c *fiber.Ctx, role string) error {
	var req CreatePrincipalRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return response.BadRequest(c, "Missing or invalid required fields")
	}

	input := &services.CreatePrincipalInput{
		Name:     strings.TrimSpace(req.Name),
		LastName: strings.TrimSpace(req.LastName),
		Username: strings.TrimSpace(req.Username),
		Passcode: req.Passcode,
	}

	created, err := h.staffService.Create(c.Context(), role, input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return response.Conflict(c, "Username already exists")
		}
		return response.InternalServerError(c, "Failed to create "+role)
	}

	return response.Created(c, role+" created successfully", created)
}

// ListCashiers handles cashier listing
// @Summary List cashiers
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /cashiers [get]
func (h *StaffHandler) ListCashiers(c *fiber.Ctx) error {
	return h.list(c, domain.RoleCashier)
}

// ListManagers handles manager listing
// @Summary List managers
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /managers [get]
func (h *StaffHandler) ListManagers(c *fiber.Ctx) error {
	return h.list(c, domain.RoleManager)
}

func (h *StaffHandler) list(c *fiber.Ctx, role string) error {
	principals, err := h.staffService.List(c.Context(), role)
	if err != nil {
		return response.InternalServerError(c, "Failed to list "+role+"s")
	}
	return response.Success(c, "", fiber.Map{role + "s": principals})
}

// UpdateCashier handles cashier update
// @Summary Update cashier
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cashier ID"
// @Param body body UpdatePrincipalRequest true "Cashier data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cashiers/{id} [put]
func (h *StaffHandler) UpdateCashier(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid cashier ID")
	}

	var req UpdatePrincipalRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return response.BadRequest(c, "Missing or invalid required fields")
	}

	input := &services.UpdatePrincipalInput{
		Name:     strings.TrimSpace(req.Name),
		LastName: strings.TrimSpace(req.LastName),
		Username: strings.TrimSpace(req.Username),
	}

	updated, err := h.staffService.Update(c.Context(), domain.RoleCashier, uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPrincipalNotFound):
			return response.NotFound(c, "Cashier not found")
		case errors.Is(err, domain.ErrDuplicateUsername):
			return response.Conflict(c, "Username already exists")
		default:
			return response.InternalServerError(c, "Failed to update cashier")
		}
	}

	return response.Success(c, "Cashier updated successfully", updated)
}

// DeleteCashier handles cashier deletion
// @Summary Delete cashier
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cashier ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cashiers/{id} [delete]
func (h *StaffHandler) DeleteCashier(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid cashier ID")
	}

	if err := h.staffService.Delete(c.Context(), domain.RoleCashier, uint(id)); err != nil {
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			return response.NotFound(c, "Cashier not found")
		}
		return response.InternalServerError(c, "Failed to delete cashier")
	}

	return response.Success(c, "Cashier deleted successfully", nil)
}
