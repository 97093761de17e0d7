package handlers

import (
	"errors"
	"strings"

	"tillpoint/internal/core/domain"
	"tillpoint/internal/core/services"
	"tillpoint/internal/pkg/pagination"
	"tillpoint/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles back-office staff profile endpoints
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// CreateProfileRequest represents profile creation request body
type CreateProfileRequest struct {
	FullName     string `json:"full_name" validate:"required,max=100"`
	EmailAddress string `json:"email_address" validate:"required,email"`
	Username     string `json:"username" validate:"required,min=3,max=80"`
	Password     string `json:"password" validate:"required,min=4,max=6"`
	UserTitle    string `json:"user_title" validate:"max=50"`
	UserLevel    string `json:"user_level" validate:"max=50"`
}

// UpdateProfileRequest represents profile update request body
type UpdateProfileRequest struct {
	FullName     string `json:"full_name" validate:"required,max=100"`
	EmailAddress string `json:"email_address" validate:"required,email"`
	Username     string `json:"username" validate:"required,min=3,max=80"`
	UserTitle    string `json:"user_title" validate:"max=50"`
	UserLevel    string `json:"user_level" validate:"max=50"`
}

// Create handles profile creation
// @Summary Create staff profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateProfileRequest true "Profile data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	var req CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return response.BadRequest(c, "Missing or invalid required fields")
	}

	input := &services.CreateProfileInput{
		FullName:     strings.TrimSpace(req.FullName),
		EmailAddress: strings.TrimSpace(req.EmailAddress),
		Username:     strings.TrimSpace(req.Username),
		Password:     req.Password,
		UserTitle:    strings.TrimSpace(req.UserTitle),
		UserLevel:    strings.TrimSpace(req.UserLevel),
	}

	created, err := h.profileService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateProfile) {
			return response.Conflict(c, "Username or email already exists")
		}
		return response.InternalServerError(c, "Failed to create user")
	}

	return response.Created(c, "User added successfully", created)
}

// List handles paginated profile listing
// @Summary List staff profiles
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /users [get]
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	output, err := h.profileService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	return response.Success(c, "", fiber.Map{
		"users": output.Profiles,
		"meta":  pagination.GetMeta(params, output.Total),
	})
}

// Get handles fetching one profile
// @Summary Get staff profile
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	profile, err := h.profileService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load user")
	}

	return response.Success(c, "", profile)
}

// Update handles profile update
// @Summary Update staff profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Param body body UpdateProfileRequest true "Profile data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return response.BadRequest(c, "Missing or invalid required fields")
	}

	input := &services.UpdateProfileInput{
		FullName:     strings.TrimSpace(req.FullName),
		EmailAddress: strings.TrimSpace(req.EmailAddress),
		Username:     strings.TrimSpace(req.Username),
		UserTitle:    strings.TrimSpace(req.UserTitle),
		UserLevel:    strings.TrimSpace(req.UserLevel),
	}

	updated, err := h.profileService.Update(c.Context(), uint(id), input)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to update user")
	}

	return response.Success(c, "User updated successfully", updated)
}

// Delete handles profile deletion
// @Summary Delete staff profile
// @Tags Profiles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [delete]
func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	if err := h.profileService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to delete user")
	}

	return response.Success(c, "User deleted successfully", nil)
}
