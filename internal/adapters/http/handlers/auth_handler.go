package handlers

import (
	"errors"
	"strings"
	"time"

	"tillpoint/internal/config"
	"tillpoint/internal/core/domain"
	"tillpoint/internal/core/services"
	"tillpoint/internal/pkg/passcode"
	"tillpoint/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Passcode string `json:"passcode" validate:"required,min=4,max=6"`
}

// ChangePasscodeRequest represents passcode change request body
type ChangePasscodeRequest struct {
	OldPasscode string `json:"old_passcode" validate:"required"`
	NewPasscode string `json:"new_passcode" validate:"required,min=4,max=6"`
}

// Login handles principal login
// @Summary Login
// @Description Authenticate a cashier or manager and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Passcode length is the caller's job to check, before the
	// authenticator runs
	if err := validate.Struct(&req); err != nil {
		if !passcode.ValidLength(req.Passcode) {
			return response.BadRequest(c, "Passcode must be between 4 and 6 characters")
		}
		return response.BadRequest(c, "Username is required")
	}

	input := &services.LoginInput{
		Username: strings.TrimSpace(req.Username),
		Passcode: req.Passcode,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid credentials")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	h.setAuthCookie(c, result.AccessToken)

	return response.Success(c, "Login successful", fiber.Map{
		"access_token": result.AccessToken,
		"user":         result.Identity,
		"role":         result.Identity.Role,
	})
}

// Me returns the current principal
// @Summary Get current principal
// @Description Validate the bearer token and return the live principal
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, okID := c.Locals("userID").(uint)
	role, okRole := c.Locals("role").(string)
	if !okID || !okRole {
		return response.Forbidden(c, "Invalid access token")
	}

	// Claims are a snapshot; re-fetch the live principal
	identity, err := h.authService.GetPrincipal(c.Context(), role, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			return response.NotFound(c, "Principal not found")
		}
		return response.InternalServerError(c, "Failed to load principal")
	}

	return response.Success(c, "Authenticated", fiber.Map{
		"user": identity,
	})
}

// ChangePasscode handles a passcode change for the logged-in principal
// @Summary Change passcode
// @Description Verify the old passcode and store the new one hashed
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChangePasscodeRequest true "Old and new passcode"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/change-passcode [post]
func (h *AuthHandler) ChangePasscode(c *fiber.Ctx) error {
	var req ChangePasscodeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validate.Struct(&req); err != nil {
		if !passcode.ValidLength(req.NewPasscode) {
			return response.BadRequest(c, "New passcode must be between 4 and 6 characters")
		}
		return response.BadRequest(c, "Old passcode is required")
	}

	userID, okID := c.Locals("userID").(uint)
	role, okRole := c.Locals("role").(string)
	if !okID || !okRole {
		return response.Forbidden(c, "Invalid access token")
	}

	input := &services.ChangePasscodeInput{
		PrincipalID: userID,
		Role:        role,
		OldPasscode: req.OldPasscode,
		NewPasscode: req.NewPasscode,
	}

	if err := h.authService.ChangePasscode(c.Context(), input); err != nil {
		switch {
		case errors.Is(err, domain.ErrPasscodeMismatch):
			return response.BadRequest(c, "Old passcode is incorrect")
		case errors.Is(err, domain.ErrPrincipalNotFound):
			return response.NotFound(c, "Principal not found")
		default:
			return response.InternalServerError(c, "Failed to change passcode")
		}
	}

	return response.Success(c, "Passcode changed successfully", nil)
}

// Logout clears the auth cookie. Tokens are self-contained, so there is
// nothing to revoke server-side; the token simply ages out.
// @Summary Logout
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearAuthCookie(c)
	return response.Success(c, "Logged out successfully", nil)
}

// setAuthCookie sets the access token cookie
func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, accessToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		MaxAge:   h.cfg.JWT.AccessTokenMins * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// clearAuthCookie clears the access token cookie
func (h *AuthHandler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
