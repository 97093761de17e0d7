package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"tillpoint/internal/adapters/persistence/repositories"
	"tillpoint/internal/config"
	"tillpoint/internal/core/domain"
	"tillpoint/internal/pkg/jwt"
	"tillpoint/internal/pkg/passcode"
)

// AuthService handles authentication business logic. Lookups go through
// the cashier store first and fall back to the manager store; both
// kinds flow through the same PrincipalRepository contract.
type AuthService struct {
	stores []repositories.PrincipalRepository
	cfg    *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	cashierRepo repositories.PrincipalRepository,
	managerRepo repositories.PrincipalRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		stores: []repositories.PrincipalRepository{cashierRepo, managerRepo},
		cfg:    cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Passcode string `json:"passcode" validate:"required,min=4,max=6"`
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	Identity    *domain.Identity `json:"user"`
	AccessToken string           `json:"access_token"`
}

// Authenticate verifies a username/passcode pair across both principal
// kinds and returns the identity descriptor. Unknown username and wrong
// passcode are indistinguishable from the outside: both come back as
// ErrInvalidCredentials so usernames cannot be enumerated.
func (s *AuthService) Authenticate(ctx context.Context, username, plain string) (*domain.Identity, error) {
	for _, store := range s.stores {
		principal, err := store.GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		// The stored value may still be legacy plaintext if the
		// migration sweep has not reached this row; Matches checks
		// both representations.
		if !passcode.Matches(plain, principal.GetPasscode()) {
			return nil, domain.ErrInvalidCredentials
		}

		return principal.ToIdentity(), nil
	}

	return nil, domain.ErrInvalidCredentials
}

// Login authenticates a principal and issues an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	identity, err := s.Authenticate(ctx, input.Username, input.Passcode)
	if err != nil {
		return nil, err
	}

	token, err := jwt.GenerateAccessToken(
		identity.ID,
		identity.Username,
		identity.Role,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ %s logged in: %s", identity.Role, identity.Username)

	return &AuthResponse{
		Identity:    identity,
		AccessToken: token,
	}, nil
}

// ValidateAccessToken validates a bearer token and returns its claims.
// Claims are a point-in-time snapshot; callers that need live principal
// fields must rehydrate through GetPrincipal.
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
}

// GetPrincipal re-fetches the live principal named by token claims
func (s *AuthService) GetPrincipal(ctx context.Context, role string, id uint) (*domain.Identity, error) {
	store, err := s.storeFor(role)
	if err != nil {
		return nil, err
	}

	principal, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, err
	}

	return principal.ToIdentity(), nil
}

// ChangePasscodeInput represents a passcode change for one principal
type ChangePasscodeInput struct {
	PrincipalID uint
	Role        string
	OldPasscode string
	NewPasscode string
}

// ChangePasscode verifies the old passcode and stores the new one
// hashed. The old value is checked in either representation, same as
// login. The stored passcode is untouched unless the old one verifies.
func (s *AuthService) ChangePasscode(ctx context.Context, input *ChangePasscodeInput) error {
	store, err := s.storeFor(input.Role)
	if err != nil {
		return err
	}

	principal, err := store.GetByID(ctx, input.PrincipalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPrincipalNotFound
		}
		return err
	}

	if !passcode.Matches(input.OldPasscode, principal.GetPasscode()) {
		return domain.ErrPasscodeMismatch
	}

	hashed, err := passcode.Hash(input.NewPasscode)
	if err != nil {
		return err
	}

	if err := store.UpdatePasscode(ctx, principal.PrincipalID(), hashed); err != nil {
		return err
	}

	log.Printf("✅ Passcode changed for %s: %s", input.Role, principal.GetUsername())
	return nil
}

// storeFor maps a role tag to its credential store
func (s *AuthService) storeFor(role string) (repositories.PrincipalRepository, error) {
	for _, store := range s.stores {
		if store.Role() == role {
			return store, nil
		}
	}
	return nil, domain.ErrUnknownRole
}
