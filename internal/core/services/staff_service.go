package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"tillpoint/internal/adapters/persistence/models"
	"tillpoint/internal/adapters/persistence/repositories"
	"tillpoint/internal/core/domain"
	"tillpoint/internal/pkg/passcode"
)

// StaffService handles cashier and manager administration
type StaffService struct {
	cashierRepo repositories.PrincipalRepository
	managerRepo repositories.PrincipalRepository
}

// NewStaffService creates a new staff service
func NewStaffService(
	cashierRepo repositories.PrincipalRepository,
	managerRepo repositories.PrincipalRepository,
) *StaffService {
	return &StaffService{
		cashierRepo: cashierRepo,
		managerRepo: managerRepo,
	}
}

// CreatePrincipalInput represents principal creation input
type CreatePrincipalInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	LastName string `json:"last_name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,min=3,max=80"`
	Passcode string `json:"passcode" validate:"required,min=4,max=6"`
}

// UpdatePrincipalInput represents principal update input
type UpdatePrincipalInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	LastName string `json:"last_name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,min=3,max=80"`
}

// Create creates a principal of the given role. The passcode arrives in
// plaintext and is stored hashed from the start. Username uniqueness is
// per kind: a cashier and a manager may share a username.
func (s *StaffService) Create(ctx context.Context, role string, input *CreatePrincipalInput) (*models.PrincipalResponse, error) {
	store, err := s.storeFor(role)
	if err != nil {
		return nil, err
	}

	// 1. Per-kind duplicate check
	exists, err := store.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateUsername
	}

	// 2. Hash passcode
	hashed, err := passcode.Hash(input.Passcode)
	if err != nil {
		return nil, err
	}

	// 3. Create principal
	principal := newPrincipal(role, input, hashed)
	if err := store.Create(ctx, principal); err != nil {
		return nil, err
	}

	log.Printf("✅ %s created: %s", role, input.Username)
	return toResponse(principal), nil
}

// List lists all principals of the given role, passcodes excluded
func (s *StaffService) List(ctx context.Context, role string) ([]*models.PrincipalResponse, error) {
	store, err := s.storeFor(role)
	if err != nil {
		return nil, err
	}

	principals, err := store.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.PrincipalResponse, 0, len(principals))
	for _, p := range principals {
		responses = append(responses, toResponse(p))
	}
	return responses, nil
}

// Update updates a principal's name fields and username
func (s *StaffService) Update(ctx context.Context, role string, id uint, input *UpdatePrincipalInput) (*models.PrincipalResponse, error) {
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

	if input.Username != principal.GetUsername() {
		exists, err := store.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateUsername
		}
	}

	switch p := principal.(type) {
	case *models.Cashier:
		p.Name, p.LastName, p.Username = input.Name, input.LastName, input.Username
	case *models.Manager:
		p.Name, p.LastName, p.Username = input.Name, input.LastName, input.Username
	}

	if err := store.Update(ctx, principal); err != nil {
		return nil, err
	}

	return toResponse(principal), nil
}

// Delete deletes a principal
func (s *StaffService) Delete(ctx context.Context, role string, id uint) error {
	store, err := s.storeFor(role)
	if err != nil {
		return err
	}

	if _, err := store.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPrincipalNotFound
		}
		return err
	}

	return store.Delete(ctx, id)
}

// storeFor maps a role tag to its credential store
func (s *StaffService) storeFor(role string) (repositories.PrincipalRepository, error) {
	switch role {
	case domain.RoleCashier:
		return s.cashierRepo, nil
	case domain.RoleManager:
		return s.managerRepo, nil
	default:
		return nil, domain.ErrUnknownRole
	}
}

// newPrincipal builds the concrete model for a role
func newPrincipal(role string, input *CreatePrincipalInput, hashedPasscode string) models.Principal {
	if role == domain.RoleManager {
		return &models.Manager{
			Name:     input.Name,
			LastName: input.LastName,
			Username: input.Username,
			Passcode: hashedPasscode,
		}
	}
	return &models.Cashier{
		Name:     input.Name,
		LastName: input.LastName,
		Username: input.Username,
		Passcode: hashedPasscode,
	}
}

// toResponse converts either principal kind into its listing DTO
func toResponse(p models.Principal) *models.PrincipalResponse {
	switch v := p.(type) {
	case *models.Cashier:
		return v.ToResponse()
	case *models.Manager:
		return v.ToResponse()
	default:
		identity := p.ToIdentity()
		return &models.PrincipalResponse{
			ID:       identity.ID,
			Name:     identity.Name,
			LastName: identity.LastName,
			Username: identity.Username,
			Role:     identity.Role,
		}
	}
}
