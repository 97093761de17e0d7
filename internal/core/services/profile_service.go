package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tillpoint/internal/adapters/persistence/models"
	"tillpoint/internal/adapters/persistence/repositories"
	"tillpoint/internal/core/domain"
	"tillpoint/internal/pkg/passcode"
)

// ProfileService handles back-office staff profile management
type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// CreateProfileInput represents profile creation input
type CreateProfileInput struct {
	FullName     string `json:"full_name" validate:"required,max=100"`
	EmailAddress string `json:"email_address" validate:"required,email"`
	Username     string `json:"username" validate:"required,min=3,max=80"`
	Password     string `json:"password" validate:"required,min=4,max=6"`
	UserTitle    string `json:"user_title" validate:"max=50"`
	UserLevel    string `json:"user_level" validate:"max=50"`
}

// UpdateProfileInput represents profile update input
type UpdateProfileInput struct {
	FullName     string `json:"full_name" validate:"required,max=100"`
	EmailAddress string `json:"email_address" validate:"required,email"`
	Username     string `json:"username" validate:"required,min=3,max=80"`
	UserTitle    string `json:"user_title" validate:"max=50"`
	UserLevel    string `json:"user_level" validate:"max=50"`
}

// ListProfilesOutput represents paginated profile listing output
type ListProfilesOutput struct {
	Profiles []*models.StaffProfileResponse `json:"users"`
	Total    int64                          `json:"total"`
}

// Create creates a staff profile; the password is stored hashed
func (s *ProfileService) Create(ctx context.Context, input *CreateProfileInput) (*models.StaffProfileResponse, error) {
	exists, err := s.profileRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if !exists {
		exists, err = s.profileRepo.ExistsByEmail(ctx, input.EmailAddress)
		if err != nil {
			return nil, err
		}
	}
	if exists {
		return nil, domain.ErrDuplicateProfile
	}

	hashed, err := passcode.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	profile := &models.StaffProfile{
		FullName:     input.FullName,
		EmailAddress: input.EmailAddress,
		Username:     input.Username,
		Password:     hashed,
		UserTitle:    input.UserTitle,
		UserLevel:    input.UserLevel,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile.ToResponse(), nil
}

// Get gets a staff profile by ID
func (s *ProfileService) Get(ctx context.Context, id uint) (*models.StaffProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile.ToResponse(), nil
}

// List lists staff profiles with pagination
func (s *ProfileService) List(ctx context.Context, offset, limit int) (*ListProfilesOutput, error) {
	profiles, total, err := s.profileRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.StaffProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, p.ToResponse())
	}

	return &ListProfilesOutput{Profiles: responses, Total: total}, nil
}

// Update updates a staff profile's editable fields
func (s *ProfileService) Update(ctx context.Context, id uint, input *UpdateProfileInput) (*models.StaffProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	profile.FullName = input.FullName
	profile.EmailAddress = input.EmailAddress
	profile.Username = input.Username
	profile.UserTitle = input.UserTitle
	profile.UserLevel = input.UserLevel

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile.ToResponse(), nil
}

// Delete deletes a staff profile
func (s *ProfileService) Delete(ctx context.Context, id uint) error {
	if _, err := s.profileRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProfileNotFound
		}
		return err
	}
	return s.profileRepo.Delete(ctx, id)
}
