package repositories

import (
	"context"

	"gorm.io/gorm"

	"tillpoint/internal/adapters/persistence/models"
	"tillpoint/internal/core/domain"
)

// managerRepository implements PrincipalRepository for the manager table
type managerRepository struct {
	db *gorm.DB
}

// NewManagerRepository creates a new manager repository
func NewManagerRepository(db *gorm.DB) PrincipalRepository {
	return &managerRepository{db: db}
}

// Role returns the role tag served by this repository
func (r *managerRepository) Role() string {
	return domain.RoleManager
}

// Create creates a new manager
func (r *managerRepository) Create(ctx context.Context, p models.Principal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByID gets a manager by ID
func (r *managerRepository) GetByID(ctx context.Context, id uint) (models.Principal, error) {
	var manager models.Manager
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&manager).Error
	if err != nil {
		return nil, err
	}
	return &manager, nil
}

// GetByUsername gets a manager by username
func (r *managerRepository) GetByUsername(ctx context.Context, username string) (models.Principal, error) {
	var manager models.Manager
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&manager).Error
	if err != nil {
		return nil, err
	}
	return &manager, nil
}

// List lists all managers
func (r *managerRepository) List(ctx context.Context) ([]models.Principal, error) {
	var managers []*models.Manager
	if err := r.db.WithContext(ctx).Order("id").Find(&managers).Error; err != nil {
		return nil, err
	}

	principals := make([]models.Principal, 0, len(managers))
	for _, m := range managers {
		principals = append(principals, m)
	}
	return principals, nil
}

// ExistsByUsername checks if a manager username exists
func (r *managerRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Manager{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// Update updates a manager
func (r *managerRepository) Update(ctx context.Context, p models.Principal) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// UpdatePasscode overwrites the stored passcode for one manager
func (r *managerRepository) UpdatePasscode(ctx context.Context, id uint, stored string) error {
	return r.db.WithContext(ctx).
		Model(&models.Manager{}).
		Where("id = ?", id).
		Update("passcode", stored).Error
}

// Delete deletes a manager
func (r *managerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Manager{}, id).Error
}
