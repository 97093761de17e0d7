package repositories

import (
	"context"

	"gorm.io/gorm"

	"tillpoint/internal/adapters/persistence/models"
	"tillpoint/internal/core/domain"
)

// cashierRepository implements PrincipalRepository for the cashier table
type cashierRepository struct {
	db *gorm.DB
}

// NewCashierRepository creates a new cashier repository
func NewCashierRepository(db *gorm.DB) PrincipalRepository {
	return &cashierRepository{db: db}
}

// Role returns the role tag served by this repository
func (r *cashierRepository) Role() string {
	return domain.RoleCashier
}

// Create creates a new cashier
func (r *cashierRepository) Create(ctx context.Context, p models.Principal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByID gets a cashier by ID
func (r *cashierRepository) GetByID(ctx context.Context, id uint) (models.Principal, error) {
	var cashier models.Cashier
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cashier).Error
	if err != nil {
		return nil, err
	}
	return &cashier, nil
}

// GetByUsername gets a cashier by username
func (r *cashierRepository) GetByUsername(ctx context.Context, username string) (models.Principal, error) {
	var cashier models.Cashier
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&cashier).Error
	if err != nil {
		return nil, err
	}
	return &cashier, nil
}

// List lists all cashiers
func (r *cashierRepository) List(ctx context.Context) ([]models.Principal, error) {
	var cashiers []*models.Cashier
	if err := r.db.WithContext(ctx).Order("id").Find(&cashiers).Error; err != nil {
		return nil, err
	}

	principals := make([]models.Principal, 0, len(cashiers))
	for _, c := range cashiers {
		principals = append(principals, c)
	}
	return principals, nil
}

// ExistsByUsername checks if a cashier username exists
func (r *cashierRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Cashier{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// Update updates a cashier
func (r *cashierRepository) Update(ctx context.Context, p models.Principal) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// UpdatePasscode overwrites the stored passcode for one cashier
func (r *cashierRepository) UpdatePasscode(ctx context.Context, id uint, stored string) error {
	return r.db.WithContext(ctx).
		Model(&models.Cashier{}).
		Where("id = ?", id).
		Update("passcode", stored).Error
}

// Delete deletes a cashier
func (r *cashierRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Cashier{}, id).Error
}
