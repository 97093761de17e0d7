package repositories

import (
	"context"
	"time"

	"tillpoint/internal/adapters/persistence/models"
)

// PrincipalRepository defines the credential store contract for one
// principal kind. Cashier and manager repositories satisfy the same
// interface so the authenticator and the migration sweep can treat the
// two kinds as a tagged union instead of two separate query sites.
type PrincipalRepository interface {
	// Role returns the role tag served by this repository
	Role() string
	Create(ctx context.Context, p models.Principal) error
	GetByID(ctx context.Context, id uint) (models.Principal, error)
	GetByUsername(ctx context.Context, username string) (models.Principal, error)
	List(ctx context.Context) ([]models.Principal, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, p models.Principal) error
	UpdatePasscode(ctx context.Context, id uint, stored string) error
	Delete(ctx context.Context, id uint) error
}

// ProfileRepository defines the back-office staff profile repository
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.StaffProfile) error
	GetByID(ctx context.Context, id uint) (*models.StaffProfile, error)
	List(ctx context.Context, offset, limit int) ([]*models.StaffProfile, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, profile *models.StaffProfile) error
	Delete(ctx context.Context, id uint) error
}

// TillRepository defines the till record repository
type TillRepository interface {
	Create(ctx context.Context, till *models.Till) error
	GetByID(ctx context.Context, id uint) (*models.Till, error)
	List(ctx context.Context, offset, limit int) ([]*models.Till, int64, error)
	SummarySince(ctx context.Context, since time.Time) (count int64, total float64, err error)
}
