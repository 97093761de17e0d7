package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tillpoint/internal/adapters/persistence/models"
	"tillpoint/internal/core/domain"
)

// openTestDB opens an isolated in-memory sqlite database. A named
// shared-cache DSN keeps every pooled connection on the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func TestCashierRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	repo := NewCashierRepository(db)
	ctx := context.Background()

	require.Equal(t, domain.RoleCashier, repo.Role())

	cashier := &models.Cashier{Name: "Jane", LastName: "Doe", Username: "jdoe", Passcode: "4321"}
	require.NoError(t, repo.Create(ctx, cashier))
	require.NotZero(t, cashier.ID)
	require.False(t, cashier.DateCreated.IsZero())

	byName, err := repo.GetByUsername(ctx, "jdoe")
	require.NoError(t, err)
	require.Equal(t, cashier.ID, byName.PrincipalID())

	byID, err := repo.GetByID(ctx, cashier.ID)
	require.NoError(t, err)
	require.Equal(t, "jdoe", byID.GetUsername())

	exists, err := repo.ExistsByUsername(ctx, "jdoe")
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, repo.UpdatePasscode(ctx, cashier.ID, "$2a$12$xxxxxxxxxxxxxxxxxxxxxx"))
	byID, err = repo.GetByID(ctx, cashier.ID)
	require.NoError(t, err)
	require.Equal(t, "$2a$12$xxxxxxxxxxxxxxxxxxxxxx", byID.GetPasscode())

	require.NoError(t, repo.Delete(ctx, cashier.ID))
	_, err = repo.GetByID(ctx, cashier.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCashierRepository_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewCashierRepository(db)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPrincipalUsername_UniquePerKind(t *testing.T) {
	db := openTestDB(t)
	cashiers := NewCashierRepository(db)
	managers := NewManagerRepository(db)
	ctx := context.Background()

	require.NoError(t, cashiers.Create(ctx, &models.Cashier{
		Name: "A", LastName: "B", Username: "shared", Passcode: "1234",
	}))

	// Two cashiers may not share a username
	err := cashiers.Create(ctx, &models.Cashier{
		Name: "C", LastName: "D", Username: "shared", Passcode: "5678",
	})
	require.Error(t, err)

	// A cashier and a manager may
	require.NoError(t, managers.Create(ctx, &models.Manager{
		Name: "C", LastName: "D", Username: "shared", Passcode: "5678",
	}))
}

func TestManagerRepository_List(t *testing.T) {
	db := openTestDB(t)
	repo := NewManagerRepository(db)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &models.Manager{
			Name: name, LastName: "Mgr", Username: name, Passcode: "1234",
		}))
	}

	principals, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, principals, 3)
	require.Equal(t, "first", principals[0].GetUsername())
	require.Equal(t, domain.RoleManager, principals[0].Role())
}
