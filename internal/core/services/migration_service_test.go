package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tillpoint/internal/core/domain"
	"tillpoint/internal/pkg/passcode"
)

func newTestMigration() (*MigrationService, *stubPrincipalStore, *stubPrincipalStore) {
	cashiers := newStubStore(domain.RoleCashier)
	managers := newStubStore(domain.RoleManager)
	return NewMigrationService(cashiers, managers), cashiers, managers
}

func TestMigration_HashesPlaintextAcrossBothKinds(t *testing.T) {
	svc, cashiers, managers := newTestMigration()
	cID := cashiers.mustAddCashier("alice", "1234")
	mID := managers.mustAddManager("bob", "567890")

	result := svc.Run(context.Background())

	require.Equal(t, 2, result.Scanned)
	require.Equal(t, 2, result.Migrated)
	require.Equal(t, 0, result.Failed)

	stored := cashiers.passcodes()[cID]
	require.True(t, passcode.IsHashed(stored))
	require.True(t, passcode.Verify("1234", stored))

	stored = managers.passcodes()[mID]
	require.True(t, passcode.IsHashed(stored))
	require.True(t, passcode.Verify("567890", stored))
}

func TestMigration_SkipsAlreadyHashed(t *testing.T) {
	svc, cashiers, _ := newTestMigration()
	hashed, err := passcode.Hash("1234")
	require.NoError(t, err)
	id := cashiers.mustAddCashier("alice", hashed)

	result := svc.Run(context.Background())

	require.Equal(t, 1, result.Skipped)
	require.Equal(t, 0, result.Migrated)
	// Byte-identical: no re-hash of an already hashed value
	require.Equal(t, hashed, cashiers.passcodes()[id])
}

func TestMigration_Idempotent(t *testing.T) {
	svc, cashiers, managers := newTestMigration()
	cashiers.mustAddCashier("alice", "1234")
	cashiers.mustAddCashier("carol", "99999")
	managers.mustAddManager("bob", "4321")

	first := svc.Run(context.Background())
	require.Equal(t, 3, first.Migrated)

	afterFirstCashiers := cashiers.passcodes()
	afterFirstManagers := managers.passcodes()

	second := svc.Run(context.Background())
	require.Equal(t, 0, second.Migrated)
	require.Equal(t, 3, second.Skipped)

	// Store is byte-identical after the second run
	require.Equal(t, afterFirstCashiers, cashiers.passcodes())
	require.Equal(t, afterFirstManagers, managers.passcodes())
}

func TestMigration_PerRecordFailureIsolation(t *testing.T) {
	svc, cashiers, _ := newTestMigration()
	goodID := cashiers.mustAddCashier("alice", "1234")
	badID := cashiers.mustAddCashier("broken", "4321")
	cashiers.failUpdateFor[badID] = true

	result := svc.Run(context.Background())

	// One row failing never aborts the sweep
	require.Equal(t, 1, result.Failed)
	require.Equal(t, 1, result.Migrated)
	require.True(t, passcode.IsHashed(cashiers.passcodes()[goodID]))
	require.Equal(t, "4321", cashiers.passcodes()[badID])

	// The failed row is picked up once the store recovers
	cashiers.failUpdateFor[badID] = false
	result = svc.Run(context.Background())
	require.Equal(t, 1, result.Migrated)
	require.True(t, passcode.IsHashed(cashiers.passcodes()[badID]))
}

func TestMigration_AuthenticatesDuringTransition(t *testing.T) {
	// A login racing the sweep works before and after the row is
	// rewritten.
	cashiers := newStubStore(domain.RoleCashier)
	managers := newStubStore(domain.RoleManager)
	migration := NewMigrationService(cashiers, managers)
	auth := NewAuthService(cashiers, managers, testConfig())

	cashiers.mustAddCashier("alice", "1234")

	_, err := auth.Authenticate(context.Background(), "alice", "1234")
	require.NoError(t, err)

	migration.Run(context.Background())

	_, err = auth.Authenticate(context.Background(), "alice", "1234")
	require.NoError(t, err)
}
