package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tillpoint/internal/core/domain"
	"tillpoint/internal/pkg/passcode"
)

func newTestStaffService() (*StaffService, *stubPrincipalStore, *stubPrincipalStore) {
	cashiers := newStubStore(domain.RoleCashier)
	managers := newStubStore(domain.RoleManager)
	return NewStaffService(cashiers, managers), cashiers, managers
}

func TestStaffCreate_HashesPasscodeAtCreation(t *testing.T) {
	svc, cashiers, _ := newTestStaffService()

	created, err := svc.Create(context.Background(), domain.RoleCashier, &CreatePrincipalInput{
		Name:     "Jane",
		LastName: "Doe",
		Username: "jdoe",
		Passcode: "4321",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleCashier, created.Role)

	stored := cashiers.passcodes()[created.ID]
	require.NotEqual(t, "4321", stored)
	require.True(t, passcode.IsHashed(stored))
	require.True(t, passcode.Verify("4321", stored))
}

func TestStaffCreate_DuplicateUsernameSameKind(t *testing.T) {
	svc, _, _ := newTestStaffService()

	input := &CreatePrincipalInput{Name: "A", LastName: "B", Username: "dup", Passcode: "1234"}
	_, err := svc.Create(context.Background(), domain.RoleCashier, input)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.RoleCashier, input)
	require.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestStaffCreate_SharedUsernameAcrossKinds(t *testing.T) {
	// A cashier and a manager may share a username string
	svc, _, _ := newTestStaffService()

	input := &CreatePrincipalInput{Name: "A", LastName: "B", Username: "shared", Passcode: "1234"}
	_, err := svc.Create(context.Background(), domain.RoleCashier, input)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.RoleManager, input)
	require.NoError(t, err)
}

func TestStaffCreate_UnknownRole(t *testing.T) {
	svc, _, _ := newTestStaffService()

	_, err := svc.Create(context.Background(), "auditor", &CreatePrincipalInput{
		Name: "A", LastName: "B", Username: "x", Passcode: "1234",
	})
	require.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestStaffUpdate_RenameAndNotFound(t *testing.T) {
	svc, _, _ := newTestStaffService()

	created, err := svc.Create(context.Background(), domain.RoleCashier, &CreatePrincipalInput{
		Name: "Jane", LastName: "Doe", Username: "jdoe", Passcode: "4321",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), domain.RoleCashier, created.ID, &UpdatePrincipalInput{
		Name: "Janet", LastName: "Doe", Username: "janetd",
	})
	require.NoError(t, err)
	require.Equal(t, "Janet", updated.Name)
	require.Equal(t, "janetd", updated.Username)

	_, err = svc.Update(context.Background(), domain.RoleCashier, 999, &UpdatePrincipalInput{
		Name: "X", LastName: "Y", Username: "z",
	})
	require.ErrorIs(t, err, domain.ErrPrincipalNotFound)
}

func TestStaffDelete(t *testing.T) {
	svc, cashiers, _ := newTestStaffService()

	created, err := svc.Create(context.Background(), domain.RoleCashier, &CreatePrincipalInput{
		Name: "Jane", LastName: "Doe", Username: "jdoe", Passcode: "4321",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), domain.RoleCashier, created.ID))
	require.Empty(t, cashiers.passcodes())

	err = svc.Delete(context.Background(), domain.RoleCashier, created.ID)
	require.ErrorIs(t, err, domain.ErrPrincipalNotFound)
}

func TestStaffList_ExcludesPasscodes(t *testing.T) {
	svc, _, _ := newTestStaffService()

	_, err := svc.Create(context.Background(), domain.RoleManager, &CreatePrincipalInput{
		Name: "Jane", LastName: "Doe", Username: "jdoe", Passcode: "4321",
	})
	require.NoError(t, err)

	listed, err := svc.List(context.Background(), domain.RoleManager)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "jdoe", listed[0].Username)
	require.Equal(t, domain.RoleManager, listed[0].Role)
}
