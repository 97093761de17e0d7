package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tillpoint/internal/adapters/persistence/models"
)

// stubPrincipalStore is an in-memory PrincipalRepository for service
// tests. Records are cloned on the way in and out so callers cannot
// mutate the store through shared pointers, matching database behavior.
type stubPrincipalStore struct {
	role   string
	nextID uint
	byID   map[uint]models.Principal

	// failUpdateFor makes UpdatePasscode fail for specific IDs
	failUpdateFor map[uint]bool
}

func newStubStore(role string) *stubPrincipalStore {
	return &stubPrincipalStore{
		role:          role,
		byID:          make(map[uint]models.Principal),
		failUpdateFor: make(map[uint]bool),
	}
}

func clonePrincipal(p models.Principal) models.Principal {
	switch v := p.(type) {
	case *models.Cashier:
		clone := *v
		return &clone
	case *models.Manager:
		clone := *v
		return &clone
	}
	return p
}

func (s *stubPrincipalStore) Role() string { return s.role }

func (s *stubPrincipalStore) Create(_ context.Context, p models.Principal) error {
	for _, existing := range s.byID {
		if existing.GetUsername() == p.GetUsername() {
			return fmt.Errorf("duplicate username %q", p.GetUsername())
		}
	}
	s.nextID++
	switch v := p.(type) {
	case *models.Cashier:
		v.ID = s.nextID
	case *models.Manager:
		v.ID = s.nextID
	}
	s.byID[s.nextID] = clonePrincipal(p)
	return nil
}

func (s *stubPrincipalStore) GetByID(_ context.Context, id uint) (models.Principal, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return clonePrincipal(p), nil
}

func (s *stubPrincipalStore) GetByUsername(_ context.Context, username string) (models.Principal, error) {
	for _, p := range s.byID {
		if p.GetUsername() == username {
			return clonePrincipal(p), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubPrincipalStore) List(_ context.Context) ([]models.Principal, error) {
	principals := make([]models.Principal, 0, len(s.byID))
	for id := uint(1); id <= s.nextID; id++ {
		if p, ok := s.byID[id]; ok {
			principals = append(principals, clonePrincipal(p))
		}
	}
	return principals, nil
}

func (s *stubPrincipalStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, p := range s.byID {
		if p.GetUsername() == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubPrincipalStore) Update(_ context.Context, p models.Principal) error {
	if _, ok := s.byID[p.PrincipalID()]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.byID[p.PrincipalID()] = clonePrincipal(p)
	return nil
}

func (s *stubPrincipalStore) UpdatePasscode(_ context.Context, id uint, stored string) error {
	if s.failUpdateFor[id] {
		return fmt.Errorf("simulated store failure for id %d", id)
	}
	p, ok := s.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.SetPasscode(stored)
	return nil
}

func (s *stubPrincipalStore) Delete(_ context.Context, id uint) error {
	delete(s.byID, id)
	return nil
}

// mustAddCashier inserts a cashier with the given stored passcode value
// (plaintext or hash) and returns its ID.
func (s *stubPrincipalStore) mustAddCashier(username, stored string) uint {
	s.nextID++
	s.byID[s.nextID] = &models.Cashier{
		ID:       s.nextID,
		Name:     "Test",
		LastName: "Cashier",
		Username: username,
		Passcode: stored,
	}
	return s.nextID
}

func (s *stubPrincipalStore) mustAddManager(username, stored string) uint {
	s.nextID++
	s.byID[s.nextID] = &models.Manager{
		ID:       s.nextID,
		Name:     "Test",
		LastName: "Manager",
		Username: username,
		Passcode: stored,
	}
	return s.nextID
}

// passcodes returns a snapshot of every stored passcode keyed by ID
func (s *stubPrincipalStore) passcodes() map[uint]string {
	snapshot := make(map[uint]string, len(s.byID))
	for id, p := range s.byID {
		snapshot[id] = p.GetPasscode()
	}
	return snapshot
}
