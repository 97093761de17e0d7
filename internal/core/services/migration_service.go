package services

import (
	"context"
	"log"

	"tillpoint/internal/adapters/persistence/repositories"
	"tillpoint/internal/pkg/passcode"
)

// MigrationService rewrites legacy plaintext passcodes into bcrypt
// hashes in place. It runs at startup before the listener accepts
// traffic and is idempotent, so re-running it on every boot (and from
// the nightly cron) is safe: a second pass finds nothing to change.
type MigrationService struct {
	stores []repositories.PrincipalRepository
}

// NewMigrationService creates a new passcode migration service
func NewMigrationService(
	cashierRepo repositories.PrincipalRepository,
	managerRepo repositories.PrincipalRepository,
) *MigrationService {
	return &MigrationService{
		stores: []repositories.PrincipalRepository{cashierRepo, managerRepo},
	}
}

// Result reports what one sweep did
type Result struct {
	Scanned  int
	Migrated int
	Skipped  int
	Failed   int
}

// Run sweeps both principal kinds. A failure on one record never aborts
// the sweep: the row is logged and left for the next run. This is the
// only writer allowed to turn a plaintext passcode into a hash without
// a user-initiated passcode change.
func (s *MigrationService) Run(ctx context.Context) *Result {
	result := &Result{}

	for _, store := range s.stores {
		principals, err := store.List(ctx)
		if err != nil {
			log.Printf("⚠️ Passcode migration: listing %ss failed: %v", store.Role(), err)
			continue
		}

		for _, principal := range principals {
			result.Scanned++

			stored := principal.GetPasscode()
			if passcode.IsHashed(stored) {
				result.Skipped++
				continue
			}

			hashed, err := passcode.Hash(stored)
			if err != nil {
				result.Failed++
				log.Printf("⚠️ Passcode migration: hashing failed for %s %q: %v",
					store.Role(), principal.GetUsername(), err)
				continue
			}

			if err := store.UpdatePasscode(ctx, principal.PrincipalID(), hashed); err != nil {
				result.Failed++
				log.Printf("⚠️ Passcode migration: update failed for %s %q: %v",
					store.Role(), principal.GetUsername(), err)
				continue
			}

			result.Migrated++
		}
	}

	log.Printf("✅ Passcode migration: scanned=%d migrated=%d skipped=%d failed=%d",
		result.Scanned, result.Migrated, result.Skipped, result.Failed)
	return result
}
