package config

import (
	"log"

	"gorm.io/gorm"

	"tillpoint/internal/adapters/persistence/models"
	"tillpoint/internal/pkg/passcode"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedDefaultManager(); err != nil {
		log.Printf("⚠️ Manager seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedDefaultManager seeds a default manager so a fresh install can log
// in. Development convenience only; change the passcode immediately in
// production.
func (s *Seeder) seedDefaultManager() error {
	var count int64
	s.db.Model(&models.Manager{}).Count(&count)
	if count > 0 {
		return nil // At least one manager already exists
	}

	hashed, err := passcode.Hash("1234")
	if err != nil {
		return err
	}

	manager := &models.Manager{
		Name:     "Default",
		LastName: "Manager",
		Username: "admin",
		Passcode: hashed,
	}

	if err := s.db.Create(manager).Error; err != nil {
		return err
	}

	log.Printf("✅ Default manager created: %s", manager.Username)
	return nil
}
