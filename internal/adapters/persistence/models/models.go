package models

import (
	"time"

	"gorm.io/gorm"

	"tillpoint/internal/core/domain"
)

// ============================================================
// Principals: Cashier & Manager
// ============================================================

// Principal is the common shape shared by the two staff account kinds.
// The passcode column holds either a bcrypt hash or, for rows the
// migration sweep has not reached yet, a legacy 4-6 character plaintext
// value. Callers cannot tell which without attempting verification.
type Principal interface {
	PrincipalID() uint
	Role() string
	GetUsername() string
	GetPasscode() string
	SetPasscode(stored string)
	ToIdentity() *domain.Identity
}

// Cashier represents the cashier table
type Cashier struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	LastName    string    `gorm:"column:last_name;size:100;not null" json:"last_name"`
	Username    string    `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Passcode    string    `gorm:"size:255;not null" json:"-"`
	DateCreated time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`
}

func (Cashier) TableName() string {
	return "cashier"
}

func (c *Cashier) PrincipalID() uint    { return c.ID }
func (c *Cashier) Role() string         { return domain.RoleCashier }
func (c *Cashier) GetUsername() string  { return c.Username }
func (c *Cashier) GetPasscode() string  { return c.Passcode }
func (c *Cashier) SetPasscode(s string) { c.Passcode = s }

func (c *Cashier) ToIdentity() *domain.Identity {
	return &domain.Identity{
		ID:       c.ID,
		Username: c.Username,
		Role:     domain.RoleCashier,
		Name:     c.Name,
		LastName: c.LastName,
	}
}

// Manager represents the manager table
type Manager struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	LastName    string    `gorm:"column:last_name;size:100;not null" json:"last_name"`
	Username    string    `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Passcode    string    `gorm:"size:255;not null" json:"-"`
	DateCreated time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`
}

func (Manager) TableName() string {
	return "manager"
}

func (m *Manager) PrincipalID() uint    { return m.ID }
func (m *Manager) Role() string         { return domain.RoleManager }
func (m *Manager) GetUsername() string  { return m.Username }
func (m *Manager) GetPasscode() string  { return m.Passcode }
func (m *Manager) SetPasscode(s string) { m.Passcode = s }

func (m *Manager) ToIdentity() *domain.Identity {
	return &domain.Identity{
		ID:       m.ID,
		Username: m.Username,
		Role:     domain.RoleManager,
		Name:     m.Name,
		LastName: m.LastName,
	}
}

// PrincipalResponse DTO for administrative listings.
// The passcode column is never echoed back to clients.
type PrincipalResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	LastName    string    `json:"last_name"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	DateCreated time.Time `json:"date_created"`
}

func (c *Cashier) ToResponse() *PrincipalResponse {
	return &PrincipalResponse{
		ID:          c.ID,
		Name:        c.Name,
		LastName:    c.LastName,
		Username:    c.Username,
		Role:        domain.RoleCashier,
		DateCreated: c.DateCreated,
	}
}

func (m *Manager) ToResponse() *PrincipalResponse {
	return &PrincipalResponse{
		ID:          m.ID,
		Name:        m.Name,
		LastName:    m.LastName,
		Username:    m.Username,
		Role:        domain.RoleManager,
		DateCreated: m.DateCreated,
	}
}

// ============================================================
// Back-office staff profiles
// ============================================================

// StaffProfile represents the users table
type StaffProfile struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FullName     string `gorm:"size:100" json:"full_name"`
	EmailAddress string `gorm:"uniqueIndex;size:120;not null" json:"email_address"`
	Username     string `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Password     string `gorm:"size:255;not null" json:"-"`
	UserTitle    string `gorm:"size:50" json:"user_title"`
	UserLevel    string `gorm:"size:50" json:"user_level"`
}

func (StaffProfile) TableName() string {
	return "users"
}

// StaffProfileResponse DTO
type StaffProfileResponse struct {
	ID           uint   `json:"id"`
	FullName     string `json:"full_name"`
	EmailAddress string `json:"email_address"`
	Username     string `json:"username"`
	UserTitle    string `json:"user_title"`
	UserLevel    string `json:"user_level"`
}

func (p *StaffProfile) ToResponse() *StaffProfileResponse {
	return &StaffProfileResponse{
		ID:           p.ID,
		FullName:     p.FullName,
		EmailAddress: p.EmailAddress,
		Username:     p.Username,
		UserTitle:    p.UserTitle,
		UserLevel:    p.UserLevel,
	}
}

// ============================================================
// Till records
// ============================================================

// Till represents the till table. One row per drawer sign-in.
type Till struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Username string    `gorm:"size:50;not null" json:"username"`
	Amount   float64   `gorm:"not null" json:"amount"`
	TimeIn   time.Time `gorm:"column:time_in;autoCreateTime" json:"time_in"`
}

func (Till) TableName() string {
	return "till"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates missing tables and columns at startup
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Cashier{},
		&Manager{},
		&StaffProfile{},
		&Till{},
	)
}
