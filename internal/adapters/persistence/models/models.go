package models

import (
	"time"

	"residential-hub/internal/core/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// The original ResidentialHub client expects prices and revenue as JSON
	// numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ============================================================
// Auth tables
// ============================================================

// Account represents the accounts table
type Account struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Email     string      `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string      `gorm:"size:255;not null" json:"-"`
	Name      string      `gorm:"size:100;not null" json:"name"`
	Role      domain.Role `gorm:"size:20;not null;default:'resident'" json:"role"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"-"`
}

func (Account) TableName() string {
	return "accounts"
}

// AccountResponse is the public view of an account. The credential is never
// part of it.
type AccountResponse struct {
	ID    uint        `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
}

func (a *Account) ToResponse() *AccountResponse {
	return &AccountResponse{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role,
	}
}

// Session represents the sessions table. The bearer token itself is never
// stored; only its SHA256 hash is. Role is a copy fixed at issuance.
type Session struct {
	ID        string      `gorm:"primaryKey;size:36" json:"-"`
	TokenHash string      `gorm:"uniqueIndex;size:64;not null" json:"-"`
	AccountID uint        `gorm:"index;not null" json:"-"`
	Email     string      `gorm:"size:100;not null" json:"-"`
	Role      domain.Role `gorm:"size:20;not null" json:"-"`
	IssuedAt  time.Time   `gorm:"autoCreateTime" json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}

// ============================================================
// Inventory and booking tables
// ============================================================

// Apartment represents the apartments table. Units are never deleted or
// mutated after creation.
type Apartment struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Tower     string          `gorm:"size:50;not null;index" json:"tower"`
	Unit      string          `gorm:"size:20;not null" json:"unit"`
	Floor     int             `gorm:"not null" json:"floor"`
	Bedrooms  int             `gorm:"not null;index" json:"bedrooms"`
	Bathrooms int             `gorm:"not null" json:"bathrooms"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Status    string          `gorm:"size:20;not null;default:'available'" json:"status"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"-"`
}

func (Apartment) TableName() string {
	return "apartments"
}

// BookingRequest represents the booking_requests table. Requests are never
// deleted; status is the only mutable field.
type BookingRequest struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	AccountID   uint                 `gorm:"index;not null" json:"user_id"`
	ApartmentID uint                 `gorm:"index;not null" json:"apartment_id"`
	Status      domain.BookingStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	RequestDate time.Time            `gorm:"autoCreateTime" json:"request_date"`
}

func (BookingRequest) TableName() string {
	return "booking_requests"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Account{},
		&Session{},
		&Apartment{},
		&BookingRequest{},
	)
}
