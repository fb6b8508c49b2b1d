package repositories

import (
	"context"

	"residential-hub/internal/adapters/persistence/models"
	"residential-hub/internal/core/domain"
)

// Repositories return domain sentinel errors (domain.ErrAccountNotFound,
// domain.ErrSessionNotFound, ...) for missing records so services stay
// backend-agnostic.

// AccountRepository defines account repository interface
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// SessionRepository defines session repository interface. Sessions are the
// only records that get structurally deleted (on revocation).
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	// DeleteByTokenHash removes a session. Deleting an absent session is a
	// no-op, not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}

// ApartmentFilter holds optional equality predicates for listing apartments.
// A nil field means no filtering on that field.
type ApartmentFilter struct {
	Tower    *string
	Bedrooms *int
}

// ApartmentRepository defines apartment repository interface
type ApartmentRepository interface {
	Create(ctx context.Context, apartment *models.Apartment) error
	GetByID(ctx context.Context, id uint) (*models.Apartment, error)
	List(ctx context.Context, filter ApartmentFilter) ([]*models.Apartment, error)
	Count(ctx context.Context) (int64, error)
}

// BookingFilter holds optional equality predicates for listing bookings.
type BookingFilter struct {
	AccountID *uint
	Status    *domain.BookingStatus
}

// BookingRepository defines booking request repository interface
type BookingRepository interface {
	Create(ctx context.Context, booking *models.BookingRequest) error
	GetByID(ctx context.Context, id uint) (*models.BookingRequest, error)
	List(ctx context.Context, filter BookingFilter) ([]*models.BookingRequest, error)
	Update(ctx context.Context, booking *models.BookingRequest) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
}

// Set bundles the repositories a running server needs. It is built from
// gorm in production and from the memory package in tests and
// STORAGE=memory runs.
type Set struct {
	Accounts   AccountRepository
	Sessions   SessionRepository
	Apartments ApartmentRepository
	Bookings   BookingRepository
}
