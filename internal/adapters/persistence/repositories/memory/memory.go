// Package memory provides in-memory implementations of the repository
// interfaces. Used by tests and STORAGE=memory runs; state lives for the
// process lifetime only.
package memory

import (
	"context"
	"sync"

	"residential-hub/internal/adapters/persistence/models"
	"residential-hub/internal/adapters/persistence/repositories"
	"residential-hub/internal/core/domain"
)

// NewSet returns a fresh, empty repository set.
func NewSet() repositories.Set {
	return repositories.Set{
		Accounts:   NewAccountRepository(),
		Sessions:   NewSessionRepository(),
		Apartments: NewApartmentRepository(),
		Bookings:   NewBookingRepository(),
	}
}

// ============================================================
// Accounts
// ============================================================

type accountRepository struct {
	mu      sync.RWMutex
	byID    map[uint]*models.Account
	byEmail map[string]uint
	nextID  uint
}

// NewAccountRepository creates an empty in-memory account repository
func NewAccountRepository() repositories.AccountRepository {
	return &accountRepository{
		byID:    make(map[uint]*models.Account),
		byEmail: make(map[string]uint),
		nextID:  1,
	}
}

// Create assigns the next ID and stores the account. ID assignment is
// atomic with the append.
func (r *accountRepository) Create(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[account.Email]; taken {
		return domain.ErrEmailTaken
	}
	if account.ID == 0 {
		account.ID = r.nextID
	}
	if account.ID >= r.nextID {
		r.nextID = account.ID + 1
	}
	cp := *account
	r.byID[cp.ID] = &cp
	r.byEmail[cp.Email] = cp.ID
	return nil
}

func (r *accountRepository) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}

func (r *accountRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[email]
	return ok, nil
}

// ============================================================
// Sessions
// ============================================================

type sessionRepository struct {
	mu          sync.RWMutex
	byTokenHash map[string]*models.Session
}

// NewSessionRepository creates an empty in-memory session repository
func NewSessionRepository() repositories.SessionRepository {
	return &sessionRepository{
		byTokenHash: make(map[string]*models.Session),
	}
}

func (r *sessionRepository) Create(_ context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *session
	r.byTokenHash[cp.TokenHash] = &cp
	return nil
}

func (r *sessionRepository) GetByTokenHash(_ context.Context, tokenHash string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.byTokenHash[tokenHash]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

func (r *sessionRepository) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byTokenHash, tokenHash)
	return nil
}

// ============================================================
// Apartments
// ============================================================

type apartmentRepository struct {
	mu     sync.RWMutex
	items  []*models.Apartment
	nextID uint
}

// NewApartmentRepository creates an empty in-memory apartment repository
func NewApartmentRepository() repositories.ApartmentRepository {
	return &apartmentRepository{nextID: 1}
}

func (r *apartmentRepository) Create(_ context.Context, apartment *models.Apartment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if apartment.ID == 0 {
		apartment.ID = r.nextID
	}
	if apartment.ID >= r.nextID {
		r.nextID = apartment.ID + 1
	}
	cp := *apartment
	r.items = append(r.items, &cp)
	return nil
}

func (r *apartmentRepository) GetByID(_ context.Context, id uint) (*models.Apartment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, apartment := range r.items {
		if apartment.ID == id {
			cp := *apartment
			return &cp, nil
		}
	}
	return nil, domain.ErrApartmentNotFound
}

func (r *apartmentRepository) List(_ context.Context, filter repositories.ApartmentFilter) ([]*models.Apartment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Apartment, 0, len(r.items))
	for _, apartment := range r.items {
		if filter.Tower != nil && apartment.Tower != *filter.Tower {
			continue
		}
		if filter.Bedrooms != nil && apartment.Bedrooms != *filter.Bedrooms {
			continue
		}
		cp := *apartment
		result = append(result, &cp)
	}
	return result, nil
}

func (r *apartmentRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// ============================================================
// Bookings
// ============================================================

type bookingRepository struct {
	mu     sync.RWMutex
	items  []*models.BookingRequest
	nextID uint
}

// NewBookingRepository creates an empty in-memory booking repository
func NewBookingRepository() repositories.BookingRepository {
	return &bookingRepository{nextID: 1}
}

func (r *bookingRepository) Create(_ context.Context, booking *models.BookingRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == 0 {
		booking.ID = r.nextID
	}
	if booking.ID >= r.nextID {
		r.nextID = booking.ID + 1
	}
	cp := *booking
	r.items = append(r.items, &cp)
	return nil
}

func (r *bookingRepository) GetByID(_ context.Context, id uint) (*models.BookingRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking := r.find(id)
	if booking == nil {
		return nil, domain.ErrBookingNotFound
	}
	cp := *booking
	return &cp, nil
}

func (r *bookingRepository) List(_ context.Context, filter repositories.BookingFilter) ([]*models.BookingRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.BookingRequest, 0, len(r.items))
	for _, booking := range r.items {
		if filter.AccountID != nil && booking.AccountID != *filter.AccountID {
			continue
		}
		if filter.Status != nil && booking.Status != *filter.Status {
			continue
		}
		cp := *booking
		result = append(result, &cp)
	}
	return result, nil
}

func (r *bookingRepository) Update(_ context.Context, booking *models.BookingRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.find(booking.ID)
	if existing == nil {
		return domain.ErrBookingNotFound
	}
	*existing = *booking
	return nil
}

func (r *bookingRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

func (r *bookingRepository) CountByStatus(_ context.Context, status domain.BookingStatus) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, booking := range r.items {
		if booking.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *bookingRepository) find(id uint) *models.BookingRequest {
	for _, booking := range r.items {
		if booking.ID == id {
			return booking
		}
	}
	return nil
}
