package services

import (
	"context"
	"log"
	"time"

	"residential-hub/internal/adapters/persistence/models"
	"residential-hub/internal/adapters/persistence/repositories"
	"residential-hub/internal/core/domain"
)

// BookingService handles the booking request ledger. Requests are created
// by any authenticated account and decided by admins; they are never
// deleted.
type BookingService struct {
	bookingRepo   repositories.BookingRepository
	apartmentRepo repositories.ApartmentRepository
	notifyService *NotificationService
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repositories.BookingRepository,
	apartmentRepo repositories.ApartmentRepository,
	notifyService *NotificationService,
) *BookingService {
	return &BookingService{
		bookingRepo:   bookingRepo,
		apartmentRepo: apartmentRepo,
		notifyService: notifyService,
	}
}

// List returns the bookings visible to the session. Admins see every
// request and may narrow by an exact status match; everyone else sees only
// their own requests — a role-conditional view, never a permission error.
// For admins, a status value that matches no request yields an empty list.
func (s *BookingService) List(ctx context.Context, session *models.Session, statusFilter string) ([]*models.BookingRequest, error) {
	var filter repositories.BookingFilter
	if session.Role == domain.RoleAdmin {
		if statusFilter != "" {
			status := domain.BookingStatus(statusFilter)
			filter.Status = &status
		}
	} else {
		accountID := session.AccountID
		filter.AccountID = &accountID
	}
	return s.bookingRepo.List(ctx, filter)
}

// Create appends a pending request for the given unit, attributed to the
// session's account. Fails with domain.ErrApartmentNotFound — and appends
// nothing — when the unit does not exist.
func (s *BookingService) Create(ctx context.Context, session *models.Session, apartmentID uint) (*models.BookingRequest, error) {
	apartment, err := s.apartmentRepo.GetByID(ctx, apartmentID)
	if err != nil {
		return nil, err
	}

	booking := &models.BookingRequest{
		AccountID:   session.AccountID,
		ApartmentID: apartmentID,
		Status:      domain.BookingPending,
		RequestDate: time.Now(),
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	log.Printf("✅ Booking request #%d: account=%d unit=%s %s", booking.ID, booking.AccountID, apartment.Tower, apartment.Unit)
	if s.notifyService != nil {
		s.notifyService.NotifyNewBooking(booking, apartment)
	}
	return booking, nil
}

// Transition records an admin decision on a request. The target status
// must be approved or declined; the current status is overwritten
// unconditionally, so an already-decided request can be re-decided. The
// overwrite is deliberate: decisions stay revisable and repeating one is
// idempotent.
func (s *BookingService) Transition(ctx context.Context, id uint, status domain.BookingStatus) (*models.BookingRequest, error) {
	if !status.IsDecision() {
		return nil, domain.ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	booking.Status = status
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	log.Printf("✅ Booking #%d %s", booking.ID, booking.Status)
	if s.notifyService != nil {
		apartment, err := s.apartmentRepo.GetByID(ctx, booking.ApartmentID)
		if err == nil {
			s.notifyService.NotifyBookingDecision(booking, apartment)
		}
	}
	return booking, nil
}
