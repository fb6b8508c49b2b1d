package repositories

import (
	"context"
	"errors"

	"residential-hub/internal/adapters/persistence/models"
	"residential-hub/internal/core/domain"

	"gorm.io/gorm"
)

// bookingRepository implements BookingRepository interface
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create creates a new booking request
func (r *bookingRepository) Create(ctx context.Context, booking *models.BookingRequest) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// GetByID gets a booking request by ID
func (r *bookingRepository) GetByID(ctx context.Context, id uint) (*models.BookingRequest, error) {
	var booking models.BookingRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// List lists booking requests matching the filter, ordered by ID
func (r *bookingRepository) List(ctx context.Context, filter BookingFilter) ([]*models.BookingRequest, error) {
	query := r.db.WithContext(ctx).Model(&models.BookingRequest{}).Order("id")
	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var bookings []*models.BookingRequest
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Update updates a booking request
func (r *bookingRepository) Update(ctx context.Context, booking *models.BookingRequest) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

// Count counts all booking requests
func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BookingRequest{}).Count(&count).Error
	return count, err
}

// CountByStatus counts booking requests with the given status
func (r *bookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BookingRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
