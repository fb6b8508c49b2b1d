package repositories

import (
	"context"
	"errors"

	"residential-hub/internal/adapters/persistence/models"
	"residential-hub/internal/core/domain"

	"gorm.io/gorm"
)

// apartmentRepository implements ApartmentRepository interface
type apartmentRepository struct {
	db *gorm.DB
}

// NewApartmentRepository creates a new apartment repository
func NewApartmentRepository(db *gorm.DB) ApartmentRepository {
	return &apartmentRepository{db: db}
}

// Create creates a new apartment
func (r *apartmentRepository) Create(ctx context.Context, apartment *models.Apartment) error {
	return r.db.WithContext(ctx).Create(apartment).Error
}

// GetByID gets an apartment by ID
func (r *apartmentRepository) GetByID(ctx context.Context, id uint) (*models.Apartment, error) {
	var apartment models.Apartment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&apartment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApartmentNotFound
		}
		return nil, err
	}
	return &apartment, nil
}

// List lists apartments matching the filter, ordered by ID
func (r *apartmentRepository) List(ctx context.Context, filter ApartmentFilter) ([]*models.Apartment, error) {
	query := r.db.WithContext(ctx).Model(&models.Apartment{}).Order("id")
	if filter.Tower != nil {
		query = query.Where("tower = ?", *filter.Tower)
	}
	if filter.Bedrooms != nil {
		query = query.Where("bedrooms = ?", *filter.Bedrooms)
	}

	var apartments []*models.Apartment
	if err := query.Find(&apartments).Error; err != nil {
		return nil, err
	}
	return apartments, nil
}

// Count counts all apartments
func (r *apartmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Apartment{}).Count(&count).Error
	return count, err
}
