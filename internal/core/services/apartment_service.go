package services

import (
	"context"
	"log"
	"strconv"

	"residential-hub/internal/adapters/persistence/models"
	"residential-hub/internal/adapters/persistence/repositories"
	"residential-hub/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ApartmentService handles the apartment catalog. Units are created by
// admins and never mutated or deleted afterwards; booking approval does not
// change a unit's status.
type ApartmentService struct {
	apartmentRepo repositories.ApartmentRepository
}

// NewApartmentService creates a new apartment service
func NewApartmentService(apartmentRepo repositories.ApartmentRepository) *ApartmentService {
	return &ApartmentService{apartmentRepo: apartmentRepo}
}

// ListFilters are the raw query values for List. Both are optional.
type ListFilters struct {
	Tower    string
	Bedrooms string
}

// List returns apartments matching the filters. Tower is an exact string
// match. Bedrooms is parsed as an integer; a non-integer value is treated
// as absent rather than rejected. That lenient parse is deliberate policy,
// not an accident: a malformed filter degrades to an unfiltered list
// instead of an error.
func (s *ApartmentService) List(ctx context.Context, filters ListFilters) ([]*models.Apartment, error) {
	var filter repositories.ApartmentFilter
	if filters.Tower != "" {
		tower := filters.Tower
		filter.Tower = &tower
	}
	if filters.Bedrooms != "" {
		if beds, err := strconv.Atoi(filters.Bedrooms); err == nil {
			filter.Bedrooms = &beds
		}
	}
	return s.apartmentRepo.List(ctx, filter)
}

// Get returns the apartment with the given id, or
// domain.ErrApartmentNotFound.
func (s *ApartmentService) Get(ctx context.Context, id uint) (*models.Apartment, error) {
	return s.apartmentRepo.GetByID(ctx, id)
}

// CreateApartmentInput represents apartment creation input
type CreateApartmentInput struct {
	Tower     string          `json:"tower"`
	Unit      string          `json:"unit"`
	Floor     int             `json:"floor"`
	Bedrooms  int             `json:"bedrooms"`
	Bathrooms int             `json:"bathrooms"`
	Price     decimal.Decimal `json:"price"`
}

// Create appends a new unit to the catalog. The id is assigned by the
// store (first unit gets 1); status is always "available".
func (s *ApartmentService) Create(ctx context.Context, input *CreateApartmentInput) (*models.Apartment, error) {
	apartment := &models.Apartment{
		Tower:     input.Tower,
		Unit:      input.Unit,
		Floor:     input.Floor,
		Bedrooms:  input.Bedrooms,
		Bathrooms: input.Bathrooms,
		Price:     input.Price,
		Status:    domain.ApartmentStatusAvailable,
	}
	if err := s.apartmentRepo.Create(ctx, apartment); err != nil {
		return nil, err
	}

	log.Printf("✅ Apartment created: %s %s (id=%d)", apartment.Tower, apartment.Unit, apartment.ID)
	return apartment, nil
}
