package services

import (
	"context"
	"errors"

	"residential-hub/internal/adapters/persistence/repositories"
	"residential-hub/internal/core/domain"

	"github.com/shopspring/decimal"
)

// DashboardService computes occupancy statistics. It is a read-only
// projection over the catalog and the booking ledger, recomputed on every
// call and never cached.
type DashboardService struct {
	apartmentRepo repositories.ApartmentRepository
	bookingRepo   repositories.BookingRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	apartmentRepo repositories.ApartmentRepository,
	bookingRepo repositories.BookingRepository,
) *DashboardService {
	return &DashboardService{
		apartmentRepo: apartmentRepo,
		bookingRepo:   bookingRepo,
	}
}

// OccupancyStats represents the admin dashboard aggregates
type OccupancyStats struct {
	TotalUnits      int64           `json:"total_units"`
	OccupiedUnits   int64           `json:"occupied_units"`
	OccupancyRate   float64         `json:"occupancy_rate"`
	PendingBookings int64           `json:"pending_bookings"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalBookings   int64           `json:"total_bookings"`
}

// GetStats derives the current aggregates:
//
//	total_units      count of all units
//	occupied_units   count of approved requests
//	occupancy_rate   occupied/total x 100, 0 when the catalog is empty
//	pending_bookings count of pending requests
//	total_revenue    sum of prices of units behind approved requests; a
//	                 request whose unit is missing contributes 0
//	total_bookings   count of all requests
func (s *DashboardService) GetStats(ctx context.Context) (*OccupancyStats, error) {
	stats := &OccupancyStats{TotalRevenue: decimal.Zero}

	var err error
	if stats.TotalUnits, err = s.apartmentRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalBookings, err = s.bookingRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingBookings, err = s.bookingRepo.CountByStatus(ctx, domain.BookingPending); err != nil {
		return nil, err
	}

	approved := domain.BookingApproved
	approvedBookings, err := s.bookingRepo.List(ctx, repositories.BookingFilter{Status: &approved})
	if err != nil {
		return nil, err
	}
	stats.OccupiedUnits = int64(len(approvedBookings))

	for _, booking := range approvedBookings {
		apartment, err := s.apartmentRepo.GetByID(ctx, booking.ApartmentID)
		if err != nil {
			if errors.Is(err, domain.ErrApartmentNotFound) {
				continue
			}
			return nil, err
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(apartment.Price)
	}

	if stats.TotalUnits > 0 {
		stats.OccupancyRate = float64(stats.OccupiedUnits) / float64(stats.TotalUnits) * 100
	}
	return stats, nil
}
