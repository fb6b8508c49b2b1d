package services_test

import (
	"context"
	"testing"

	"residential-hub/internal/adapters/persistence/models"
	"residential-hub/internal/adapters/persistence/repositories"
	"residential-hub/internal/adapters/persistence/repositories/memory"
	"residential-hub/internal/core/domain"
	"residential-hub/internal/core/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmptySet(t *testing.T) repositories.Set {
	t.Helper()
	return memory.NewSet()
}

func TestGetStatsEmpty(t *testing.T) {
	_, repos := newBookingFixture(t)
	dashboard := services.NewDashboardService(repos.Apartments, repos.Bookings)

	stats, err := dashboard.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUnits)
	assert.Zero(t, stats.OccupiedUnits)
	assert.Zero(t, stats.OccupancyRate)
	assert.Zero(t, stats.PendingBookings)
	assert.Zero(t, stats.TotalBookings)
	assert.True(t, stats.TotalRevenue.IsZero())
}

func TestGetStatsEmptyCatalog(t *testing.T) {
	// No divide-by-zero when the catalog is empty: the rate is 0.
	repos := newEmptySet(t)
	dashboard := services.NewDashboardService(repos.Apartments, repos.Bookings)

	stats, err := dashboard.GetStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalUnits)
	assert.Zero(t, stats.OccupancyRate)
}

func TestGetStatsAggregates(t *testing.T) {
	svc, repos := newBookingFixture(t)
	ctx := context.Background()
	dashboard := services.NewDashboardService(repos.Apartments, repos.Bookings)

	first, err := svc.Create(ctx, residentSession(1), 1) // price 2500
	require.NoError(t, err)
	second, err := svc.Create(ctx, residentSession(1), 2) // price 1800
	require.NoError(t, err)
	_, err = svc.Create(ctx, residentSession(2), 1)
	require.NoError(t, err)

	_, err = svc.Transition(ctx, first.ID, domain.BookingApproved)
	require.NoError(t, err)
	_, err = svc.Transition(ctx, second.ID, domain.BookingApproved)
	require.NoError(t, err)

	stats, err := dashboard.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUnits)
	assert.Equal(t, int64(2), stats.OccupiedUnits)
	assert.Equal(t, float64(100), stats.OccupancyRate)
	assert.Equal(t, int64(1), stats.PendingBookings)
	assert.Equal(t, int64(3), stats.TotalBookings)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(4300)))

	// Declining one of the approved requests moves every aggregate back.
	_, err = svc.Transition(ctx, second.ID, domain.BookingDeclined)
	require.NoError(t, err)

	stats, err = dashboard.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.OccupiedUnits)
	assert.Equal(t, float64(50), stats.OccupancyRate)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(2500)))
}

func TestGetStatsMissingUnit(t *testing.T) {
	repos := newEmptySet(t)
	ctx := context.Background()

	apartment := &models.Apartment{Tower: "Tower A", Unit: "A-501", Price: decimal.NewFromInt(2500), Status: domain.ApartmentStatusAvailable}
	require.NoError(t, repos.Apartments.Create(ctx, apartment))

	// An approved request pointing at a unit that does not exist counts
	// toward occupancy but contributes nothing to revenue.
	require.NoError(t, repos.Bookings.Create(ctx, &models.BookingRequest{AccountID: 1, ApartmentID: 999, Status: domain.BookingApproved}))
	require.NoError(t, repos.Bookings.Create(ctx, &models.BookingRequest{AccountID: 1, ApartmentID: apartment.ID, Status: domain.BookingApproved}))

	dashboard := services.NewDashboardService(repos.Apartments, repos.Bookings)
	stats, err := dashboard.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.OccupiedUnits)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(2500)))
}
