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

func newBookingFixture(t *testing.T) (*services.BookingService, repositories.Set) {
	t.Helper()
	repos := memory.NewSet()

	apartments := []*models.Apartment{
		{Tower: "Tower A", Unit: "A-501", Floor: 5, Bedrooms: 3, Bathrooms: 2, Price: decimal.NewFromInt(2500), Status: domain.ApartmentStatusAvailable},
		{Tower: "Tower B", Unit: "B-302", Floor: 3, Bedrooms: 2, Bathrooms: 1, Price: decimal.NewFromInt(1800), Status: domain.ApartmentStatusAvailable},
	}
	for _, apartment := range apartments {
		require.NoError(t, repos.Apartments.Create(context.Background(), apartment))
	}

	return services.NewBookingService(repos.Bookings, repos.Apartments, nil), repos
}

func residentSession(accountID uint) *models.Session {
	return &models.Session{AccountID: accountID, Role: domain.RoleResident}
}

func adminSession() *models.Session {
	return &models.Session{AccountID: 99, Role: domain.RoleAdmin}
}

func TestCreateBooking(t *testing.T) {
	svc, _ := newBookingFixture(t)

	booking, err := svc.Create(context.Background(), residentSession(1), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), booking.ID)
	assert.Equal(t, uint(1), booking.AccountID)
	assert.Equal(t, domain.BookingPending, booking.Status)
	assert.False(t, booking.RequestDate.IsZero())
}

func TestCreateBookingUnknownApartment(t *testing.T) {
	svc, repos := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, residentSession(1), 999)
	assert.ErrorIs(t, err, domain.ErrApartmentNotFound)

	// Nothing was appended to the ledger.
	count, err := repos.Bookings.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestListBookingsRoleScoped(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, residentSession(1), 1)
	require.NoError(t, err)
	_, err = svc.Create(ctx, residentSession(1), 2)
	require.NoError(t, err)
	_, err = svc.Create(ctx, residentSession(2), 1)
	require.NoError(t, err)

	// Residents see only their own rows.
	mine, err := svc.List(ctx, residentSession(1), "")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := svc.List(ctx, residentSession(2), "")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)

	// Admins see everything; the status filter only applies to them.
	all, err := svc.List(ctx, adminSession(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := svc.List(ctx, adminSession(), "pending")
	require.NoError(t, err)
	assert.Len(t, pending, 3)

	approved, err := svc.List(ctx, adminSession(), "approved")
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestTransition(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, residentSession(1), 1)
	require.NoError(t, err)

	decided, err := svc.Transition(ctx, booking.ID, domain.BookingApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingApproved, decided.Status)

	// Decisions are revisable: a decided request can be re-decided.
	redecided, err := svc.Transition(ctx, booking.ID, domain.BookingDeclined)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingDeclined, redecided.Status)
}

func TestTransitionInvalidStatus(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, residentSession(1), 1)
	require.NoError(t, err)

	// Only approved and declined are decisions; pending cannot be set back.
	_, err = svc.Transition(ctx, booking.ID, domain.BookingPending)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = svc.Transition(ctx, booking.ID, domain.BookingStatus("archived"))
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestTransitionUnknownBooking(t *testing.T) {
	svc, _ := newBookingFixture(t)

	_, err := svc.Transition(context.Background(), 999, domain.BookingApproved)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
