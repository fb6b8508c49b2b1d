package config

import (
	"context"
	"log"
	"time"

	"residential-hub/internal/adapters/persistence/models"
	"residential-hub/internal/adapters/persistence/repositories"
	"residential-hub/internal/core/domain"
	"residential-hub/internal/pkg/password"

	"github.com/shopspring/decimal"
)

// SeedDemoData loads the demo dataset: two accounts, six apartments and
// three historical bookings. Skipped when accounts already exist so a
// restart against a persistent database does not duplicate rows.
func SeedDemoData(ctx context.Context, repos *repositories.Set) error {
	exists, err := repos.Accounts.ExistsByEmail(ctx, "resident@example.com")
	if err != nil {
		return err
	}
	if exists {
		log.Println("⚠️ Demo data already present, skipping seed")
		return nil
	}

	residentPass, err := password.Hash("password123")
	if err != nil {
		return err
	}
	adminPass, err := password.Hash("admin123")
	if err != nil {
		return err
	}

	accounts := []*models.Account{
		{Email: "resident@example.com", Password: residentPass, Name: "John Resident", Role: domain.RoleResident},
		{Email: "admin@example.com", Password: adminPass, Name: "Jane Admin", Role: domain.RoleAdmin},
	}
	for _, account := range accounts {
		if err := repos.Accounts.Create(ctx, account); err != nil {
			return err
		}
	}

	apartments := []*models.Apartment{
		{Tower: "Tower A", Unit: "A-501", Floor: 5, Bedrooms: 3, Bathrooms: 2, Price: decimal.NewFromInt(2500), Status: domain.ApartmentStatusAvailable},
		{Tower: "Tower B", Unit: "B-302", Floor: 3, Bedrooms: 2, Bathrooms: 1, Price: decimal.NewFromInt(1800), Status: domain.ApartmentStatusAvailable},
		{Tower: "Tower A", Unit: "A-801", Floor: 8, Bedrooms: 3, Bathrooms: 2, Price: decimal.NewFromInt(3200), Status: domain.ApartmentStatusAvailable},
		{Tower: "Tower C", Unit: "C-601", Floor: 6, Bedrooms: 4, Bathrooms: 3, Price: decimal.NewFromInt(4000), Status: domain.ApartmentStatusAvailable},
		{Tower: "Tower B", Unit: "B-201", Floor: 2, Bedrooms: 2, Bathrooms: 1, Price: decimal.NewFromInt(1600), Status: domain.ApartmentStatusAvailable},
		{Tower: "Tower C", Unit: "C-702", Floor: 7, Bedrooms: 3, Bathrooms: 2, Price: decimal.NewFromInt(2900), Status: domain.ApartmentStatusAvailable},
	}
	for _, apartment := range apartments {
		if err := repos.Apartments.Create(ctx, apartment); err != nil {
			return err
		}
	}

	residentID := accounts[0].ID
	bookings := []*models.BookingRequest{
		{AccountID: residentID, ApartmentID: apartments[0].ID, Status: domain.BookingApproved, RequestDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{AccountID: residentID, ApartmentID: apartments[1].ID, Status: domain.BookingPending, RequestDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
		{AccountID: residentID, ApartmentID: apartments[3].ID, Status: domain.BookingDeclined, RequestDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, booking := range bookings {
		if err := repos.Bookings.Create(ctx, booking); err != nil {
			return err
		}
	}

	log.Printf("✅ Demo data seeded: %d accounts, %d apartments, %d bookings",
		len(accounts), len(apartments), len(bookings))
	return nil
}
