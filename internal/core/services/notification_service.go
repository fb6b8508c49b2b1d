package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"residential-hub/internal/adapters/persistence/models"
)

// NotificationService pushes booking events to an external webhook
// (e.g. a Slack/Discord incoming webhook for the building office).
// Disabled unless NOTIFY_WEBHOOK_URL is set; failures are logged and never
// surfaced to the caller.
type NotificationService struct {
	webhookURL string
	enabled    bool
	client     *http.Client
}

// NewNotificationService creates a new notification service
func NewNotificationService() *NotificationService {
	url := os.Getenv("NOTIFY_WEBHOOK_URL")
	return &NotificationService{
		webhookURL: url,
		enabled:    url != "",
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// IsEnabled checks if notification is enabled
func (s *NotificationService) IsEnabled() bool {
	return s.enabled
}

// send posts a message to the webhook
func (s *NotificationService) send(message string) error {
	if !s.enabled {
		return nil
	}

	payload, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		return err
	}

	resp, err := s.client.Post(s.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return nil
}

// NotifyNewBooking sends a notification for a newly submitted request
func (s *NotificationService) NotifyNewBooking(booking *models.BookingRequest, apartment *models.Apartment) {
	message := fmt.Sprintf("🆕 New booking request #%d: unit %s %s (account %d)",
		booking.ID, apartment.Tower, apartment.Unit, booking.AccountID)

	if err := s.send(message); err != nil {
		log.Printf("⚠️ Notify failed for booking #%d: %v", booking.ID, err)
	}
}

// NotifyBookingDecision sends a notification for an admin decision
func (s *NotificationService) NotifyBookingDecision(booking *models.BookingRequest, apartment *models.Apartment) {
	message := fmt.Sprintf("📋 Booking request #%d %s: unit %s %s",
		booking.ID, booking.Status, apartment.Tower, apartment.Unit)

	if err := s.send(message); err != nil {
		log.Printf("⚠️ Notify failed for booking #%d: %v", booking.ID, err)
	}
}
