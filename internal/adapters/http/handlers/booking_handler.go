package handlers

import (
	"errors"
	"strconv"

	"residential-hub/internal/adapters/http/middleware"
	"residential-hub/internal/core/domain"
	"residential-hub/internal/core/services"
	"residential-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BookingHandler handles booking request endpoints
type BookingHandler struct {
	bookingService *services.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// List returns the bookings visible to the caller. Admins get the whole
// ledger (optionally narrowed by ?status=); residents get their own rows.
// @Summary List booking requests
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)
	if session == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	bookings, err := h.bookingService.List(c.Context(), session, c.Query("status"))
	if err != nil {
		return response.InternalServerError(c, "Failed to list bookings")
	}

	return response.Success(c, "", bookings)
}

// createBookingInput represents booking creation input
type createBookingInput struct {
	ApartmentID uint `json:"apartment_id"`
}

// Create submits a pending booking request for a unit
// @Summary Create a booking request
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	session := middleware.SessionFromCtx(c)
	if session == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input createBookingInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.ApartmentID == 0 {
		return response.BadRequest(c, "apartment_id is required")
	}

	booking, err := h.bookingService.Create(c.Context(), session, input.ApartmentID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApartmentNotFound):
			return response.NotFound(c, "Apartment not found")
		default:
			return response.InternalServerError(c, "Failed to create booking")
		}
	}

	return response.Created(c, "Booking request submitted", booking)
}

// Approve records an approval decision (admin only)
// @Summary Approve a booking request
// @Router /api/bookings/{id}/approve [put]
func (h *BookingHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, domain.BookingApproved)
}

// Decline records a decline decision (admin only)
// @Summary Decline a booking request
// @Router /api/bookings/{id}/decline [put]
func (h *BookingHandler) Decline(c *fiber.Ctx) error {
	return h.decide(c, domain.BookingDeclined)
}

func (h *BookingHandler) decide(c *fiber.Ctx, status domain.BookingStatus) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid booking id")
	}

	booking, err := h.bookingService.Transition(c.Context(), uint(id), status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			return response.NotFound(c, "Booking not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status")
		default:
			return response.InternalServerError(c, "Failed to update booking")
		}
	}

	return response.Success(c, "Booking "+string(booking.Status), booking)
}
