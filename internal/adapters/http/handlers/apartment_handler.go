package handlers

import (
	"errors"
	"strconv"

	"residential-hub/internal/core/domain"
	"residential-hub/internal/core/services"
	"residential-hub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ApartmentHandler handles apartment catalog endpoints
type ApartmentHandler struct {
	apartmentService *services.ApartmentService
}

// NewApartmentHandler creates a new apartment handler
func NewApartmentHandler(apartmentService *services.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{apartmentService: apartmentService}
}

// List returns the apartment catalog
// @Summary List apartments, optionally filtered by tower and bedrooms
// @Router /api/apartments [get]
func (h *ApartmentHandler) List(c *fiber.Ctx) error {
	apartments, err := h.apartmentService.List(c.Context(), services.ListFilters{
		Tower:    c.Query("tower"),
		Bedrooms: c.Query("bedrooms"),
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list apartments")
	}

	return response.Success(c, "", apartments)
}

// Get returns a single apartment
// @Summary Get an apartment by id
// @Router /api/apartments/{id} [get]
func (h *ApartmentHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid apartment id")
	}

	apartment, err := h.apartmentService.Get(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApartmentNotFound):
			return response.NotFound(c, "Apartment not found")
		default:
			return response.InternalServerError(c, "Failed to get apartment")
		}
	}

	return response.Success(c, "", apartment)
}

// Create adds a new apartment to the catalog (admin only)
// @Summary Create an apartment
// @Router /api/apartments [post]
func (h *ApartmentHandler) Create(c *fiber.Ctx) error {
	var input services.CreateApartmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.Tower == "" || input.Unit == "" {
		return response.BadRequest(c, "Tower and unit are required")
	}
	if input.Price.IsNegative() {
		return response.BadRequest(c, "Price must not be negative")
	}

	apartment, err := h.apartmentService.Create(c.Context(), &input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create apartment")
	}

	return response.Created(c, "Apartment created", apartment)
}
