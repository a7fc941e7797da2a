package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fixnear/fixnear-backend/models"
	"github.com/fixnear/fixnear-backend/utils"
)

// CreateBooking opens a PENDING booking, snapshotting the user and provider
// fields as they are right now.
func CreateBooking(c *fiber.Ctx) error {
	type BookingRequest struct {
		UserID      uint       `json:"user_id"`
		ProviderID  uint       `json:"provider_id"`
		Description string     `json:"description"`
		BookingDate *time.Time `json:"booking_date"`
	}

	req := new(BookingRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if req.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User ID is required",
		})
	}
	if req.ProviderID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Provider ID is required",
		})
	}

	user, err := userService.GetByID(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	provider, err := providerService.GetByID(req.ProviderID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Provider not found",
		})
	}

	booking, err := bookingService.Create(user, provider, req.Description, req.BookingDate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error creating booking",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

func GetBooking(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	booking, err := bookingService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving booking",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// GetBookings filters by userId or providerId query params; with neither it
// returns everything.
func GetBookings(c *fiber.Ctx) error {
	if userID := c.QueryInt("userId"); userID > 0 {
		bookings, err := bookingService.ByUser(uint(userID))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Error retrieving bookings",
				Error:   err.Error(),
			})
		}
		return c.JSON(bookings)
	}

	if providerID := c.QueryInt("providerId"); providerID > 0 {
		bookings, err := bookingService.ByProvider(uint(providerID))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Error retrieving bookings",
				Error:   err.Error(),
			})
		}
		return c.JSON(bookings)
	}

	bookings, err := bookingService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

func GetUserBookings(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	bookings, err := bookingService.ByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

func GetProviderBookings(c *fiber.Ctx) error {
	providerID, err := parseID(c, "providerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider ID",
		})
	}

	bookings, err := bookingService.ByProvider(providerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// UpdateBookingStatus normalizes the raw status from the body and writes it.
func UpdateBookingStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	type StatusUpdateRequest struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	req := new(StatusUpdateRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	booking, err := bookingService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, models.ErrEmptyStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Status is required",
			})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error updating booking",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// AddBookingReview records rating and review text and completes the booking.
func AddBookingReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	type ReviewRequest struct {
		Rating float64 `json:"rating"`
		Review string  `json:"review"`
	}
	req := new(ReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	booking, err := bookingService.AddReview(id, req.Rating, req.Review)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error adding review",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// CancelBooking marks the booking CANCELLED and answers 204. The record is
// kept.
func CancelBooking(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	if _, err := bookingService.Cancel(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error cancelling booking",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
