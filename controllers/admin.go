package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fixnear/fixnear-backend/utils"
)

// GetDashboard returns the admin dashboard statistics, recomputed from the
// collections on every call.
func GetDashboard(c *fiber.Ctx) error {
	dashboard, err := statsService.Dashboard()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving dashboard",
			Error:   err.Error(),
		})
	}
	return c.JSON(dashboard)
}

// GetAnalytics returns user, provider and booking statistics plus the
// per-service provider breakdown.
func GetAnalytics(c *fiber.Ctx) error {
	analytics, err := statsService.Analytics()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving analytics",
			Error:   err.Error(),
		})
	}
	return c.JSON(analytics)
}

func GetAllUsers(c *fiber.Ctx) error {
	users, err := userService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving users",
			Error:   err.Error(),
		})
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

func GetUserByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	user, err := userService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving user",
			Error:   err.Error(),
		})
	}
	user.Password = ""
	return c.JSON(user)
}

func DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	if err := userService.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error deleting user",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleUserStatus enables or disables an account from the "enabled" query
// param.
func ToggleUserStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	enabled, err := strconv.ParseBool(c.Query("enabled"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "enabled query param is required",
		})
	}

	user, err := userService.SetEnabled(id, enabled)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error updating user status",
			Error:   err.Error(),
		})
	}
	user.Password = ""
	return c.JSON(user)
}

func GetAllBookings(c *fiber.Ctx) error {
	bookings, err := bookingService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

func GetBookingsByStatus(c *fiber.Ctx) error {
	bookings, err := bookingService.ByStatus(c.Params("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// AdminUpdateBookingStatus writes the status query param verbatim, without
// synonym normalization.
func AdminUpdateBookingStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	status := c.Query("status")
	if status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status query param is required",
		})
	}

	booking, err := bookingService.SetStatus(id, status)
	if err != nil {
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

// GetAllProvidersAdmin is the unfiltered provider listing for the admin
// panel.
func GetAllProvidersAdmin(c *fiber.Ctx) error {
	providers, err := providerService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving providers",
			Error:   err.Error(),
		})
	}
	return c.JSON(providers)
}
