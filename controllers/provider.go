package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fixnear/fixnear-backend/models"
	"github.com/fixnear/fixnear-backend/utils"
)

// GetProviders lists providers, optionally filtered by service and/or
// location query params (case-insensitive exact match).
func GetProviders(c *fiber.Ctx) error {
	providers, err := providerService.Search(c.Query("service"), c.Query("location"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving providers",
			Error:   err.Error(),
		})
	}
	return c.JSON(providers)
}

// GetAvailableProviders lists providers currently marked available.
func GetAvailableProviders(c *fiber.Ctx) error {
	providers, err := providerService.Available()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving available providers",
			Error:   err.Error(),
		})
	}
	return c.JSON(providers)
}

// GetProvidersByLocation lists providers in a location (case-insensitive).
func GetProvidersByLocation(c *fiber.Ctx) error {
	providers, err := providerService.ByLocation(c.Params("location"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving providers by location",
			Error:   err.Error(),
		})
	}
	return c.JSON(providers)
}

func GetProvider(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider ID",
		})
	}

	provider, err := providerService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving provider",
			Error:   err.Error(),
		})
	}
	return c.JSON(provider)
}

// GetProviderByUserID resolves the provider profile linked to a user
// account, used by the provider dashboard.
func GetProviderByUserID(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	provider, err := providerService.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving provider by userId",
			Error:   err.Error(),
		})
	}
	return c.JSON(provider)
}

// CreateProvider registers a new provider. Name and service are required.
func CreateProvider(c *fiber.Ctx) error {
	provider := new(models.Provider)
	if err := c.BodyParser(provider); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if provider.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Provider name is required",
		})
	}
	if provider.Service == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service type is required",
		})
	}

	if err := providerService.Create(provider); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error creating provider",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(provider)
}

func UpdateProvider(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider ID",
		})
	}

	in := new(models.Provider)
	if err := c.BodyParser(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	provider, err := providerService.Update(id, in)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error updating provider",
			Error:   err.Error(),
		})
	}
	return c.JSON(provider)
}

// UpdateProviderAvailability flips the available flag from the "available"
// query param.
func UpdateProviderAvailability(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider ID",
		})
	}

	available, err := strconv.ParseBool(c.Query("available"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "available query param is required",
		})
	}

	provider, err := providerService.SetAvailable(id, available)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error updating availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(provider)
}

// UpdateProviderRating overwrites the provider rating from the "newRating"
// query param.
func UpdateProviderRating(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider ID",
		})
	}

	rating, err := strconv.ParseFloat(c.Query("newRating"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "newRating query param is required",
		})
	}

	provider, err := providerService.UpdateRating(id, rating)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error updating rating",
			Error:   err.Error(),
		})
	}
	return c.JSON(provider)
}

// UploadProviderPhoto stores a profile photo on Cloudinary and saves the
// secure URL.
func UploadProviderPhoto(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider ID",
		})
	}

	if _, err := providerService.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error retrieving provider",
			Error:   err.Error(),
		})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "photo file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error reading uploaded file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("provider-%d", id), "providers")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error uploading photo",
			Error:   err.Error(),
		})
	}

	provider, err := providerService.SetImageURL(id, url)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error saving photo URL",
			Error:   err.Error(),
		})
	}
	return c.JSON(provider)
}

// DeleteProvider removes the provider record. Admin only.
func DeleteProvider(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid provider ID",
		})
	}

	if err := providerService.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error deleting provider",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
