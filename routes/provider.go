package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fixnear/fixnear-backend/controllers"
	"github.com/fixnear/fixnear-backend/middleware"
	"github.com/fixnear/fixnear-backend/models"
)

// SetupProviderRoutes configures all provider related routes
func SetupProviderRoutes(app *fiber.App) {
	provider := app.Group("/providers")

	provider.Get("/", controllers.GetProviders)
	provider.Get("/available", controllers.GetAvailableProviders)
	provider.Get("/location/:location", controllers.GetProvidersByLocation)
	provider.Get("/user/:userId", controllers.GetProviderByUserID)
	provider.Get("/:id", controllers.GetProvider)

	provider.Post("/", controllers.CreateProvider)
	provider.Put("/:id", middleware.Protected(), controllers.UpdateProvider)
	provider.Put("/:id/availability", middleware.Protected(), controllers.UpdateProviderAvailability)
	provider.Put("/:id/rating", middleware.Protected(), controllers.UpdateProviderRating)
	provider.Post("/:id/photo", middleware.Protected(), controllers.UploadProviderPhoto)
	provider.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.DeleteProvider)
}
