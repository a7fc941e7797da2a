package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fixnear/fixnear-backend/controllers"
	"github.com/fixnear/fixnear-backend/middleware"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/api/bookings", middleware.Protected())

	booking.Post("/", controllers.CreateBooking)
	booking.Get("/", controllers.GetBookings)
	booking.Get("/user/:userId", controllers.GetUserBookings)
	booking.Get("/provider/:providerId", controllers.GetProviderBookings)
	booking.Get("/:id", controllers.GetBooking)
	booking.Put("/:id/status", controllers.UpdateBookingStatus)
	booking.Put("/:id/review", controllers.AddBookingReview)
	booking.Delete("/:id", controllers.CancelBooking)
}
