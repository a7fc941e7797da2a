package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fixnear/fixnear-backend/controllers"
	"github.com/fixnear/fixnear-backend/middleware"
	"github.com/fixnear/fixnear-backend/models"
)

// SetupAdminRoutes configures the admin panel routes, all behind the ADMIN
// role check
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	admin.Get("/dashboard", controllers.GetDashboard)
	admin.Get("/analytics", controllers.GetAnalytics)

	admin.Get("/users", controllers.GetAllUsers)
	admin.Get("/users/:id", controllers.GetUserByID)
	admin.Delete("/users/:id", controllers.DeleteUser)
	admin.Put("/users/:id/status", controllers.ToggleUserStatus)

	admin.Get("/providers", controllers.GetAllProvidersAdmin)
	admin.Delete("/providers/:id", controllers.DeleteProvider)

	admin.Get("/bookings", controllers.GetAllBookings)
	admin.Get("/bookings/status/:status", controllers.GetBookingsByStatus)
	admin.Put("/bookings/:id/status", controllers.AdminUpdateBookingStatus)
}
