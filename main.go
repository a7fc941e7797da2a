package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fixnear/fixnear-backend/controllers"
	"github.com/fixnear/fixnear-backend/cron"
	"github.com/fixnear/fixnear-backend/db"
	"github.com/fixnear/fixnear-backend/middleware"
	"github.com/fixnear/fixnear-backend/redis"
	"github.com/fixnear/fixnear-backend/routes"
	"github.com/fixnear/fixnear-backend/services"
)

func main() {
	app := fiber.New(fiber.Config{
		// Last-resort safety net for anything a handler didn't catch
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	db.Init()
	db.Migrate()
	redis.Init()

	userService := services.NewUserService(db.DB)
	providerService := services.NewProviderService(db.DB)
	bookingService := services.NewBookingService(db.DB)
	statsService := services.NewStatsService(db.DB)
	controllers.Init(userService, providerService, bookingService, statsService)
	middleware.Init(userService)

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	routes.SetupAuthRoutes(app)
	routes.SetupProviderRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupAdminRoutes(app)

	cron.StartCronJobs(bookingService, userService)

	log.Fatal(app.Listen(":8080"))
}
