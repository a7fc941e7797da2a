package controllers

import "github.com/fixnear/fixnear-backend/services"

var (
	userService     *services.UserService
	providerService *services.ProviderService
	bookingService  *services.BookingService
	statsService    *services.StatsService
)

// Init hands the shared service instances to the handlers. Called once from
// main after the database is up.
func Init(u *services.UserService, p *services.ProviderService, b *services.BookingService, s *services.StatsService) {
	userService = u
	providerService = p
	bookingService = b
	statsService = s
}
