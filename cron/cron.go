package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fixnear/fixnear-backend/models"
	"github.com/fixnear/fixnear-backend/services"
	"github.com/fixnear/fixnear-backend/utils"
)

// StartCronJobs schedules booking expiration and reminder jobs.
func StartCronJobs(bookings *services.BookingService, users *services.UserService) {
	c := cron.New()

	// Every 30 minutes: cancel pending bookings whose date has passed
	_, err := c.AddFunc("*/30 * * * *", func() {
		expireOverdueBookings(bookings)
	})
	if err != nil {
		log.Fatalf("Failed to add expiration job: %v", err)
	}

	// Hourly: remind users of accepted bookings in the next 24 hours
	_, err = c.AddFunc("0 * * * *", func() {
		sendBookingReminders(bookings, users)
	})
	if err != nil {
		log.Fatalf("Failed to add reminder job: %v", err)
	}

	c.Start()
	log.Println("Cron scheduler started")
}

func expireOverdueBookings(bookings *services.BookingService) {
	cancelled, err := bookings.ExpireOverdue(time.Now())
	if err != nil {
		log.Printf("Error expiring overdue bookings: %v", err)
		return
	}
	if len(cancelled) > 0 {
		log.Printf("Cancelled %d overdue pending bookings", len(cancelled))
	}
}

func sendBookingReminders(bookings *services.BookingService, users *services.UserService) {
	now := time.Now()
	upcoming, err := bookings.Upcoming(now, now.Add(24*time.Hour))
	if err != nil {
		log.Printf("Error fetching upcoming bookings: %v", err)
		return
	}

	for _, booking := range upcoming {
		user, err := users.GetByID(booking.UserID)
		if err != nil {
			log.Printf("No user for booking %d: %v", booking.ID, err)
			continue
		}
		if err := sendReminderEmail(user, &booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, user.Email)
	}
}

func sendReminderEmail(user *models.User, booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Booking - %s", booking.Service)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming booking.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Location:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>If you need to cancel, please do so as soon as possible.</p>
	`, user.Name, booking.Service, booking.ProviderName, booking.Location,
		booking.BookingDate.Format("2006-01-02 15:04"), booking.Status)

	return utils.SendEmail(user.Email, subject, body)
}
