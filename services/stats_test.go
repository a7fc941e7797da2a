package services

import (
	"math"
	"testing"

	"github.com/fixnear/fixnear-backend/models"
)

func TestDashboardCounts(t *testing.T) {
	db := setupTestDB(t)
	bookings := NewBookingService(db)
	stats := NewStatsService(db)

	alice := seedUser(t, db, "Alice", "alice@example.com")
	joe := seedProvider(t, db, models.Provider{Name: "Joe", Service: "Plumbing", Rating: 4.0, Available: true})
	seedProvider(t, db, models.Provider{Name: "Max", Service: "Electric", Rating: 2.0, Available: false})

	mustCreate := func() *models.Booking {
		b, err := bookings.Create(alice, joe, "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return b
	}
	mustCreate()
	mustCreate()
	done := mustCreate()
	if _, err := bookings.SetStatus(done.ID, models.StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, err := stats.Dashboard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.TotalBookings != 3 {
		t.Fatalf("expected totalBookings=3, got %d", d.TotalBookings)
	}
	if d.PendingBookings != 2 {
		t.Fatalf("expected pendingBookings=2, got %d", d.PendingBookings)
	}
	if d.CompletedBookings != 1 {
		t.Fatalf("expected completedBookings=1, got %d", d.CompletedBookings)
	}
	if d.ConfirmedBookings != 0 {
		t.Fatalf("expected confirmedBookings=0, got %d", d.ConfirmedBookings)
	}
	if d.TotalUsers != 1 || d.TotalProviders != 2 {
		t.Fatalf("expected 1 user and 2 providers, got %d/%d", d.TotalUsers, d.TotalProviders)
	}
	if math.Abs(d.AverageProviderRating-3.0) > 1e-9 {
		t.Fatalf("expected average rating 3.0, got %v", d.AverageProviderRating)
	}
	if d.ActiveProviders != 1 {
		t.Fatalf("expected 1 active provider, got %d", d.ActiveProviders)
	}
}

func TestDashboardEmpty(t *testing.T) {
	db := setupTestDB(t)
	stats := NewStatsService(db)

	d, err := stats.Dashboard()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.TotalUsers != 0 || d.TotalProviders != 0 || d.TotalBookings != 0 {
		t.Fatalf("expected zero counts, got %+v", d)
	}
	if d.AverageProviderRating != 0.0 {
		t.Fatalf("average rating with no providers must be 0.0, got %v", d.AverageProviderRating)
	}
}

func TestAnalytics(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	bookings := NewBookingService(db)
	stats := NewStatsService(db)

	alice := seedUser(t, db, "Alice", "alice@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")
	if _, err := users.SetEnabled(bob.ID, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	joe := seedProvider(t, db, models.Provider{Name: "Joe", Service: "Plumbing", Available: true})
	seedProvider(t, db, models.Provider{Name: "Ann", Service: "Plumbing", Available: true})
	seedProvider(t, db, models.Provider{Name: "Max", Service: "Electric", Available: false})

	b1, err := bookings.Create(alice, joe, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b2, err := bookings.Create(alice, joe, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := bookings.SetStatus(b1.ID, models.StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := bookings.Cancel(b2.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, err := stats.Analytics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.TotalUsers != 2 || a.EnabledUsers != 1 || a.DisabledUsers != 1 {
		t.Fatalf("unexpected user counts: %+v", a)
	}
	if a.TotalProviders != 3 || a.AvailableProviders != 2 {
		t.Fatalf("unexpected provider counts: %+v", a)
	}
	if a.TotalBookings != 2 || a.CompletedBookings != 1 || a.CancelledBookings != 1 {
		t.Fatalf("unexpected booking counts: %+v", a)
	}
	if a.ServiceBreakdown["Plumbing"] != 2 || a.ServiceBreakdown["Electric"] != 1 {
		t.Fatalf("unexpected service breakdown: %+v", a.ServiceBreakdown)
	}
}
