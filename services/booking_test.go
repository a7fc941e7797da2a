package services

import (
	"testing"
	"time"

	"github.com/fixnear/fixnear-backend/models"
)

func TestBookingCreateSnapshotsFields(t *testing.T) {
	db := setupTestDB(t)
	providers := NewProviderService(db)
	bookings := NewBookingService(db)

	user := seedUser(t, db, "Alice", "alice@example.com")
	provider := seedProvider(t, db, models.Provider{
		Name: "Joe", Service: "Plumbing", Location: "NYC", Price: 120,
	})

	date := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	booking, err := bookings.Create(user, provider, "leaky sink", &date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.Status != models.StatusPending {
		t.Fatalf("new booking should be PENDING, got %q", booking.Status)
	}
	if booking.UserName != "Alice" || booking.ProviderName != "Joe" {
		t.Fatalf("expected snapshotted names, got %q/%q", booking.UserName, booking.ProviderName)
	}
	if booking.Service != "Plumbing" || booking.Location != "NYC" || booking.Price != 120 {
		t.Fatalf("expected snapshotted provider fields, got %+v", booking)
	}

	// Renaming the provider must not touch the existing booking
	if _, err := providers.Update(provider.ID, &models.Provider{
		Name: "Joe's Plumbing Co", Service: "Plumbing", Location: "NYC", Price: 150,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := bookings.GetByID(booking.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reloaded.ProviderName != "Joe" || reloaded.Price != 120 {
		t.Fatalf("booking snapshot must not be refreshed, got %q price %v",
			reloaded.ProviderName, reloaded.Price)
	}
}

func TestBookingUpdateStatusNormalizes(t *testing.T) {
	db := setupTestDB(t)
	bookings := NewBookingService(db)

	user := seedUser(t, db, "Alice", "alice@example.com")
	provider := seedProvider(t, db, models.Provider{Name: "Joe", Service: "Plumbing"})
	booking, err := bookings.Create(user, provider, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := bookings.UpdateStatus(booking.ID, "  accept ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.StatusAccepted {
		t.Fatalf("expected ACCEPTED, got %q", updated.Status)
	}

	// Unknown status passes through upper-cased
	updated, err = bookings.UpdateStatus(booking.ID, "foo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != "FOO" {
		t.Fatalf("expected pass-through FOO, got %q", updated.Status)
	}

	// Empty status is rejected before anything is written
	if _, err := bookings.UpdateStatus(booking.ID, "   "); err == nil {
		t.Fatal("expected error for empty status")
	}
	reloaded, _ := bookings.GetByID(booking.ID)
	if reloaded.Status != "FOO" {
		t.Fatalf("rejected update must not write, got %q", reloaded.Status)
	}
}

func TestBookingSetStatusVerbatim(t *testing.T) {
	db := setupTestDB(t)
	bookings := NewBookingService(db)

	user := seedUser(t, db, "Alice", "alice@example.com")
	provider := seedProvider(t, db, models.Provider{Name: "Joe", Service: "Plumbing"})
	booking, err := bookings.Create(user, provider, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := bookings.SetStatus(booking.ID, "accept")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != "accept" {
		t.Fatalf("admin path writes verbatim, got %q", updated.Status)
	}
}

func TestBookingReviewForcesCompleted(t *testing.T) {
	db := setupTestDB(t)
	bookings := NewBookingService(db)

	user := seedUser(t, db, "Alice", "alice@example.com")
	provider := seedProvider(t, db, models.Provider{Name: "Joe", Service: "Plumbing"})
	booking, err := bookings.Create(user, provider, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reviewed, err := bookings.AddReview(booking.ID, 4, "good work")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reviewed.Status != models.StatusCompleted {
		t.Fatalf("review must force COMPLETED, got %q", reviewed.Status)
	}
	if reviewed.Rating != 4 || reviewed.Review != "good work" {
		t.Fatalf("expected rating/review persisted, got %v %q", reviewed.Rating, reviewed.Review)
	}

	// Idempotent when repeated with the same values
	again, err := bookings.AddReview(booking.ID, 4, "good work")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Status != models.StatusCompleted || again.Rating != 4 || again.Review != "good work" {
		t.Fatalf("repeat review changed the record: %+v", again)
	}

	// Review also completes a cancelled booking
	if _, err := bookings.Cancel(booking.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reviewed, err = bookings.AddReview(booking.ID, 5, "even better")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reviewed.Status != models.StatusCompleted {
		t.Fatalf("review must complete regardless of prior state, got %q", reviewed.Status)
	}
}

func TestBookingCancelKeepsRecord(t *testing.T) {
	db := setupTestDB(t)
	bookings := NewBookingService(db)

	user := seedUser(t, db, "Alice", "alice@example.com")
	provider := seedProvider(t, db, models.Provider{Name: "Joe", Service: "Plumbing"})
	booking, err := bookings.Create(user, provider, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cancelled, err := bookings.Cancel(booking.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Fatalf("expected CANCELLED, got %q", cancelled.Status)
	}

	all, err := bookings.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("cancel must not delete the record, have %d bookings", len(all))
	}
}

func TestBookingQueriesByForeignKey(t *testing.T) {
	db := setupTestDB(t)
	bookings := NewBookingService(db)

	alice := seedUser(t, db, "Alice", "alice@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")
	joe := seedProvider(t, db, models.Provider{Name: "Joe", Service: "Plumbing"})
	max := seedProvider(t, db, models.Provider{Name: "Max", Service: "Electric"})

	mustCreate := func(u *models.User, p *models.Provider) *models.Booking {
		b, err := bookings.Create(u, p, "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return b
	}
	mustCreate(alice, joe)
	mustCreate(alice, max)
	b3 := mustCreate(bob, joe)

	byAlice, err := bookings.ByUser(alice.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byAlice) != 2 {
		t.Fatalf("expected 2 bookings for alice, got %d", len(byAlice))
	}

	byJoe, err := bookings.ByProvider(joe.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byJoe) != 2 {
		t.Fatalf("expected 2 bookings for joe, got %d", len(byJoe))
	}

	if _, err := bookings.SetStatus(b3.ID, models.StatusAccepted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	accepted, err := bookings.ByStatus(models.StatusAccepted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accepted) != 1 || accepted[0].ID != b3.ID {
		t.Fatalf("expected only b3 accepted, got %+v", accepted)
	}
}

func TestBookingExpireOverdue(t *testing.T) {
	db := setupTestDB(t)
	bookings := NewBookingService(db)

	user := seedUser(t, db, "Alice", "alice@example.com")
	provider := seedProvider(t, db, models.Provider{Name: "Joe", Service: "Plumbing"})

	past := time.Now().Add(-2 * time.Hour)
	future := time.Now().Add(2 * time.Hour)

	overdue, err := bookings.Create(user, provider, "", &past)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	upcoming, err := bookings.Create(user, provider, "", &future)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	undated, err := bookings.Create(user, provider, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cancelled, err := bookings.ExpireOverdue(time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cancelled) != 1 || cancelled[0].ID != overdue.ID {
		t.Fatalf("expected only the overdue booking cancelled, got %+v", cancelled)
	}

	for _, id := range []uint{upcoming.ID, undated.ID} {
		b, err := bookings.GetByID(id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != models.StatusPending {
			t.Fatalf("booking %d should stay PENDING, got %q", id, b.Status)
		}
	}
}
