package models

import (
	"errors"
	"strings"
)

const (
	StatusPending   = "PENDING"
	StatusAccepted  = "ACCEPTED"
	StatusRejected  = "REJECTED"
	StatusConfirmed = "CONFIRMED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// ErrEmptyStatus is returned when a status update carries no value.
var ErrEmptyStatus = errors.New("status is required")

// NormalizeStatus maps a free-form status string to its canonical tag.
// Input is trimmed and upper-cased, common synonyms collapse to one form,
// and anything unrecognized passes through upper-cased rather than being
// rejected.
func NormalizeStatus(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", ErrEmptyStatus
	}

	switch s {
	case "ACCEPT", "ACCEPTED":
		return StatusAccepted, nil
	case "REJECT", "REJECTED":
		return StatusRejected, nil
	case "COMPLETE", "COMPLETED":
		return StatusCompleted, nil
	case "CANCEL", "CANCELLED", "CANCELED":
		return StatusCancelled, nil
	case "PENDING", "REQUESTED":
		return StatusPending, nil
	}
	return s, nil
}
