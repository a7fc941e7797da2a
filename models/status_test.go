package models

import "testing"

func TestNormalizeStatus_Synonyms(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"accept", StatusAccepted},
		{"Accepted", StatusAccepted},
		{"  REJECT ", StatusRejected},
		{"rejected", StatusRejected},
		{"complete", StatusCompleted},
		{"COMPLETED", StatusCompleted},
		{"cancel", StatusCancelled},
		{"cancelled", StatusCancelled},
		{"Canceled", StatusCancelled},
		{"pending", StatusPending},
		{"REQUESTED", StatusPending},
		{"confirmed", StatusConfirmed},
	}

	for _, tc := range cases {
		got, err := NormalizeStatus(tc.raw)
		if err != nil {
			t.Fatalf("NormalizeStatus(%q): unexpected error %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeStatus_UnknownPassesThrough(t *testing.T) {
	got, err := NormalizeStatus("FOO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "FOO" {
		t.Fatalf("expected FOO unchanged, got %q", got)
	}

	got, err = NormalizeStatus("  in progress ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "IN PROGRESS" {
		t.Fatalf("expected upper-cased pass-through, got %q", got)
	}
}

func TestNormalizeStatus_EmptyRejected(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t"} {
		if _, err := NormalizeStatus(raw); err == nil {
			t.Fatalf("NormalizeStatus(%q): expected error, got nil", raw)
		}
	}
}
