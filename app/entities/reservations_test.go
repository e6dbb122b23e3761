package entities

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlapsBoundary(t *testing.T) {
	// Existing stay [Jan 10, Jan 12); checkout day is free for the next guest.
	aIn, aOut := date(2025, 1, 10), date(2025, 1, 12)

	if Overlaps(aIn, aOut, date(2025, 1, 12), date(2025, 1, 14)) {
		t.Fatalf("back-to-back ranges must not overlap (same-day turnover)")
	}
	if !Overlaps(aIn, aOut, date(2025, 1, 11), date(2025, 1, 13)) {
		t.Fatalf("expected [11,13) to overlap [10,12)")
	}
	if Overlaps(aIn, aOut, date(2025, 1, 8), date(2025, 1, 10)) {
		t.Fatalf("range ending on check-in day must not overlap")
	}
	if !Overlaps(aIn, aOut, date(2025, 1, 9), date(2025, 1, 15)) {
		t.Fatalf("expected enclosing range to overlap")
	}
}

func TestNights(t *testing.T) {
	r := Reservation{CheckIn: date(2025, 2, 1), CheckOut: date(2025, 2, 2)}
	if got := r.Nights(); got != 1 {
		t.Fatalf("expected 1 night, got %d", got)
	}

	r.CheckOut = date(2025, 2, 4)
	if got := r.Nights(); got != 3 {
		t.Fatalf("expected 3 nights, got %d", got)
	}

	// Defensive floor when both dates coincide.
	r.CheckOut = r.CheckIn
	if got := r.Nights(); got != 1 {
		t.Fatalf("expected floor of 1 night, got %d", got)
	}
}

func TestInfoFormatsDates(t *testing.T) {
	r := Reservation{
		ID:          7,
		Room:        3,
		GuestName:   "Ana",
		CheckIn:     date(2025, 2, 1),
		CheckOut:    date(2025, 2, 3),
		DailyRate:   100,
		TotalAmount: 200,
	}
	info := r.Info()
	if info.CheckIn != "2025-02-01" || info.CheckOut != "2025-02-03" {
		t.Fatalf("unexpected date formatting: %q / %q", info.CheckIn, info.CheckOut)
	}
	if info.ID != 7 || info.Room != 3 || info.TotalAmount != 200 {
		t.Fatalf("unexpected info: %+v", info)
	}
}
