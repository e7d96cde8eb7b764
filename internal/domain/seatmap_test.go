package domain

import (
	"strconv"
	"testing"
)

func TestIsValidSeatID(t *testing.T) {
	tests := []struct {
		seatID string
		want   bool
	}{
		{"A0", true},
		{"A5", true},
		{"A20", true},
		{"K9", true},
		{"Z0", true},
		{"Z20", true},

		{"", false},
		{"A", false},
		{"5", false},
		{"99", false},
		{"A99", false},
		{"A21", false},
		{"ZZ1", false},
		{"a5", false},
		{"A-1", false},
		{"A05", false},
		{"A00", false},
		{" A5", false},
		{"A5 ", false},
		{"A5B", false},
		{"@5", false},
		{"[0", false},
	}

	for _, tt := range tests {
		t.Run(tt.seatID, func(t *testing.T) {
			if got := IsValidSeatID(tt.seatID); got != tt.want {
				t.Errorf("IsValidSeatID(%q) = %v, want %v", tt.seatID, got, tt.want)
			}
		})
	}
}

func TestAllSeatIDs(t *testing.T) {
	seats := AllSeatIDs()

	if len(seats) != TotalSeats {
		t.Fatalf("AllSeatIDs() returned %d seats, want %d", len(seats), TotalSeats)
	}

	if seats[0] != "A0" {
		t.Errorf("first seat = %q, want A0", seats[0])
	}

	if seats[len(seats)-1] != "Z20" {
		t.Errorf("last seat = %q, want Z20", seats[len(seats)-1])
	}

	// Row-major order: rows ascending, numbers ascending within a row.
	for i, seatID := range seats {
		wantRow := FirstRow + byte(i/SeatsPerRow)
		wantNum := i % SeatsPerRow

		if seatID != string(wantRow)+strconv.Itoa(wantNum) {
			t.Fatalf("seat at index %d = %q, want %s%d", i, seatID, string(wantRow), wantNum)
		}

		if !IsValidSeatID(seatID) {
			t.Fatalf("AllSeatIDs() produced invalid seat id %q", seatID)
		}
	}

	// The enumeration is deterministic.
	again := AllSeatIDs()
	for i := range seats {
		if seats[i] != again[i] {
			t.Fatalf("AllSeatIDs() is not deterministic at index %d", i)
		}
	}
}
