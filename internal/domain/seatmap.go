package domain

import "strconv"

// Every showtime shares the same fixed seat grid: rows A..Z, seat
// numbers 0..20 within each row. A seat id is the row letter followed
// by the seat number, e.g. "A0" or "K17".
const (
	FirstRow byte = 'A'
	LastRow  byte = 'Z'

	FirstSeatNumber = 0
	LastSeatNumber  = 20

	TotalRows   = int(LastRow-FirstRow) + 1
	SeatsPerRow = LastSeatNumber - FirstSeatNumber + 1
	TotalSeats  = TotalRows * SeatsPerRow
)

// IsValidSeatID reports whether seatID names a seat in the grid. The
// check is purely structural: uppercase row letter in range, numeric
// suffix in range, no leading zeros, no extra characters.
func IsValidSeatID(seatID string) bool {
	if len(seatID) < 2 || len(seatID) > 3 {
		return false
	}

	row := seatID[0]
	if row < FirstRow || row > LastRow {
		return false
	}

	num := seatID[1:]
	if len(num) > 1 && num[0] == '0' {
		return false
	}

	for i := 0; i < len(num); i++ {
		if num[i] < '0' || num[i] > '9' {
			return false
		}
	}

	n, err := strconv.Atoi(num)
	if err != nil {
		return false
	}

	return n >= FirstSeatNumber && n <= LastSeatNumber
}

// AllSeatIDs returns every seat id of the grid in row-major order:
// rows ascending, seat numbers ascending within each row. The result
// always has TotalSeats entries.
func AllSeatIDs() []string {
	seats := make([]string, 0, TotalSeats)

	for row := FirstRow; row <= LastRow; row++ {
		for num := FirstSeatNumber; num <= LastSeatNumber; num++ {
			seats = append(seats, string(row)+strconv.Itoa(num))
		}
	}

	return seats
}
