// Package booking implements the seat-reservation engine: request
// validation, conflict detection and the atomic commit/release paths.
// The service keeps no mutable state of its own; all mutual exclusion
// is delegated to the store, so a single Service value is safe for use
// from any number of request-handling goroutines.
package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/metinatakli/movie-ticket-booking/internal/domain"
)

type Service struct {
	showtimeRepo    domain.ShowtimeRepository
	reservationRepo domain.ReservationRepository
}

func NewService(showtimeRepo domain.ShowtimeRepository, reservationRepo domain.ReservationRepository) *Service {
	return &Service{
		showtimeRepo:    showtimeRepo,
		reservationRepo: reservationRepo,
	}
}

// CreateReservation books the given seats on the given showtime as one
// all-or-nothing unit. Validation runs in a fixed order: showtime
// existence, seat id structure, duplicates, then the conflict-checked
// commit. A request with even one conflicting seat reserves nothing.
func (s *Service) CreateReservation(ctx context.Context, showtimeID int, seatIDs []string) (*domain.ReservationDetail, error) {
	showtime, err := s.showtimeRepo.GetByID(ctx, showtimeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrShowtimeNotFound
		}

		return nil, fmt.Errorf("resolving showtime %d: %w", showtimeID, err)
	}

	var invalid []string
	for _, seatID := range seatIDs {
		if !domain.IsValidSeatID(seatID) {
			invalid = append(invalid, seatID)
		}
	}
	if len(invalid) > 0 {
		return nil, &domain.InvalidSeatsError{SeatIDs: invalid}
	}

	seen := make(map[string]struct{}, len(seatIDs))
	for _, seatID := range seatIDs {
		if _, ok := seen[seatID]; ok {
			return nil, &domain.InvalidSeatsError{Duplicate: true}
		}
		seen[seatID] = struct{}{}
	}

	reservation := &domain.Reservation{
		ConfirmationID: uuid.New(),
		ShowtimeID:     showtime.ID,
		SeatIDs:        seatIDs,
	}

	err = s.reservationRepo.Create(ctx, reservation)
	if err != nil {
		var unavailableErr *domain.SeatsUnavailableError
		if errors.As(err, &unavailableErr) {
			return nil, unavailableErr
		}

		return nil, fmt.Errorf("creating reservation: %w", err)
	}

	booked := make([]string, len(reservation.SeatIDs))
	copy(booked, reservation.SeatIDs)
	sort.Strings(booked)

	return &domain.ReservationDetail{
		ConfirmationID: reservation.ConfirmationID,
		ShowtimeID:     showtime.ID,
		MovieTitle:     showtime.MovieTitle,
		TheaterName:    showtime.TheaterName,
		ScreenLabel:    showtime.ScreenLabel,
		ShowStartTime:  showtime.StartTime,
		SeatIDs:        booked,
		CreatedAt:      reservation.CreatedAt,
	}, nil
}

// CancelReservation releases every seat of the reservation in one
// atomic step. Cancelling an id that never existed, or one that was
// already cancelled, returns ErrReservationNotFound.
func (s *Service) CancelReservation(ctx context.Context, confirmationID uuid.UUID) error {
	err := s.reservationRepo.DeleteByConfirmationID(ctx, confirmationID)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return err
		}

		return fmt.Errorf("cancelling reservation %s: %w", confirmationID, err)
	}

	return nil
}

// GetAvailableSeats diffs the seat grid against the seats currently
// held for the showtime, preserving row-major order.
func (s *Service) GetAvailableSeats(ctx context.Context, showtimeID int) (*domain.ShowtimeAvailability, error) {
	_, err := s.showtimeRepo.GetByID(ctx, showtimeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrShowtimeNotFound
		}

		return nil, fmt.Errorf("resolving showtime %d: %w", showtimeID, err)
	}

	takenSeats, err := s.reservationRepo.GetSeatIDsByShowtime(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("listing reserved seats: %w", err)
	}

	taken := make(map[string]struct{}, len(takenSeats))
	for _, seatID := range takenSeats {
		taken[seatID] = struct{}{}
	}

	available := make([]string, 0, domain.TotalSeats-len(taken))
	for _, seatID := range domain.AllSeatIDs() {
		if _, ok := taken[seatID]; !ok {
			available = append(available, seatID)
		}
	}

	return &domain.ShowtimeAvailability{
		ShowtimeID:     showtimeID,
		TotalSeats:     domain.TotalSeats,
		AvailableCount: len(available),
		AvailableSeats: available,
	}, nil
}
