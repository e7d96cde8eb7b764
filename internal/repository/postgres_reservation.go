package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-ticket-booking/internal/domain"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

// Create inserts the reservation and its reserved seats in a single
// transaction. The availability check and the insert form one atomic
// unit: the pre-check locks the showtime's existing reserved-seat rows,
// and the UNIQUE (showtime_id, seat_id) index catches the
// insert-insert races the row locks cannot see. Either way a losing
// request writes nothing and observes a *SeatsUnavailableError.
func (p *PostgresReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			SELECT seat_id
			FROM reserved_seats
			WHERE showtime_id = $1
			FOR UPDATE
		`

		rows, err := tx.Query(ctx, query, reservation.ShowtimeID)
		if err != nil {
			return err
		}

		takenSeats := make(map[string]struct{})

		for rows.Next() {
			var seatID string

			if err := rows.Scan(&seatID); err != nil {
				rows.Close()
				return err
			}

			takenSeats[seatID] = struct{}{}
		}
		rows.Close()

		if err := rows.Err(); err != nil {
			return err
		}

		var conflicts []string
		for _, seatID := range reservation.SeatIDs {
			if _, ok := takenSeats[seatID]; ok {
				conflicts = append(conflicts, seatID)
			}
		}
		if len(conflicts) > 0 {
			return &domain.SeatsUnavailableError{SeatIDs: conflicts}
		}

		query = `
			INSERT INTO reservations (confirmation_id, showtime_id)
			VALUES ($1, $2)
			RETURNING id, created_at
		`

		err = tx.QueryRow(ctx, query, reservation.ConfirmationID, reservation.ShowtimeID).
			Scan(&reservation.ID, &reservation.CreatedAt)
		if err != nil {
			return err
		}

		seatRows := make([][]any, 0, len(reservation.SeatIDs))
		for _, seatID := range reservation.SeatIDs {
			seatRows = append(seatRows, []any{
				reservation.ID,
				reservation.ShowtimeID,
				seatID,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"reserved_seats"},
			[]string{"reservation_id", "showtime_id", "seat_id"},
			pgx.CopyFromRows(seatRows),
		)

		return err
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// A concurrent transaction won the seat between our check
			// and our commit; the aborted insert cannot name the seat.
			return &domain.SeatsUnavailableError{}
		}

		return err
	}

	return nil
}

// DeleteByConfirmationID removes the reservation; its reserved seats go
// with it through the ON DELETE CASCADE on reserved_seats.
func (p *PostgresReservationRepository) DeleteByConfirmationID(ctx context.Context, confirmationID uuid.UUID) error {
	query := `
		DELETE FROM reservations
		WHERE confirmation_id = $1
	`

	tag, err := p.db.Exec(ctx, query, confirmationID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (p *PostgresReservationRepository) GetSeatIDsByShowtime(ctx context.Context, showtimeID int) ([]string, error) {
	query := `
		SELECT seat_id
		FROM reserved_seats
		WHERE showtime_id = $1
	`

	rows, err := p.db.Query(ctx, query, showtimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seatIDs := make([]string, 0)

	for rows.Next() {
		var seatID string

		if err := rows.Scan(&seatID); err != nil {
			return nil, err
		}

		seatIDs = append(seatIDs, seatID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seatIDs, nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
