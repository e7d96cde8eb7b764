package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-ticket-booking/internal/domain"
)

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

const showtimeBaseQuery = `
	SELECT
		sh.id,
		m.id,
		m.title,
		sc.id,
		sc.label,
		t.id,
		t.name,
		sh.start_time
	FROM showtimes sh
	JOIN movies m ON sh.movie_id = m.id
	JOIN screens sc ON sh.screen_id = sc.id
	JOIN theaters t ON sc.theater_id = t.id
`

func (p *PostgresShowtimeRepository) GetByID(ctx context.Context, id int) (*domain.Showtime, error) {
	query := showtimeBaseQuery + `
	WHERE sh.id = $1
	`

	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.MovieTitle,
		&showtime.ScreenID,
		&showtime.ScreenLabel,
		&showtime.TheaterID,
		&showtime.TheaterName,
		&showtime.StartTime,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) GetByMovie(ctx context.Context, movieID int) ([]domain.Showtime, error) {
	query := showtimeBaseQuery + `
	WHERE sh.movie_id = $1
	ORDER BY sh.start_time
	`

	return p.queryShowtimes(ctx, query, movieID)
}

func (p *PostgresShowtimeRepository) GetByTheater(ctx context.Context, theaterID int) ([]domain.Showtime, error) {
	query := showtimeBaseQuery + `
	WHERE t.id = $1
	ORDER BY sh.start_time
	`

	return p.queryShowtimes(ctx, query, theaterID)
}

func (p *PostgresShowtimeRepository) queryShowtimes(ctx context.Context, query string, arg any) ([]domain.Showtime, error) {
	rows, err := p.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := make([]domain.Showtime, 0)

	for rows.Next() {
		var showtime domain.Showtime

		err = rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.MovieTitle,
			&showtime.ScreenID,
			&showtime.ScreenLabel,
			&showtime.TheaterID,
			&showtime.TheaterName,
			&showtime.StartTime,
		)

		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}
