package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-ticket-booking/internal/domain"
)

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

func (p *PostgresTheaterRepository) GetAll(ctx context.Context) ([]domain.Theater, error) {
	query := `
		SELECT t.id, t.name, s.id, s.label
		FROM theaters t
		LEFT JOIN screens s ON s.theater_id = t.id
		ORDER BY t.name, s.label
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theaters := make([]domain.Theater, 0)
	indexByID := make(map[int]int)

	for rows.Next() {
		var (
			theaterID   int
			theaterName string
			screenID    *int
			screenLabel *string
		)

		err = rows.Scan(&theaterID, &theaterName, &screenID, &screenLabel)
		if err != nil {
			return nil, err
		}

		idx, ok := indexByID[theaterID]
		if !ok {
			theaters = append(theaters, domain.Theater{
				ID:      theaterID,
				Name:    theaterName,
				Screens: make([]domain.Screen, 0),
			})
			idx = len(theaters) - 1
			indexByID[theaterID] = idx
		}

		if screenID != nil {
			theaters[idx].Screens = append(theaters[idx].Screens, domain.Screen{
				ID:        *screenID,
				TheaterID: theaterID,
				Label:     *screenLabel,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theaters, nil
}
