package domain

import "context"

type Movie struct {
	ID    int
	Title string
}

type MovieRepository interface {
	// GetAll lists movies, optionally filtered by a case-insensitive
	// title search term. An empty term matches everything.
	GetAll(ctx context.Context, term string) ([]Movie, error)
}
