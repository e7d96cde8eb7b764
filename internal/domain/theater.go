package domain

import "context"

type Theater struct {
	ID      int
	Name    string
	Screens []Screen
}

type Screen struct {
	ID        int
	TheaterID int
	Label     string
}

type TheaterRepository interface {
	GetAll(ctx context.Context) ([]Theater, error)
}
