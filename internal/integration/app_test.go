package integration_test

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-ticket-booking/internal/app"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App         *app.Application
	DB          *pgxpool.Pool
	RedisClient *redis.Client
}

// newTestApp boots the real application against the containers,
// letting it run its own migrations, and opens side channels to the
// database and the cache for seeding and assertions.
func newTestApp(cfg app.Config) (*TestApp, error) {
	cfg.DB.Migrate = true

	application, err := app.NewApplication(cfg)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		application.Close()
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.URL})

	return &TestApp{
		App:         application,
		DB:          db,
		RedisClient: redisClient,
	}, nil
}

func (a *TestApp) Close() {
	a.DB.Close()
	a.RedisClient.Close()
	a.App.Close()
}
