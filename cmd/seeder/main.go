package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"stayfinder/internal/adapters/observability"
	"stayfinder/internal/shared"
	mysqlrepo "stayfinder/internal/storage/mysql"
)

// Seeds the sample Turkish catalog. Safe to re-run: listings are upserted,
// but each run mints fresh ids, so wipe the table first when re-seeding.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.SeedWorkers).
		Int("listings", len(shared.SeedListings)).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, l := range shared.SeedListings {
		l := l
		if l.ID == "" {
			l.ID = uuid.NewString()
		}

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.UpsertListing(ctx, l); err != nil {
				log.Warn().Str("title", l.Title).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("title", l.Title).Str("city", l.City).Msg("seed ok")
		}()
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
