package main

import (
	"context"
	"database/sql"
	"net/http"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "stayfinder/internal/adapters/http_server"
	"stayfinder/internal/adapters/nlu"
	"stayfinder/internal/adapters/observability"
	redisad "stayfinder/internal/adapters/redis"
	"stayfinder/internal/adapters/websearch"
	"stayfinder/internal/app"
	"stayfinder/internal/domain"
	"stayfinder/internal/shared"
	mysqlrepo "stayfinder/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// the catalog is an immutable startup snapshot; restart to refresh
	repo := mysqlrepo.New(db)
	listings, err := repo.LoadListings(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("loading listings failed")
	}
	catalog := app.NewCatalog(listings)
	log.Info().Int("listings", catalog.Len()).Msg("catalog loaded")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("redis ping failed")
	}

	nluClient, err := nlu.New(cfg.NLUBase, cfg.NLUKey, cfg.NLUModel, cfg.NLURPS, cfg.ExternalTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize NLU client")
	}
	interp := app.NewInterpreter(nluClient, cache, cfg.CacheTTL)

	// the web searcher is optional: without a key the pipeline stays local-only
	var web domain.WebSearcher
	if cfg.WebSearchKey != "" {
		c, err := websearch.New(cfg.WebSearchBase, cfg.WebSearchKey, cfg.WebSearchMaxResults, cfg.WebSearchRPS, cfg.ExternalTimeout)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize web search client")
		}
		web = c
	} else {
		log.Warn().Msg("web fallback disabled: no WEBSEARCH_API_KEY")
	}
	search := app.NewSearchService(catalog, web, cfg.FallbackMinResults, cfg.MaxResults)

	// http
	srv := server.New(strings.Split(cfg.CORSOrigins, ","))
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Interp: interp, Search: search, Catalog: catalog})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
