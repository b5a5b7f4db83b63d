package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	CORSOrigins string

	MySQLDSN  string
	RedisAddr string
	RedisDB   int
	RedisPass string

	NLUBase  string
	NLUKey   string
	NLUModel string
	NLURPS   int

	WebSearchBase       string
	WebSearchKey        string
	WebSearchMaxResults int
	WebSearchRPS        int

	FallbackMinResults int
	MaxResults         int
	ExternalTimeout    time.Duration
	CacheTTL           time.Duration
	SeedWorkers        int
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		CORSOrigins: env("CORS_ALLOWED_ORIGINS", "*"),

		MySQLDSN:  env("MYSQL_DSN", "root:root@tcp(localhost:3306)/stayfinder?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr: env("REDIS_ADDR", "localhost:6379"),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),

		NLUBase:  env("NLU_BASE_URL", "https://api.openai.com/v1"),
		NLUKey:   env("NLU_API_KEY", ""),
		NLUModel: env("NLU_MODEL", "gpt-4o-mini"),
		NLURPS:   atoi("NLU_RPS", 5),

		WebSearchBase:       env("WEBSEARCH_BASE_URL", "https://api.tavily.com"),
		WebSearchKey:        env("WEBSEARCH_API_KEY", ""),
		WebSearchMaxResults: atoi("WEBSEARCH_MAX_RESULTS", 15),
		WebSearchRPS:        atoi("WEBSEARCH_RPS", 5),

		FallbackMinResults: atoi("FALLBACK_MIN_RESULTS", 3),
		MaxResults:         atoi("MAX_RESULTS", 20),
		ExternalTimeout:    time.Duration(atoi("EXTERNAL_TIMEOUT_SECONDS", 20)) * time.Second,
		CacheTTL:           time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SeedWorkers:        atoi("SEED_WORKERS", 8),
	}
	if c.NLUKey == "" {
		log.Warn().Msg("NLU_API_KEY is empty")
	}
	if c.WebSearchKey == "" {
		log.Warn().Msg("WEBSEARCH_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
