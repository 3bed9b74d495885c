package shared

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"prod"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	MetricsAddr string `env:"METRICS_ADDR"`

	DataSource   string `env:"DATA_SOURCE" envDefault:"csv"` // csv|sql
	DataPath     string `env:"DATA_PATH" envDefault:"final_all.csv"`
	DataEncoding string `env:"DATA_ENCODING" envDefault:"euc-kr"`
	SQLDriver    string `env:"SQL_DRIVER" envDefault:"sqlite"` // mysql|sqlite
	SQLDSN       string `env:"SQL_DSN"`
	SQLTable     string `env:"SQL_TABLE" envDefault:"hotel_sentiment"`
	FetchRPS     int    `env:"FETCH_RPS" envDefault:"5"`

	RegionOrder     string `env:"REGION_ORDER" envDefault:"source"`   // source|sorted
	MapStrategy     string `env:"MAP_STRATEGY" envDefault:"record"`   // record|centroid
	DuplicatePolicy string `env:"DUPLICATE_POLICY" envDefault:"first"` // first

	RedisAddr       string `env:"REDIS_ADDR"`
	RedisPass       string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	CacheTTLSeconds int    `env:"CACHE_TTL_SECONDS" envDefault:"900"`

	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"40"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	WarmWorkers    int           `env:"WARM_WORKERS" envDefault:"4"`
}

func (c Config) CacheTTL() time.Duration { return time.Duration(c.CacheTTLSeconds) * time.Second }

// Parse reads the environment and validates enumerated settings.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch c.DataSource {
	case "csv":
		if c.DataPath == "" {
			return Config{}, fmt.Errorf("DATA_PATH is required for csv source")
		}
	case "sql":
		if c.SQLDSN == "" {
			return Config{}, fmt.Errorf("SQL_DSN is required for sql source")
		}
		if c.SQLDriver != "mysql" && c.SQLDriver != "sqlite" {
			return Config{}, fmt.Errorf("unsupported SQL_DRIVER %q", c.SQLDriver)
		}
	default:
		return Config{}, fmt.Errorf("unsupported DATA_SOURCE %q", c.DataSource)
	}
	if c.WarmWorkers <= 0 {
		c.WarmWorkers = 1
	}
	return c, nil
}

// Load is Parse for main packages: invalid configuration is fatal.
func Load() Config {
	c, err := Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if c.RedisAddr == "" {
		log.Warn().Msg("REDIS_ADDR is empty; view cache disabled")
	}
	return c
}
