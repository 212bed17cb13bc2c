package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"time"

	"frontdesk/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  Connect(cfg, "read", cfg.DB.Postgres.Read),
		Write: Connect(cfg, "write", cfg.DB.Postgres.Write),
	}
}

// DatabaseName applies the configured prefix, e.g. a per-branch database.
func DatabaseName(cfg *config.Config, baseName string) string {
	return cfg.DB.Postgres.Prefix + baseName
}

// DSN builds a postgres:// url. extra is appended to the query string.
func DSN(cfg *config.Config, endpoint config.PostgresEndpoint, extra url.Values) string {
	query := url.Values{}
	query.Set("sslmode", endpoint.SSLMode)

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	for key, values := range extra {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + DatabaseName(cfg, endpoint.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Connect retries until the database answers. When it never does, the returned
// handle is opened lazily: queries fail with a connection error instead of
// panicking, so callers can fall back to their seed data.
func Connect(cfg *config.Config, name string, endpoint config.PostgresEndpoint) *sqlx.DB {
	postgres := cfg.DB.Postgres
	descriptor := DSN(cfg, endpoint, nil)

	logger := log.With().
		Str("name", name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", DatabaseName(cfg, endpoint.Name)).
		Logger()

	for retry := range max(postgres.MaxRetry, 1) {
		sqlDB, err := sqlx.Connect(driverName, descriptor)
		if err == nil {
			logger.Info().Msg("Connected to database")

			return configure(sqlDB, cfg)
		}

		logger.Error().Err(err).Int("attempt", retry+1).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(postgres.RetryWaitTime) * time.Second)
	}

	logger.Warn().Msg("Database unreachable, continuing with a lazy connection")

	return configure(sqlx.MustOpen(driverName, descriptor), cfg)
}

func configure(db *sqlx.DB, cfg *config.Config) *sqlx.DB {
	db.SetMaxIdleConns(cfg.DB.Postgres.MaxIdleConns)
	db.SetMaxOpenConns(cfg.DB.Postgres.MaxOpenConns)

	return db
}
