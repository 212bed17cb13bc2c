package postgres_test

import (
	"net/url"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/postgres"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"

	endpoint := config.PostgresEndpoint{
		Host:     "db.internal",
		Port:     "5432",
		Username: "desk",
		Password: "p@ss:word",
		Name:     "frontdesk",
		Timezone: "Asia/Kolkata",
		SSLMode:  "disable",
	}

	dsn := postgres.DSN(cfg, endpoint, url.Values{"x-migrations-table": {"schema_migrations"}})

	parsed, err := url.Parse(dsn)
	if !assert.NoError(t, err) {
		return
	}

	password, _ := parsed.User.Password()

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "db.internal:5432", parsed.Host)
	assert.Equal(t, "/test_frontdesk", parsed.Path)
	assert.Equal(t, "p@ss:word", password)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "Asia/Kolkata", parsed.Query().Get("timezone"))
	assert.Equal(t, "schema_migrations", parsed.Query().Get("x-migrations-table"))
}

func TestDatabaseName(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, "frontdesk", postgres.DatabaseName(cfg, "frontdesk"))

	cfg.DB.Postgres.Prefix = "pr42_"
	assert.Equal(t, "pr42_frontdesk", postgres.DatabaseName(cfg, "frontdesk"))
}
