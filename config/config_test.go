package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load()
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 300, cfg.Cache.TTL)
	assert.Equal(t, "disable", cfg.DB.Postgres.Write.SSLMode)
	assert.Equal(t, "5432", cfg.DB.Postgres.Write.Port)
	assert.Equal(t, "6379", cfg.Cache.Redis.Primary.Port)
	assert.Equal(t, "frontdesk.write-failure", cfg.Kafka.Topic.WriteFailure)
	assert.Equal(t, "auto", cfg.External.S3.Region)
	assert.ErrorIs(t, cfg.Validate(), errMissingSecret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_POSTGRES_WRITE_HOST", "db.internal")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := load()
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.DB.Postgres.Write.Host)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		access  string
		refresh string
		wantErr bool
	}{
		{name: "both set", access: "a", refresh: "b"},
		{name: "missing access", refresh: "b", wantErr: true},
		{name: "missing refresh", access: "a", wantErr: true},
		{name: "shared secret", access: "same", refresh: "same", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{}
			cfg.JWT.AccessSecret = tt.access
			cfg.JWT.RefreshSecret = tt.refresh

			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, errMissingSecret)

				return
			}

			assert.NoError(t, err)
		})
	}
}
