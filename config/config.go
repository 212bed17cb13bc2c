package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"frontdesk"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS" default:"120"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
			DialTimeoutSeconds int `envconfig:"DIAL_TIMEOUT_SECONDS" default:"5"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN" default:"60"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"10080"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int              `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime  int              `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string           `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool             `envconfig:"AUTO_MIGRATE"`
			Prefix         string           `envconfig:"PREFIX"`
			MaxIdleConns   int              `envconfig:"MAX_IDLE_CONNS" default:"10"`
			MaxOpenConns   int              `envconfig:"MAX_OPEN_CONNS" default:"10"`
			Read           PostgresEndpoint `envconfig:"READ"`
			Write          PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topic struct {
			WriteFailure string `envconfig:"WRITE_FAILURE" default:"frontdesk.write-failure"`
		} `envconfig:"TOPIC"`
	} `envconfig:"KAFKA"`

	State struct {
		SeedOnEmpty bool `envconfig:"SEED_ON_EMPTY" default:"true"`
	} `envconfig:"STATE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			Region          string `envconfig:"REGION" default:"auto"`
		} `envconfig:"S3"`
		AI struct {
			Endpoint       string `envconfig:"ENDPOINT" default:"https://api.openai.com/v1/chat/completions"`
			APIKey         string `envconfig:"API_KEY"`
			Model          string `envconfig:"MODEL" default:"gpt-4o-mini"`
			TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"30"`
		} `envconfig:"AI"`
	} `envconfig:"EXTERNAL"`
}

// PostgresEndpoint is one side of the read/write split.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT" default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

var (
	errMissingSecret = errors.New("missing secret")

	conf        Config
	once        sync.Once
	initialized bool
)

// Validate rejects settings the API server cannot start with. The migrate command does not need them.
func (c *Config) Validate() error {
	secrets := map[string]string{
		"JWT_ACCESS_SECRET":  c.JWT.AccessSecret,
		"JWT_REFRESH_SECRET": c.JWT.RefreshSecret,
	}

	for name, value := range secrets {
		if value == "" {
			return fmt.Errorf("%w: %s", errMissingSecret, name)
		}
	}

	if c.JWT.AccessSecret == c.JWT.RefreshSecret {
		return fmt.Errorf("%w: JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ", errMissingSecret)
	}

	return nil
}

func load() (Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("processing environment variables: %w", err)
	}

	return cfg, nil
}

func Init() error {
	var err error

	once.Do(func() {
		// a missing .env is normal when the environment is injected
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		}

		if conf, err = load(); err != nil {
			return
		}

		initialized = true

		log.Info().Str("env", conf.Server.Env).Msg("Service configuration initialized")
	})

	return err
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
