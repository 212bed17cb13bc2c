package redis

import (
	"context"
	"net"
	"time"

	"frontdesk/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New returns a client even when the first ping fails. go-redis redials on
// demand and every cache caller already treats errors as a miss.
func New(cfg *config.Config) *goRedis.Client {
	primary := cfg.Cache.Redis.Primary
	dialTimeout := time.Duration(cfg.Cache.Redis.DialTimeoutSeconds) * time.Second

	client := goRedis.NewClient(&goRedis.Options{
		Addr:        net.JoinHostPort(primary.Host, primary.Port),
		Password:    primary.Password,
		DB:          primary.DB,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	logger := log.With().Int("db", primary.DB).Str("host", primary.Host).Str("port", primary.Port).Logger()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("Redis unreachable, caching disabled until it answers")

		return client
	}

	logger.Info().Msg("Connected to Redis")

	return client
}
