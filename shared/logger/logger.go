package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger starts on a console writer at trace level. SetLogLevel narrows it once config is read.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies SERVER_LOG_LEVEL, defaulting to info. In production the
// console writer is swapped for JSON lines tagged with the app name.
func SetLogLevel(cfg *config.Config) {
	if strings.EqualFold(cfg.Server.Env, constant.ServerEnvProduction) {
		log.Logger = newJSONLogger(os.Stdout, cfg.App.Name)
	}

	level := zerolog.InfoLevel

	if cfg.Server.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Server.LogLevel))
		if err != nil {
			log.Warn().Str("loglevel", cfg.Server.LogLevel).Msg("Unknown log level, using info.")
		} else {
			level = parsed
		}
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("loglevel", level.String()).Msg("Log level set.")
}

func newJSONLogger(out io.Writer, app string) zerolog.Logger {
	return zerolog.New(out).With().Timestamp().Str("app", app).Logger()
}
