package handler

import (
	"net/http"
	"sync"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
	transport "frontdesk/transport/http"

	"github.com/rs/zerolog/log"
)

var (
	app  *transport.HTTP
	once sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("invalid configuration")
		}

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
