package main

import (
	"os"

	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("migration action is required: up, down, step-up, drop or version")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	action := helper.Action(os.Args[1])

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", string(action)).Msg("migration failed")
	}
}
