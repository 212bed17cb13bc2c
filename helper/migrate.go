package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"frontdesk/config"
	"frontdesk/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const sourceURL = "file://migrations/postgres"

type Action string

const (
	ActionUp      Action = "up"
	ActionDown    Action = "down"
	ActionStepUp  Action = "step-up"
	ActionDrop    Action = "drop"
	ActionVersion Action = "version"
)

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	var extra url.Values
	if table := cfg.DB.Postgres.MigrationTable; table != "" {
		extra = url.Values{"x-migrations-table": {table}}
	}

	mig, err := migrate.New(sourceURL, postgres.DSN(cfg, cfg.DB.Postgres.Write, extra))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies action against the write database. ErrNoChange is not an error.
func Runner(cfg *config.Config, action Action) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	case ActionVersion:
		version, dirty, verErr := mig.Version()
		if verErr != nil && !errors.Is(verErr, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", verErr)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current database migration version")

		return nil
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations: %w", action, err)
	}

	log.Info().Str("action", string(action)).Msg("Database migrations completed successfully")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}
