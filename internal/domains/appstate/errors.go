package appstate

import (
	"errors"

	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"

	"github.com/rs/zerolog/log"
)

// AsFailure maps state and store errors of entity onto HTTP failures. Anything else passes through.
func AsFailure(err error, entity, key string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return failure.NotFound(entity + " not found") //nolint:wrapcheck
	case errors.Is(err, ErrDuplicate), errors.Is(err, gRepo.ErrDuplicate):
		return failure.Conflict(entity + " already exists") //nolint:wrapcheck
	case errors.Is(err, gRepo.ErrNotFound):
		log.Warn().Str("entity", entity).Str("key", key).Msg("record is in memory but missing from the store")

		return failure.NotFound(entity + " not found") //nolint:wrapcheck
	default:
		return err
	}
}
