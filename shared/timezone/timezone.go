package timezone

import (
	"fmt"
	"time"

	"frontdesk/config"

	"github.com/rs/zerolog/log"
)

const defaultTimezone = "UTC"

var appLocation = time.UTC

func init() {
	appLocation = Load(config.Get().App.Timezone)
}

// Load resolves an IANA zone name, falling back to UTC when it is empty or unknown.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to " + defaultTimezone)

		return time.UTC
	}

	log.Info().Str("timezone", name).Msg("Application timezone initialized")

	return loc
}

func Now() time.Time {
	return time.Now().In(appLocation)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func GetLocation() *time.Location {
	return appLocation
}

// Parse reads value in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// DayKey is the YYYY-MM-DD calendar day of t at the property, as used by daily notes and sales filters.
func DayKey(t time.Time) string {
	return Format(t, time.DateOnly)
}

// ParseISO parses RFC3339 timestamps, "YYYY-MM-DDTHH:MM" and plain "YYYY-MM-DD" dates.
// Values without an offset are read in the application timezone.
func ParseISO(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", time.DateOnly} {
		if t, err := Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// ParseISOPtr returns nil for empty or unparseable input.
func ParseISOPtr(value string) *time.Time {
	if value == "" {
		return nil
	}

	t, err := ParseISO(value)
	if err != nil {
		return nil
	}

	return &t
}

// FormatPtr formats an optional instant, returning nil when absent.
func FormatPtr(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}

	formatted := Format(*t, layout)

	return &formatted
}
