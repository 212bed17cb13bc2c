package timezone_test

import (
	"testing"
	"time"

	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestNowAndLocation(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestParseISO(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339 keeps its offset",
			value: "2024-06-01T10:00:00Z",
			want:  time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "date and minutes",
			value: "2024-06-01T14:00",
			want:  time.Date(2024, 6, 1, 14, 0, 0, 0, timezone.GetLocation()),
		},
		{
			name:  "plain date",
			value: "2024-01-10",
			want:  time.Date(2024, 1, 10, 0, 0, 0, 0, timezone.GetLocation()),
		},
		{
			name:    "garbage",
			value:   "tomorrow",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseISO(tt.value)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestParseISOPtr(t *testing.T) {
	assert.Nil(t, timezone.ParseISOPtr(""))
	assert.Nil(t, timezone.ParseISOPtr("not-a-date"))
	assert.NotNil(t, timezone.ParseISOPtr("2024-01-12"))
}

func TestFormatPtr(t *testing.T) {
	assert.Nil(t, timezone.FormatPtr(nil, time.RFC3339))

	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.FormatPtr(&at, time.RFC3339)

	if assert.NotNil(t, formatted) {
		parsed, err := time.Parse(time.RFC3339, *formatted)
		assert.NoError(t, err)
		assert.True(t, at.Equal(parsed))
	}
}

func TestLoad(t *testing.T) {
	assert.Equal(t, time.UTC, timezone.Load(""))
	assert.Equal(t, time.UTC, timezone.Load("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Kolkata", timezone.Load("Asia/Kolkata").String())
}

func TestDayKey(t *testing.T) {
	at := time.Date(2024, 3, 9, 12, 0, 0, 0, timezone.GetLocation())

	assert.Equal(t, "2024-03-09", timezone.DayKey(at))
}
