package billing_test

import (
	"testing"
	"time"

	"frontdesk/internal/domains/billing"

	"github.com/stretchr/testify/assert"
)

func at(value string) *time.Time {
	t, err := time.Parse("2006-01-02T15:04", value)
	if err != nil {
		panic(err)
	}

	return &t
}

func TestNights(t *testing.T) {
	tests := []struct {
		name         string
		checkIn, out *time.Time
		want         int
	}{
		{"two nights", at("2024-01-10T14:00"), at("2024-01-12T11:00"), 2},
		{"same day", at("2024-01-10T09:00"), at("2024-01-10T21:00"), 0},
		{"late check in early check out", at("2024-01-10T23:30"), at("2024-01-11T00:30"), 1},
		{"inverted", at("2024-01-12T00:00"), at("2024-01-10T00:00"), 0},
		{"missing check out", at("2024-01-10T00:00"), nil, 0},
		{"missing check in", nil, at("2024-01-10T00:00"), 0},
		{"across months", at("2024-02-28T12:00"), at("2024-03-01T12:00"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.Nights(tt.checkIn, tt.out))
		})
	}
}

func TestRoomCharge(t *testing.T) {
	for nights := range 5 {
		in := at("2024-01-10T12:00")
		out := in.AddDate(0, 0, nights)

		assert.InDelta(t, float64(nights)*1200, billing.RoomCharge(1200, in, &out), 0.0001)
	}

	assert.Zero(t, billing.RoomCharge(-50, at("2024-01-10T12:00"), at("2024-01-12T12:00")))
}

func TestQuoteRoom(t *testing.T) {
	quote := billing.QuoteRoom(1200, at("2024-01-10T12:00"), at("2024-01-12T12:00"))

	assert.Equal(t, billing.RoomQuote{Nights: 2, Rate: 1200, RoomCharge: 2400, Total: 2400}, quote)
}

func TestHours(t *testing.T) {
	tests := []struct {
		name       string
		start, end *time.Time
		want       int
	}{
		{"whole hours", at("2024-06-01T10:00"), at("2024-06-01T14:00"), 4},
		{"partial hour rounds up", at("2024-06-01T10:00"), at("2024-06-01T14:10"), 5},
		{"equal instants", at("2024-06-01T10:00"), at("2024-06-01T10:00"), 0},
		{"end before start", at("2024-06-01T14:00"), at("2024-06-01T10:00"), 0},
		{"missing end", at("2024-06-01T14:00"), nil, 0},
		{"overnight", at("2024-06-01T20:00"), at("2024-06-02T02:00"), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.Hours(tt.start, tt.end))
		})
	}
}

func TestFoodCost(t *testing.T) {
	assert.InDelta(t, 2000.0, billing.FoodCost(2, 1), 0.0001)
	assert.Zero(t, billing.FoodCost(0, 0))
	assert.Zero(t, billing.FoodCost(-3, -1))
}

func TestAddOnCost(t *testing.T) {
	assert.InDelta(t, 15000.0, billing.AddOnCost([]string{billing.AddOnDecoration}), 0.0001)
	assert.InDelta(t, 20000.0, billing.AddOnCost([]string{billing.AddOnDecoration, billing.AddOnProjector}), 0.0001)
	assert.InDelta(t, 15000.0, billing.AddOnCost([]string{billing.AddOnDecoration, billing.AddOnDecoration}), 0.0001)
	assert.Zero(t, billing.AddOnCost([]string{"fireworks"}))
	assert.Zero(t, billing.AddOnCost(nil))
}

func TestAddOnCatalog(t *testing.T) {
	price, ok := billing.AddOnPrice(billing.AddOnDecoration)
	assert.True(t, ok)
	assert.InDelta(t, 15000.0, price, 0.0001)

	_, ok = billing.AddOnPrice("fireworks")
	assert.False(t, ok)

	catalog := billing.AddOns()
	catalog[0].Price = 1
	price, _ = billing.AddOnPrice(catalog[0].Code)
	assert.NotEqual(t, 1.0, price)

	assert.Len(t, billing.AddOnCodes(), len(catalog))
}

func TestQuoteHall(t *testing.T) {
	tests := []struct {
		name    string
		booking billing.HallBooking
		want    billing.HallQuote
	}{
		{
			name: "grand ballroom with decoration",
			booking: billing.HallBooking{
				HourlyRate: 10000,
				Start:      at("2024-06-01T10:00"),
				End:        at("2024-06-01T14:00"),
				Adults:     2,
				Children:   1,
				AddOns:     []string{billing.AddOnDecoration},
			},
			want: billing.HallQuote{Hours: 4, Rate: 10000, HallCharge: 40000, FoodCost: 2000, AddOnCost: 15000, Total: 57000},
		},
		{
			name: "inverted times still charge catering",
			booking: billing.HallBooking{
				HourlyRate: 10000,
				Start:      at("2024-06-01T14:00"),
				End:        at("2024-06-01T10:00"),
				Adults:     1,
			},
			want: billing.HallQuote{Rate: 10000, FoodCost: 800, Total: 800},
		},
		{
			name: "no dates at all",
			booking: billing.HallBooking{
				HourlyRate: 10000,
				AddOns:     []string{billing.AddOnStage},
			},
			want: billing.HallQuote{Rate: 10000, AddOnCost: 10000, Total: 10000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.QuoteHall(tt.booking)

			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.Total, 0.0)
		})
	}
}
