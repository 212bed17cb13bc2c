// Package billing computes stay and event charges and keeps the payment ledger of a room.
// Every function is pure: missing or inverted dates contribute nothing instead of failing.
package billing

import (
	"math"
	"slices"
	"time"
)

const (
	AdultMealRate = 800
	ChildMealRate = 400
)

const (
	AddOnDecoration  = "decoration"
	AddOnSoundSystem = "sound_system"
	AddOnPhotography = "photography"
	AddOnProjector   = "projector"
	AddOnStage       = "stage"
)

type AddOn struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

var addOnCatalog = []AddOn{
	{Code: AddOnDecoration, Name: "Decoration", Price: 15000},
	{Code: AddOnSoundSystem, Name: "Sound System", Price: 8000},
	{Code: AddOnPhotography, Name: "Photography", Price: 12000},
	{Code: AddOnProjector, Name: "Projector", Price: 5000},
	{Code: AddOnStage, Name: "Stage Setup", Price: 10000},
}

// AddOns returns a copy of the fixed hall add-on catalog.
func AddOns() []AddOn {
	return slices.Clone(addOnCatalog)
}

func AddOnCodes() []string {
	codes := make([]string, len(addOnCatalog))
	for i, addOn := range addOnCatalog {
		codes[i] = addOn.Code
	}

	return codes
}

func AddOnPrice(code string) (float64, bool) {
	idx := slices.IndexFunc(addOnCatalog, func(a AddOn) bool { return a.Code == code })
	if idx == -1 {
		return 0, false
	}

	return addOnCatalog[idx].Price, true
}

// Nights counts calendar days between check-in and check-out, never below zero.
func Nights(checkIn, checkOut *time.Time) int {
	if checkIn == nil || checkOut == nil {
		return 0
	}

	in := calendarDay(*checkIn)
	out := calendarDay(*checkOut)

	return max(0, int(out.Sub(in).Hours()/24)) //nolint:mnd
}

func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Hours is the billable duration in started hours; zero unless start is before end.
func Hours(start, end *time.Time) int {
	if start == nil || end == nil || !start.Before(*end) {
		return 0
	}

	return int(math.Ceil(end.Sub(*start).Hours()))
}

func RoomCharge(nightlyRate float64, checkIn, checkOut *time.Time) float64 {
	return float64(Nights(checkIn, checkOut)) * max(0, nightlyRate)
}

func HallCharge(hourlyRate float64, start, end *time.Time) float64 {
	return float64(Hours(start, end)) * max(0, hourlyRate)
}

func FoodCost(adults, children int) float64 {
	return float64(max(0, adults))*AdultMealRate + float64(max(0, children))*ChildMealRate
}

// AddOnCost sums selected catalog entries once each. Unknown codes are ignored.
func AddOnCost(selected []string) float64 {
	total := 0.0
	seen := map[string]bool{}

	for _, code := range selected {
		if seen[code] {
			continue
		}

		seen[code] = true

		if price, ok := AddOnPrice(code); ok {
			total += price
		}
	}

	return total
}

type RoomQuote struct {
	Nights     int     `json:"nights"`
	Rate       float64 `json:"rate"`
	RoomCharge float64 `json:"room_charge"`
	Total      float64 `json:"total"`
}

func QuoteRoom(nightlyRate float64, checkIn, checkOut *time.Time) RoomQuote {
	charge := RoomCharge(nightlyRate, checkIn, checkOut)

	return RoomQuote{
		Nights:     Nights(checkIn, checkOut),
		Rate:       nightlyRate,
		RoomCharge: charge,
		Total:      charge,
	}
}

type HallBooking struct {
	HourlyRate float64
	Start      *time.Time
	End        *time.Time
	Adults     int
	Children   int
	AddOns     []string
}

type HallQuote struct {
	Hours      int     `json:"hours"`
	Rate       float64 `json:"rate"`
	HallCharge float64 `json:"hall_charge"`
	FoodCost   float64 `json:"food_cost"`
	AddOnCost  float64 `json:"add_on_cost"`
	Total      float64 `json:"total"`
}

func QuoteHall(booking HallBooking) HallQuote {
	quote := HallQuote{
		Hours:      Hours(booking.Start, booking.End),
		Rate:       booking.HourlyRate,
		HallCharge: HallCharge(booking.HourlyRate, booking.Start, booking.End),
		FoodCost:   FoodCost(booking.Adults, booking.Children),
		AddOnCost:  AddOnCost(booking.AddOns),
	}

	quote.Total = quote.HallCharge + quote.FoodCost + quote.AddOnCost

	return quote
}
