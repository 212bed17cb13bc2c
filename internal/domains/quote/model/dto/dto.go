package dto

import (
	"time"

	"frontdesk/internal/domains/billing"
	"frontdesk/shared/timezone"
)

type QuoteRoomRequest struct {
	Room     string   `json:"room"      validate:"required"`
	Rate     *float64 `json:"rate"      validate:"omitempty,gt=0"`
	CheckIn  string   `json:"check_in"  validate:"required,isodate"`
	CheckOut string   `json:"check_out" validate:"required,isodate"`
}

func (q *QuoteRoomRequest) Quote(nightlyRate float64) billing.RoomQuote {
	if q.Rate != nil {
		nightlyRate = *q.Rate
	}

	return billing.QuoteRoom(nightlyRate, timezone.ParseISOPtr(q.CheckIn), timezone.ParseISOPtr(q.CheckOut))
}

type QuoteHallRequest struct {
	Hall         string   `json:"hall"           validate:"required"`
	Rate         *float64 `json:"rate"           validate:"omitempty,gt=0"`
	CheckInDate  string   `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckInTime  string   `json:"check_in_time"  validate:"required,datetime=15:04"`
	CheckOutDate string   `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	CheckOutTime string   `json:"check_out_time" validate:"required,datetime=15:04"`
	Adults       int      `json:"adults"         validate:"min=0"`
	Children     int      `json:"children"       validate:"min=0"`
	AddOns       []string `json:"add_ons"        validate:"omitempty,unique,dive,oneof=decoration sound_system photography projector stage"`
}

func (q *QuoteHallRequest) window() (start, end *time.Time) {
	return timezone.ParseISOPtr(q.CheckInDate + "T" + q.CheckInTime),
		timezone.ParseISOPtr(q.CheckOutDate + "T" + q.CheckOutTime)
}

func (q *QuoteHallRequest) Quote(hourlyRate float64) billing.HallQuote {
	if q.Rate != nil {
		hourlyRate = *q.Rate
	}

	start, end := q.window()

	return billing.QuoteHall(billing.HallBooking{
		HourlyRate: hourlyRate,
		Start:      start,
		End:        end,
		Adults:     q.Adults,
		Children:   q.Children,
		AddOns:     q.AddOns,
	})
}
