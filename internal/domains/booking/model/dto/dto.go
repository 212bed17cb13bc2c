package dto

import (
	"fmt"
	"time"

	"frontdesk/internal/domains/booking/model"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID       string `json:"roomId"       validate:"required"`
	CustomerName string `json:"customerName" validate:"required,max=100"`
	CheckInDate  string `json:"checkInDate"  validate:"required,isodate"`
	CheckOutDate string `json:"checkOutDate" validate:"required,isodate"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := timezone.ParseISO(c.CheckInDate)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid checkInDate: %w", err)
	}

	checkOut, err := timezone.ParseISO(c.CheckOutDate)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid checkOutDate: %w", err)
	}

	now := timezone.Now()

	return model.Booking{
		ID:           uuid.NewString(),
		RoomID:       c.RoomID,
		CustomerName: c.CustomerName,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type BookingResponse struct {
	ID           string `json:"id"`
	RoomID       string `json:"roomId"`
	CustomerName string `json:"customerName"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	CreatedAt    string `json:"createdAt"`
}

func (b *BookingResponse) FromModel(m model.Booking) {
	b.ID = m.ID
	b.RoomID = m.RoomID
	b.CustomerName = m.CustomerName
	b.CheckInDate = m.CheckInDate.Format(time.RFC3339)
	b.CheckOutDate = m.CheckOutDate.Format(time.RFC3339)
	b.CreatedAt = m.CreatedAt.Format(time.RFC3339)
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, 0, len(models))

	for _, m := range models {
		var item BookingResponse

		item.FromModel(m)
		res = append(res, item)
	}

	return res
}
