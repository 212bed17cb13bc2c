package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldRoomID       = "room_id"
	FieldCustomerName = "customer_name"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
)

// Booking is a reservation request taken at the desk. Overlaps are allowed.
type Booking struct {
	ID           string    `db:"id"`
	RoomID       string    `db:"room_id"`
	CustomerName string    `db:"customer_name"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	model.Metadata
}
