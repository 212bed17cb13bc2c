package model

import (
	"time"

	"frontdesk/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "halls"
	EntityName = "hall"

	FieldID             = "id"
	FieldName           = "name"
	FieldCapacity       = "capacity"
	FieldFacilities     = "facilities"
	FieldPrice          = "price"
	FieldStatus         = "status"
	FieldCustomerName   = "customer_name"
	FieldContact        = "contact"
	FieldPurpose        = "purpose"
	FieldIDProof        = "id_proof"
	FieldEmail          = "email"
	FieldCheckIn        = "check_in"
	FieldCheckOut       = "check_out"
	FieldTotalPrice     = "total_price"
	FieldAdults         = "adults"
	FieldChildren       = "children"
	FieldFoodPreference = "food_preference"
	FieldAddOns         = "add_ons"
	FieldFoodCost       = "food_cost"
)

const (
	StatusAvailable   = "Available"
	StatusBooked      = "Booked"
	StatusMaintenance = "Maintenance"
)

const (
	FoodVeg    = "veg"
	FoodNonVeg = "non_veg"
	FoodMixed  = "mixed"
)

type Hall struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Capacity       int            `db:"capacity"`
	Facilities     pq.StringArray `db:"facilities"`
	Price          float64        `db:"price"`
	Status         string         `db:"status"`
	CustomerName   *string        `db:"customer_name"`
	Contact        *string        `db:"contact"`
	Purpose        *string        `db:"purpose"`
	IDProof        *string        `db:"id_proof"`
	Email          *string        `db:"email"`
	CheckIn        *time.Time     `db:"check_in"`
	CheckOut       *time.Time     `db:"check_out"`
	TotalPrice     *float64       `db:"total_price"`
	Adults         *int           `db:"adults"`
	Children       *int           `db:"children"`
	FoodPreference *string        `db:"food_preference"`
	AddOns         pq.StringArray `db:"add_ons"`
	FoodCost       *float64       `db:"food_cost"`
	model.Metadata
}

func (h Hall) Engaged() bool { return h.Status == StatusBooked }

func (h Hall) CheckOutAt() *time.Time { return h.CheckOut }

func (h Hall) Vacated() Hall {
	return h.Released(StatusAvailable)
}

// Released drops the booking and leaves the hall in status.
func (h Hall) Released(status string) Hall {
	h.Status = status
	h.CustomerName = nil
	h.Contact = nil
	h.Purpose = nil
	h.IDProof = nil
	h.Email = nil
	h.CheckIn = nil
	h.CheckOut = nil
	h.TotalPrice = nil
	h.Adults = nil
	h.Children = nil
	h.FoodPreference = nil
	h.AddOns = pq.StringArray{}
	h.FoodCost = nil

	return h
}

func (h Hall) Key() string { return h.Name }

// TextArray converts values for a TEXT[] NOT NULL column; nil becomes an empty array, never NULL.
func TextArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}

	return pq.StringArray(values)
}
