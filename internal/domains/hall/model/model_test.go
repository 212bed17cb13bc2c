package model_test

import (
	"testing"
	"time"

	"frontdesk/internal/domains/hall/model"
	"frontdesk/internal/domains/occupancy"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestHall_Resolve(t *testing.T) {
	customer := "Mehta Family"
	purpose := "Wedding"
	adults, children := 2, 1
	total, food := 57000.0, 2000.0
	checkIn := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)

	hall := model.Hall{
		Name:         "Grand Ballroom",
		Capacity:     300,
		Facilities:   pq.StringArray{"stage", "ac"},
		Price:        10000,
		Status:       model.StatusBooked,
		CustomerName: &customer,
		Purpose:      &purpose,
		CheckIn:      &checkIn,
		CheckOut:     &checkOut,
		TotalPrice:   &total,
		Adults:       &adults,
		Children:     &children,
		AddOns:       pq.StringArray{"decoration"},
		FoodCost:     &food,
	}

	assert.Equal(t, hall, occupancy.Resolve(hall, checkOut))

	resolved := occupancy.Resolve(hall, checkOut.Add(time.Minute))

	assert.Equal(t, model.StatusAvailable, resolved.Status)
	assert.Nil(t, resolved.CustomerName)
	assert.Nil(t, resolved.Purpose)
	assert.Nil(t, resolved.CheckIn)
	assert.Nil(t, resolved.CheckOut)
	assert.Nil(t, resolved.TotalPrice)
	assert.Nil(t, resolved.Adults)
	assert.Nil(t, resolved.Children)
	assert.Equal(t, pq.StringArray{}, resolved.AddOns)
	assert.Nil(t, resolved.FoodCost)
	assert.Equal(t, pq.StringArray{"stage", "ac"}, resolved.Facilities)
	assert.Equal(t, 300, resolved.Capacity)

	assert.Equal(t, resolved, occupancy.Resolve(resolved, checkOut.Add(time.Hour)))
}

func TestHall_ReleasedToMaintenance(t *testing.T) {
	customer := "Acme"
	hall := model.Hall{Name: "Conference Hall A", Status: model.StatusBooked, CustomerName: &customer}

	released := hall.Released(model.StatusMaintenance)

	assert.Equal(t, model.StatusMaintenance, released.Status)
	assert.Nil(t, released.CustomerName)
}

func TestTextArray(t *testing.T) {
	assert.Equal(t, pq.StringArray{}, model.TextArray(nil))
	assert.Equal(t, pq.StringArray{"wifi"}, model.TextArray([]string{"wifi"}))
}

func TestHall_ReleasedArraysAreNeverNull(t *testing.T) {
	customer := "Acme"
	hall := model.Hall{
		Name:         "Conference Hall A",
		Status:       model.StatusBooked,
		CustomerName: &customer,
		Facilities:   pq.StringArray{},
		AddOns:       pq.StringArray{"projector"},
	}

	for _, released := range []model.Hall{hall.Released(model.StatusAvailable), hall.Vacated()} {
		addOns, err := released.AddOns.Value()
		assert.NoError(t, err)
		assert.Equal(t, "{}", addOns)

		facilities, err := released.Facilities.Value()
		assert.NoError(t, err)
		assert.Equal(t, "{}", facilities)
	}
}
