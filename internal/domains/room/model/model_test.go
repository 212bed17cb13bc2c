package model_test

import (
	"testing"
	"time"

	"frontdesk/internal/domains/billing"
	"frontdesk/internal/domains/occupancy"
	"frontdesk/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
)

func occupiedRoom(checkOut time.Time) model.Room {
	guest := "Asha Rao"
	email := "asha@example.com"
	proof := "PASSPORT-1"
	occupants := 2
	total := 2400.0
	checkIn := checkOut.AddDate(0, 0, -2)

	return model.Room{
		Number:     "101",
		Type:       "Deluxe",
		Price:      1200,
		Status:     model.StatusOccupied,
		Guest:      &guest,
		Occupants:  &occupants,
		IDProof:    &proof,
		Email:      &email,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		TotalPrice: &total,
		PaidAmount: 500,
		Transactions: billing.Transactions{
			{Date: checkIn, Amount: 500, Method: billing.MethodCash},
		},
	}
}

func TestRoom_ResolveAfterCheckout(t *testing.T) {
	checkOut := time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC)
	room := occupiedRoom(checkOut)

	resolved := occupancy.Resolve(room, checkOut.Add(time.Second))

	assert.Equal(t, model.StatusAvailable, resolved.Status)
	assert.Nil(t, resolved.Guest)
	assert.Nil(t, resolved.Occupants)
	assert.Nil(t, resolved.IDProof)
	assert.Nil(t, resolved.Email)
	assert.Nil(t, resolved.CheckIn)
	assert.Nil(t, resolved.CheckOut)
	assert.Nil(t, resolved.TotalPrice)
	assert.Equal(t, "Deluxe", resolved.Type)
	assert.Equal(t, 1200.0, resolved.Price)
	assert.Len(t, resolved.Transactions, 1)

	assert.Equal(t, model.StatusOccupied, room.Status, "stored record is untouched")
	assert.NotNil(t, room.Guest)
}

func TestRoom_ResolveBeforeCheckout(t *testing.T) {
	checkOut := time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC)
	room := occupiedRoom(checkOut)

	assert.Equal(t, room, occupancy.Resolve(room, checkOut))
	assert.Equal(t, room, occupancy.Resolve(room, checkOut.Add(-time.Hour)))
}

func TestRoom_CheckedOut(t *testing.T) {
	room := occupiedRoom(time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC))

	cleaning := room.CheckedOut(model.StatusCleaning)

	assert.Equal(t, model.StatusCleaning, cleaning.Status)
	assert.Nil(t, cleaning.Guest)
	assert.Equal(t, 500.0, cleaning.PaidAmount)
}

func TestRoom_Balance(t *testing.T) {
	room := occupiedRoom(time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC))

	assert.Equal(t, 1900.0, room.Balance())
	assert.Zero(t, room.Vacated().Balance(), "no bill, nothing owed")
	assert.Equal(t, 500.0, room.Vacated().PaidAmount)
}

func TestRoom_StartStay(t *testing.T) {
	first := occupiedRoom(time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC))
	prior := first.Transactions[0]

	second := first.CheckedOut(model.StatusAvailable).StartStay()

	assert.Zero(t, second.PaidAmount)
	assert.Equal(t, 1, second.StayOffset)
	assert.Equal(t, billing.Transactions{prior}, second.Transactions)
	assert.Empty(t, second.StayTransactions())
	assert.Equal(t, billing.Transactions{prior}, second.PastTransactions())

	payment := billing.RecordPayment(second.PaidAmount, second.Transactions, 800, billing.MethodUPI, prior.Date.Add(72*time.Hour))
	second.PaidAmount = payment.PaidAmount
	second.Transactions = payment.Transactions

	assert.Len(t, second.Transactions, 2)
	assert.Equal(t, prior, second.Transactions[0])
	assert.Len(t, second.StayTransactions(), 1)
	assert.Equal(t, 800.0, second.PaidAmount)

	third := second.StartStay()
	assert.Equal(t, 2, third.StayOffset)
	assert.Len(t, third.PastTransactions(), 2)
	assert.Len(t, second.StayTransactions(), 1, "starting a stay does not touch the earlier record")
}

func TestRoom_StayOffsetOutOfRange(t *testing.T) {
	room := model.Room{Transactions: billing.Transactions{{Amount: 100}}, StayOffset: 5}

	assert.Empty(t, room.StayTransactions())
	assert.Len(t, room.PastTransactions(), 1)
}
