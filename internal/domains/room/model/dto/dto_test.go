package dto_test

import (
	"testing"
	"time"

	"frontdesk/internal/domains/billing"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestOccupyRoomRequest_Apply(t *testing.T) {
	room := model.Room{
		Number:       "101",
		Type:         "Deluxe",
		Price:        1200,
		Status:       model.StatusAvailable,
		PaidAmount:   300,
		Transactions: billing.Transactions{{Amount: 300, Method: billing.MethodCash}},
	}

	req := dto.OccupyRoomRequest{
		Guest:     "Asha Rao",
		Occupants: 2,
		Email:     "asha@example.com",
		CheckIn:   "2024-01-10",
		CheckOut:  "2024-01-12",
	}

	occupied := req.Apply(room)

	assert.Equal(t, model.StatusOccupied, occupied.Status)
	assert.Equal(t, "Asha Rao", *occupied.Guest)
	assert.Equal(t, 2, *occupied.Occupants)
	assert.Nil(t, occupied.IDProof)
	assert.Equal(t, "asha@example.com", *occupied.Email)
	assert.Equal(t, 2400.0, *occupied.TotalPrice)
	assert.Zero(t, occupied.PaidAmount)
	assert.Equal(t, room.Transactions, occupied.Transactions)
	assert.Equal(t, 1, occupied.StayOffset)
	assert.Empty(t, occupied.StayTransactions())

	var res dto.RoomResponse
	res.FromModel(occupied)

	assert.Empty(t, res.Transactions)
	assert.Len(t, res.History, 1)
	assert.Equal(t, 2400.0, res.BalanceDue)
}

func TestOccupyRoomRequest_Validation(t *testing.T) {
	valid := dto.OccupyRoomRequest{Guest: "Asha", Occupants: 1, CheckIn: "2024-01-10", CheckOut: "2024-01-12T11:00"}
	assert.NoError(t, validator.ValidateStruct(&valid))

	badDate := valid
	badDate.CheckOut = "next friday"
	assert.Error(t, validator.ValidateStruct(&badDate))

	noGuest := valid
	noGuest.Guest = ""
	assert.Error(t, validator.ValidateStruct(&noGuest))
}

func TestRecordPaymentRequest_Validation(t *testing.T) {
	zero, negative := 0.0, -1.0

	assert.NoError(t, validator.ValidateStruct(&dto.RecordPaymentRequest{Amount: &zero, Method: billing.MethodUPI}))
	assert.Error(t, validator.ValidateStruct(&dto.RecordPaymentRequest{Amount: &negative, Method: billing.MethodUPI}))
	assert.Error(t, validator.ValidateStruct(&dto.RecordPaymentRequest{Method: billing.MethodUPI}))
	assert.Error(t, validator.ValidateStruct(&dto.RecordPaymentRequest{Amount: &zero, Method: "cheque"}))
}

func TestUpdateRoomRequest_RejectsOccupied(t *testing.T) {
	assert.Error(t, validator.ValidateStruct(&dto.UpdateRoomRequest{Status: model.StatusOccupied}))
}

func TestRoomResponse_FromModel(t *testing.T) {
	checkOut := time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC)
	total := 2400.0

	room := model.Room{
		Number:     "101",
		Status:     model.StatusOccupied,
		CheckOut:   &checkOut,
		TotalPrice: &total,
		PaidAmount: 5000,
		Transactions: billing.Transactions{
			{Date: checkOut, Amount: 5000, Method: billing.MethodCard},
		},
	}

	var res dto.RoomResponse
	res.FromModel(room)

	assert.Equal(t, -2600.0, res.BalanceDue)
	assert.Nil(t, res.CheckIn)
	if assert.NotNil(t, res.CheckOut) {
		parsed, err := time.Parse(time.RFC3339, *res.CheckOut)
		assert.NoError(t, err)
		assert.True(t, checkOut.Equal(parsed))
	}
	assert.Len(t, res.Transactions, 1)
	assert.Equal(t, billing.MethodCard, res.Transactions[0].Method)
	assert.Empty(t, res.History)
}

func TestCheckoutRoomRequest_Status(t *testing.T) {
	assert.Equal(t, model.StatusAvailable, (&dto.CheckoutRoomRequest{}).Status())
	assert.Equal(t, model.StatusCleaning, (&dto.CheckoutRoomRequest{NextStatus: model.StatusCleaning}).Status())
}
