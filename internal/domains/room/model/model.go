package model

import (
	"slices"
	"time"

	"frontdesk/internal/domains/billing"
	"frontdesk/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldNumber       = "number"
	FieldType         = "type"
	FieldPrice        = "price"
	FieldStatus       = "status"
	FieldGuest        = "guest"
	FieldOccupants    = "occupants"
	FieldIDProof      = "id_proof"
	FieldEmail        = "email"
	FieldCheckIn      = "check_in"
	FieldCheckOut     = "check_out"
	FieldTotalPrice   = "total_price"
	FieldPaidAmount   = "paid_amount"
	FieldTransactions = "transactions"
	FieldStayOffset   = "stay_offset"
)

const (
	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusCleaning    = "Cleaning"
	StatusMaintenance = "Maintenance"
)

type Room struct {
	ID           string               `db:"id"`
	Number       string               `db:"number"`
	Type         string               `db:"type"`
	Price        float64              `db:"price"`
	Status       string               `db:"status"`
	Guest        *string              `db:"guest"`
	Occupants    *int                 `db:"occupants"`
	IDProof      *string              `db:"id_proof"`
	Email        *string              `db:"email"`
	CheckIn      *time.Time           `db:"check_in"`
	CheckOut     *time.Time           `db:"check_out"`
	TotalPrice   *float64             `db:"total_price"`
	PaidAmount   float64              `db:"paid_amount"`
	Transactions billing.Transactions `db:"transactions"`
	// StayOffset is the index of the first transaction of the current stay.
	StayOffset   int                  `db:"stay_offset"`
	model.Metadata
}

func (r Room) Engaged() bool { return r.Status == StatusOccupied }

func (r Room) CheckOutAt() *time.Time { return r.CheckOut }

// Vacated keeps the ledger of the last stay; everything about the guest goes.
func (r Room) Vacated() Room {
	return r.withStatus(StatusAvailable)
}

func (r Room) withStatus(status string) Room {
	r.Status = status
	r.Guest = nil
	r.Occupants = nil
	r.IDProof = nil
	r.Email = nil
	r.CheckIn = nil
	r.CheckOut = nil
	r.TotalPrice = nil

	return r
}

// CheckedOut is the record after the guest leaves, moved to next.
func (r Room) CheckedOut(next string) Room {
	return r.withStatus(next)
}

func (r Room) Key() string { return r.Number }

// Balance is what is still owed on the current stay. A room without a bill owes nothing.
func (r Room) Balance() float64 {
	if r.TotalPrice == nil {
		return 0
	}

	return billing.BalanceDue(*r.TotalPrice, r.PaidAmount)
}

// StartStay opens a new ledger segment. Entries of earlier stays stay in Transactions.
func (r Room) StartStay() Room {
	r.Transactions = slices.Clone(r.Transactions)
	if r.Transactions == nil {
		r.Transactions = billing.Transactions{}
	}

	r.StayOffset = len(r.Transactions)
	r.PaidAmount = 0

	return r
}

func (r Room) offset() int {
	return min(max(r.StayOffset, 0), len(r.Transactions))
}

// StayTransactions are the entries recorded since the current stay started.
func (r Room) StayTransactions() billing.Transactions {
	return r.Transactions[r.offset():]
}

// PastTransactions are the entries of earlier stays.
func (r Room) PastTransactions() billing.Transactions {
	return r.Transactions[:r.offset()]
}
