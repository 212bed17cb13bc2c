package dto

import (
	"frontdesk/internal/domains/billing"
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number string  `json:"number" validate:"required,max=20"`
	Type   string  `json:"type"   validate:"required,max=50"`
	Price  float64 `json:"price"  validate:"gt=0"`
	Status string  `json:"status" validate:"omitempty,oneof=Available Cleaning Maintenance"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := c.Status
	if status == constant.Empty {
		status = model.StatusAvailable
	}

	return model.Room{
		ID:           uuid.NewString(),
		Number:       c.Number,
		Type:         c.Type,
		Price:        c.Price,
		Status:       status,
		Transactions: billing.Transactions{},
		Metadata:     gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdateRoomRequest edits the catalog data of a room. Occupancy goes through occupy and checkout.
type UpdateRoomRequest struct {
	Type   string   `json:"type"   validate:"omitempty,max=50"`
	Price  *float64 `json:"price"  validate:"omitempty,gt=0"`
	Status string   `json:"status" validate:"omitempty,oneof=Available Cleaning Maintenance"`
}

func (u *UpdateRoomRequest) Apply(room model.Room) model.Room {
	if u.Type != constant.Empty {
		room.Type = u.Type
	}

	if u.Price != nil {
		room.Price = *u.Price
	}

	if u.Status != constant.Empty {
		room.Status = u.Status
	}

	return room
}

type OccupyRoomRequest struct {
	Guest     string `json:"guest"     validate:"required,max=100"`
	Occupants int    `json:"occupants" validate:"min=1"`
	IDProof   string `json:"id_proof"  validate:"omitempty,max=100"`
	Email     string `json:"email"     validate:"omitempty,email"`
	CheckIn   string `json:"check_in"  validate:"required,isodate"`
	CheckOut  string `json:"check_out" validate:"required,isodate"`
}

// Apply checks the guest in and opens a new ledger segment for the stay.
func (o *OccupyRoomRequest) Apply(room model.Room) model.Room {
	checkIn := timezone.ParseISOPtr(o.CheckIn)
	checkOut := timezone.ParseISOPtr(o.CheckOut)
	total := billing.RoomCharge(room.Price, checkIn, checkOut)
	occupants := o.Occupants

	room = room.StartStay()
	room.Status = model.StatusOccupied
	room.Guest = &o.Guest
	room.Occupants = &occupants
	room.IDProof = optional(o.IDProof)
	room.Email = optional(o.Email)
	room.CheckIn = checkIn
	room.CheckOut = checkOut
	room.TotalPrice = &total

	return room
}

func optional(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}

type CheckoutRoomRequest struct {
	NextStatus string `json:"next_status" validate:"omitempty,oneof=Available Cleaning"`
}

func (c *CheckoutRoomRequest) Status() string {
	if c.NextStatus == constant.Empty {
		return model.StatusAvailable
	}

	return c.NextStatus
}

type RecordPaymentRequest struct {
	Amount *float64 `json:"amount" validate:"required,min=0"`
	Method string   `json:"method" validate:"required,oneof=cash card upi bank_transfer"`
}

type TransactionResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

type RoomResponse struct {
	Number       string                `json:"number"`
	Type         string                `json:"type"`
	Price        float64               `json:"price"`
	Status       string                `json:"status"`
	Guest        *string               `json:"guest,omitempty"`
	Occupants    *int                  `json:"occupants,omitempty"`
	IDProof      *string               `json:"id_proof,omitempty"`
	Email        *string               `json:"email,omitempty"`
	CheckIn      *string               `json:"check_in,omitempty"`
	CheckOut     *string               `json:"check_out,omitempty"`
	TotalPrice   *float64              `json:"total_price,omitempty"`
	PaidAmount   float64               `json:"paid_amount"`
	BalanceDue   float64               `json:"balance_due"`
	Transactions []TransactionResponse `json:"transactions"`
	History      []TransactionResponse `json:"history"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.Number = room.Number
	r.Type = room.Type
	r.Price = room.Price
	r.Status = room.Status
	r.Guest = room.Guest
	r.Occupants = room.Occupants
	r.IDProof = room.IDProof
	r.Email = room.Email
	r.CheckIn = timezone.FormatPtr(room.CheckIn, constant.DateFormat)
	r.CheckOut = timezone.FormatPtr(room.CheckOut, constant.DateFormat)
	r.TotalPrice = room.TotalPrice
	r.PaidAmount = room.PaidAmount
	r.BalanceDue = room.Balance()

	r.Transactions = transactionResponses(room.StayTransactions())
	r.History = transactionResponses(room.PastTransactions())

	r.Metadata.FromModel(room.Metadata)
}

func transactionResponses(transactions billing.Transactions) []TransactionResponse {
	res := make([]TransactionResponse, len(transactions))
	for i, tx := range transactions {
		res[i] = TransactionResponse{
			Date:   timezone.Format(tx.Date, constant.DateFormat),
			Amount: tx.Amount,
			Method: tx.Method,
		}
	}

	return res
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
