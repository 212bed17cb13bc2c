package dto

import (
	"time"

	"frontdesk/internal/domains/billing"
	"frontdesk/internal/domains/hall/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateHallRequest struct {
	Name       string   `json:"name"       validate:"required,max=100"`
	Capacity   int      `json:"capacity"   validate:"min=1"`
	Facilities []string `json:"facilities" validate:"omitempty,dive,max=50"`
	Price      float64  `json:"price"      validate:"gt=0"`
	Status     string   `json:"status"     validate:"omitempty,oneof=Available Maintenance"`
}

func (c *CreateHallRequest) ToModel(user string) model.Hall {
	status := c.Status
	if status == constant.Empty {
		status = model.StatusAvailable
	}

	return model.Hall{
		ID:         uuid.NewString(),
		Name:       c.Name,
		Capacity:   c.Capacity,
		Facilities: model.TextArray(c.Facilities),
		AddOns:     model.TextArray(nil),
		Price:      c.Price,
		Status:     status,
		Metadata:   gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateHallRequest struct {
	Capacity   *int     `json:"capacity"   validate:"omitempty,min=1"`
	Facilities []string `json:"facilities" validate:"omitempty,dive,max=50"`
	Price      *float64 `json:"price"      validate:"omitempty,gt=0"`
	Status     string   `json:"status"     validate:"omitempty,oneof=Available Maintenance"`
}

func (u *UpdateHallRequest) Apply(hall model.Hall) model.Hall {
	if u.Capacity != nil {
		hall.Capacity = *u.Capacity
	}

	if u.Facilities != nil {
		hall.Facilities = model.TextArray(u.Facilities)
	}

	if u.Price != nil {
		hall.Price = *u.Price
	}

	if u.Status != constant.Empty {
		hall.Status = u.Status
	}

	return hall
}

// BookHallRequest takes the form's separate date and time inputs.
type BookHallRequest struct {
	CustomerName   string   `json:"customer_name"   validate:"required,max=100"`
	Contact        string   `json:"contact"         validate:"required,max=30"`
	Purpose        string   `json:"purpose"         validate:"omitempty,max=200"`
	IDProof        string   `json:"id_proof"        validate:"omitempty,max=100"`
	Email          string   `json:"email"           validate:"omitempty,email"`
	CheckInDate    string   `json:"check_in_date"   validate:"required,datetime=2006-01-02"`
	CheckInTime    string   `json:"check_in_time"   validate:"required,datetime=15:04"`
	CheckOutDate   string   `json:"check_out_date"  validate:"required,datetime=2006-01-02"`
	CheckOutTime   string   `json:"check_out_time"  validate:"required,datetime=15:04"`
	Adults         int      `json:"adults"          validate:"min=0"`
	Children       int      `json:"children"        validate:"min=0"`
	FoodPreference string   `json:"food_preference" validate:"omitempty,oneof=veg non_veg mixed"`
	AddOns         []string `json:"add_ons"         validate:"omitempty,unique,dive,oneof=decoration sound_system photography projector stage"`
}

// Window combines the date and time inputs into instants in the application timezone.
func (b *BookHallRequest) Window() (start, end *time.Time) {
	return timezone.ParseISOPtr(b.CheckInDate + "T" + b.CheckInTime),
		timezone.ParseISOPtr(b.CheckOutDate + "T" + b.CheckOutTime)
}

func (b *BookHallRequest) Quote(hourlyRate float64) billing.HallQuote {
	start, end := b.Window()

	return billing.QuoteHall(billing.HallBooking{
		HourlyRate: hourlyRate,
		Start:      start,
		End:        end,
		Adults:     b.Adults,
		Children:   b.Children,
		AddOns:     b.AddOns,
	})
}

func (b *BookHallRequest) Apply(hall model.Hall) model.Hall {
	start, end := b.Window()
	quote := b.Quote(hall.Price)
	adults, children := b.Adults, b.Children

	hall.Status = model.StatusBooked
	hall.CustomerName = &b.CustomerName
	hall.Contact = &b.Contact
	hall.Purpose = optional(b.Purpose)
	hall.IDProof = optional(b.IDProof)
	hall.Email = optional(b.Email)
	hall.CheckIn = start
	hall.CheckOut = end
	hall.TotalPrice = &quote.Total
	hall.Adults = &adults
	hall.Children = &children
	hall.FoodPreference = optional(b.FoodPreference)
	hall.AddOns = model.TextArray(b.AddOns)
	hall.FoodCost = &quote.FoodCost

	return hall
}

func optional(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}

type ReleaseHallRequest struct {
	NextStatus string `json:"next_status" validate:"omitempty,oneof=Available Maintenance"`
}

func (r *ReleaseHallRequest) Status() string {
	if r.NextStatus == constant.Empty {
		return model.StatusAvailable
	}

	return r.NextStatus
}

type HallResponse struct {
	Name           string   `json:"name"`
	Capacity       int      `json:"capacity"`
	Facilities     []string `json:"facilities"`
	Price          float64  `json:"price"`
	Status         string   `json:"status"`
	CustomerName   *string  `json:"customer_name,omitempty"`
	Contact        *string  `json:"contact,omitempty"`
	Purpose        *string  `json:"purpose,omitempty"`
	IDProof        *string  `json:"id_proof,omitempty"`
	Email          *string  `json:"email,omitempty"`
	CheckIn        *string  `json:"check_in,omitempty"`
	CheckOut       *string  `json:"check_out,omitempty"`
	TotalPrice     *float64 `json:"total_price,omitempty"`
	Adults         *int     `json:"adults,omitempty"`
	Children       *int     `json:"children,omitempty"`
	FoodPreference *string  `json:"food_preference,omitempty"`
	AddOns         []string `json:"add_ons,omitempty"`
	FoodCost       *float64 `json:"food_cost,omitempty"`
	gDto.Metadata
}

func (r *HallResponse) FromModel(hall model.Hall) {
	r.Name = hall.Name
	r.Capacity = hall.Capacity
	r.Facilities = []string(hall.Facilities)
	r.Price = hall.Price
	r.Status = hall.Status
	r.CustomerName = hall.CustomerName
	r.Contact = hall.Contact
	r.Purpose = hall.Purpose
	r.IDProof = hall.IDProof
	r.Email = hall.Email
	r.CheckIn = timezone.FormatPtr(hall.CheckIn, constant.DateFormat)
	r.CheckOut = timezone.FormatPtr(hall.CheckOut, constant.DateFormat)
	r.TotalPrice = hall.TotalPrice
	r.Adults = hall.Adults
	r.Children = hall.Children
	r.FoodPreference = hall.FoodPreference
	r.AddOns = []string(hall.AddOns)
	r.FoodCost = hall.FoodCost

	if r.Facilities == nil {
		r.Facilities = []string{}
	}

	r.Metadata.FromModel(hall.Metadata)
}

type GetHallsResponse struct {
	Halls     []HallResponse `json:"halls"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetHallsResponse) FromModels(models []model.Hall, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Halls = make([]HallResponse, len(models))
	for i, mod := range models {
		r.Halls[i].FromModel(mod)
	}
}
