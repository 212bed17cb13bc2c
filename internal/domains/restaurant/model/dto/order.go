package dto

import (
	"frontdesk/internal/domains/restaurant/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type OrderLine struct {
	Name     string `json:"name"     validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

type CreateOrderRequest struct {
	TableNumber string      `json:"table_number" validate:"required,max=20"`
	RoomNumber  string      `json:"room_number"  validate:"omitempty,max=20"`
	Items       []OrderLine `json:"items"        validate:"required,min=1,dive"`
}

// ToModel prices every line from the menu. The returned items keep the request order.
func (c *CreateOrderRequest) ToModel(user string, prices map[string]float64) model.Order {
	items := make(model.OrderItems, len(c.Items))
	for i, line := range c.Items {
		items[i] = model.OrderItem{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    prices[line.Name],
		}
	}

	var room *string
	if c.RoomNumber != constant.Empty {
		room = &c.RoomNumber
	}

	return model.Order{
		ID:          uuid.NewString(),
		TableNumber: c.TableNumber,
		RoomNumber:  room,
		Items:       items,
		Total:       items.Total(),
		Status:      model.OrderStatusPending,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type AdvanceOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=pending preparing served paid cancelled"`
}

type OrderResponse struct {
	ID          string            `json:"id"`
	TableNumber string            `json:"table_number"`
	RoomNumber  *string           `json:"room_number,omitempty"`
	Items       []model.OrderItem `json:"items"`
	Total       float64           `json:"total"`
	Status      string            `json:"status"`
	NextStatus  []string          `json:"next_status"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(order model.Order) {
	r.ID = order.ID
	r.TableNumber = order.TableNumber
	r.RoomNumber = order.RoomNumber
	r.Items = order.Items
	r.Total = order.Total
	r.Status = order.Status
	r.NextStatus = model.NextOrderStatuses(order.Status)

	if r.Items == nil {
		r.Items = []model.OrderItem{}
	}

	if r.NextStatus == nil {
		r.NextStatus = []string{}
	}

	r.Metadata.FromModel(order.Metadata)
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(models []model.Order, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]OrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}
