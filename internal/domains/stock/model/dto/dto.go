package dto

import (
	"frontdesk/internal/domains/stock/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name     string  `json:"name"      validate:"required,max=100"`
	Category string  `json:"category"  validate:"required,max=50"`
	Quantity int     `json:"quantity"  validate:"min=0"`
	Unit     string  `json:"unit"      validate:"required,max=20"`
	MinStock int     `json:"min_stock" validate:"min=0"`
	MaxStock int     `json:"max_stock" validate:"min=0,gtefield=MinStock"`
	UnitCost float64 `json:"unit_cost" validate:"min=0"`
	Supplier string  `json:"supplier"  validate:"omitempty,max=100"`
}

func (c *CreateItemRequest) ToModel(user string) model.Item {
	return model.Item{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Category: c.Category,
		Quantity: c.Quantity,
		Unit:     c.Unit,
		MinStock: c.MinStock,
		MaxStock: c.MaxStock,
		UnitCost: c.UnitCost,
		Supplier: c.Supplier,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateItemRequest struct {
	Category string   `json:"category"  validate:"omitempty,max=50"`
	Unit     string   `json:"unit"      validate:"omitempty,max=20"`
	MinStock *int     `json:"min_stock" validate:"omitempty,min=0"`
	MaxStock *int     `json:"max_stock" validate:"omitempty,min=0"`
	UnitCost *float64 `json:"unit_cost" validate:"omitempty,min=0"`
	Supplier *string  `json:"supplier"  validate:"omitempty,max=100"`
}

func (u *UpdateItemRequest) Apply(item model.Item) model.Item {
	if u.Category != constant.Empty {
		item.Category = u.Category
	}

	if u.Unit != constant.Empty {
		item.Unit = u.Unit
	}

	if u.MinStock != nil {
		item.MinStock = *u.MinStock
	}

	if u.MaxStock != nil {
		item.MaxStock = *u.MaxStock
	}

	if u.UnitCost != nil {
		item.UnitCost = *u.UnitCost
	}

	if u.Supplier != nil {
		item.Supplier = *u.Supplier
	}

	return item
}

// AdjustItemRequest carries a signed delta: receipts are positive, usage negative.
type AdjustItemRequest struct {
	Delta int `json:"delta" validate:"ne=0"`
}

type ItemResponse struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Quantity   int     `json:"quantity"`
	Unit       string  `json:"unit"`
	MinStock   int     `json:"min_stock"`
	MaxStock   int     `json:"max_stock"`
	UnitCost   float64 `json:"unit_cost"`
	Supplier   string  `json:"supplier"`
	Status     string  `json:"status"`
	ShelfValue float64 `json:"shelf_value"`
	gDto.Metadata
}

func (r *ItemResponse) FromModel(item model.Item) {
	r.Name = item.Name
	r.Category = item.Category
	r.Quantity = item.Quantity
	r.Unit = item.Unit
	r.MinStock = item.MinStock
	r.MaxStock = item.MaxStock
	r.UnitCost = item.UnitCost
	r.Supplier = item.Supplier
	r.Status = item.Status()
	r.ShelfValue = item.ShelfValue()
	r.Metadata.FromModel(item.Metadata)
}

type GetItemsResponse struct {
	Items      []ItemResponse `json:"items"`
	TotalValue float64        `json:"total_value"`
}

func (r *GetItemsResponse) FromModels(items []model.Item) {
	r.Items = make([]ItemResponse, len(items))
	r.TotalValue = 0

	for i, item := range items {
		r.Items[i].FromModel(item)
		r.TotalValue += item.ShelfValue()
	}
}
