package dto

import (
	"frontdesk/internal/domains/restaurant/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateMenuItemRequest struct {
	Name      string  `json:"name"      validate:"required,max=100"`
	Category  string  `json:"category"  validate:"required,max=50"`
	Price     float64 `json:"price"     validate:"gt=0"`
	Available *bool   `json:"available"`
}

func (c *CreateMenuItemRequest) ToModel(user string) model.MenuItem {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	return model.MenuItem{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Category:  c.Category,
		Price:     c.Price,
		Available: available,
		Metadata:  gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateMenuItemRequest struct {
	Category  string   `json:"category"  validate:"omitempty,max=50"`
	Price     *float64 `json:"price"     validate:"omitempty,gt=0"`
	Available *bool    `json:"available"`
}

func (u *UpdateMenuItemRequest) Apply(item model.MenuItem) model.MenuItem {
	if u.Category != constant.Empty {
		item.Category = u.Category
	}

	if u.Price != nil {
		item.Price = *u.Price
	}

	if u.Available != nil {
		item.Available = *u.Available
	}

	return item
}

type MenuItemResponse struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
	gDto.Metadata
}

func (r *MenuItemResponse) FromModel(item model.MenuItem) {
	r.Name = item.Name
	r.Category = item.Category
	r.Price = item.Price
	r.Available = item.Available
	r.Metadata.FromModel(item.Metadata)
}

func MenuItemsFromModels(items []model.MenuItem) []MenuItemResponse {
	res := make([]MenuItemResponse, len(items))
	for i, item := range items {
		res[i].FromModel(item)
	}

	return res
}
