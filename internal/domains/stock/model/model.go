package model

import (
	"frontdesk/shared/model"
	"frontdesk/shared/stocklevel"
)

const (
	TableName  = "stock_items"
	EntityName = "stock_item"

	FieldID       = "id"
	FieldName     = "name"
	FieldCategory = "category"
	FieldQuantity = "quantity"
	FieldUnit     = "unit"
	FieldMinStock = "min_stock"
	FieldMaxStock = "max_stock"
	FieldUnitCost = "unit_cost"
	FieldSupplier = "supplier"
)

const (
	StatusCritical = "critical"
	StatusLow      = "low"
	StatusNormal   = "normal"
)

type Item struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Category string  `db:"category"`
	Quantity int     `db:"quantity"`
	Unit     string  `db:"unit"`
	MinStock int     `db:"min_stock"`
	MaxStock int     `db:"max_stock"`
	UnitCost float64 `db:"unit_cost"`
	Supplier string  `db:"supplier"`
	model.Metadata
}

func (i Item) Key() string { return i.Name }

func (i Item) Status() string {
	switch stocklevel.Of(i.Quantity, i.MinStock, i.MaxStock) {
	case stocklevel.Critical:
		return StatusCritical
	case stocklevel.Low:
		return StatusLow
	default:
		return StatusNormal
	}
}

// Adjusted applies a signed delta, never going below zero.
func (i Item) Adjusted(delta int) Item {
	i.Quantity = max(0, i.Quantity+delta)

	return i
}

// ShelfValue is the cost of what is on the shelf.
func (i Item) ShelfValue() float64 {
	return float64(i.Quantity) * i.UnitCost
}
