package model

import (
	"time"

	"frontdesk/shared/model"
	"frontdesk/shared/stocklevel"
)

const (
	ProductTableName  = "bar_products"
	ProductEntityName = "bar_product"
	SaleTableName     = "bar_sales"
	SaleEntityName    = "bar_sale"

	FieldID        = "id"
	FieldName      = "name"
	FieldType      = "type"
	FieldPrice     = "price"
	FieldStock     = "stock"
	FieldMinStock  = "min_stock"
	FieldMaxStock  = "max_stock"
	FieldProduct   = "product"
	FieldQuantity  = "quantity"
	FieldUnitPrice = "unit_price"
	FieldTotal     = "total"
	FieldSoldAt    = "sold_at"
)

const (
	StatusGood     = "good"
	StatusLow      = "low"
	StatusCritical = "critical"
)

type Product struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Type     string  `db:"type"`
	Price    float64 `db:"price"`
	Stock    int     `db:"stock"`
	MinStock int     `db:"min_stock"`
	MaxStock int     `db:"max_stock"`
	model.Metadata
}

func (p Product) Key() string { return p.Name }

// Status is derived from the thresholds on every read.
func (p Product) Status() string {
	switch stocklevel.Of(p.Stock, p.MinStock, p.MaxStock) {
	case stocklevel.Critical:
		return StatusCritical
	case stocklevel.Low:
		return StatusLow
	default:
		return StatusGood
	}
}

type Sale struct {
	ID        string    `db:"id"`
	Product   string    `db:"product"`
	Quantity  int       `db:"quantity"`
	UnitPrice float64   `db:"unit_price"`
	Total     float64   `db:"total"`
	SoldAt    time.Time `db:"sold_at"`
	model.Metadata
}

func (s Sale) Key() string { return s.ID }
