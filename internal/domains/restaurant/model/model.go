package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"frontdesk/shared/model"
)

const (
	MenuItemTableName  = "menu_items"
	MenuItemEntityName = "menu_item"
	OrderTableName     = "orders"
	OrderEntityName    = "order"

	FieldID          = "id"
	FieldName        = "name"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldAvailable   = "available"
	FieldTableNumber = "table_number"
	FieldRoomNumber  = "room_number"
	FieldItems       = "items"
	FieldTotal       = "total"
	FieldStatus      = "status"
)

type MenuItem struct {
	ID        string  `db:"id"`
	Name      string  `db:"name"`
	Category  string  `db:"category"`
	Price     float64 `db:"price"`
	Available bool    `db:"available"`
	model.Metadata
}

func (m MenuItem) Key() string { return m.Name }

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderItems is stored as a JSONB array.
type OrderItems []OrderItem

func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return []byte("[]"), nil
	}

	value, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order items: %w", err)
	}

	return value, nil
}

func (o *OrderItems) Scan(src any) error {
	var data []byte

	switch value := src.(type) {
	case nil:
		*o = OrderItems{}

		return nil
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return fmt.Errorf("unsupported order items source %T", src)
	}

	if err := json.Unmarshal(data, o); err != nil {
		return fmt.Errorf("failed to unmarshal order items: %w", err)
	}

	return nil
}

// Total is the sum of quantity times unit price.
func (o OrderItems) Total() float64 {
	total := 0.0
	for _, item := range o {
		total += float64(item.Quantity) * item.Price
	}

	return total
}

type Order struct {
	ID          string     `db:"id"`
	TableNumber string     `db:"table_number"`
	RoomNumber  *string    `db:"room_number"`
	Items       OrderItems `db:"items"`
	Total       float64    `db:"total"`
	Status      string     `db:"status"`
	model.Metadata
}

func (o Order) Key() string { return o.ID }
