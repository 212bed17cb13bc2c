package appstate

import (
	barModel "frontdesk/internal/domains/bar/model"
	"frontdesk/internal/domains/billing"
	hallModel "frontdesk/internal/domains/hall/model"
	restaurantModel "frontdesk/internal/domains/restaurant/model"
	roomModel "frontdesk/internal/domains/room/model"
	stockModel "frontdesk/internal/domains/stock/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func seedMetadata() model.Metadata {
	return model.NewMetadata(constant.SystemUser, timezone.Now())
}

func seedRooms() []roomModel.Room {
	rooms := []struct {
		number string
		kind   string
		price  float64
		status string
	}{
		{"101", "Standard", 1200, roomModel.StatusAvailable},
		{"102", "Standard", 1200, roomModel.StatusAvailable},
		{"103", "Deluxe", 2000, roomModel.StatusCleaning},
		{"201", "Deluxe", 2000, roomModel.StatusAvailable},
		{"202", "Suite", 3500, roomModel.StatusAvailable},
		{"203", "Suite", 3500, roomModel.StatusMaintenance},
	}

	seed := make([]roomModel.Room, len(rooms))
	for i, room := range rooms {
		seed[i] = roomModel.Room{
			ID:           uuid.NewString(),
			Number:       room.number,
			Type:         room.kind,
			Price:        room.price,
			Status:       room.status,
			Transactions: billing.Transactions{},
			Metadata:     seedMetadata(),
		}
	}

	return seed
}

func seedHalls() []hallModel.Hall {
	return []hallModel.Hall{
		{
			ID:         uuid.NewString(),
			Name:       "Grand Ballroom",
			Capacity:   300,
			Facilities: pq.StringArray{"stage", "air_conditioning", "parking"},
			AddOns:     pq.StringArray{},
			Price:      10000,
			Status:     hallModel.StatusAvailable,
			Metadata:   seedMetadata(),
		},
		{
			ID:         uuid.NewString(),
			Name:       "Conference Hall A",
			Capacity:   80,
			Facilities: pq.StringArray{"projector", "wifi", "air_conditioning"},
			AddOns:     pq.StringArray{},
			Price:      3000,
			Status:     hallModel.StatusAvailable,
			Metadata:   seedMetadata(),
		},
		{
			ID:         uuid.NewString(),
			Name:       "Garden Pavilion",
			Capacity:   150,
			Facilities: pq.StringArray{"open_air", "lighting"},
			AddOns:     pq.StringArray{},
			Price:      6000,
			Status:     hallModel.StatusAvailable,
			Metadata:   seedMetadata(),
		},
	}
}

func seedMenuItems() []restaurantModel.MenuItem {
	items := []struct {
		name     string
		category string
		price    float64
	}{
		{"Masala Dosa", "breakfast", 150},
		{"Paneer Butter Masala", "main", 320},
		{"Chicken Biryani", "main", 380},
		{"Dal Tadka", "main", 220},
		{"Gulab Jamun", "dessert", 120},
		{"Fresh Lime Soda", "beverage", 90},
	}

	seed := make([]restaurantModel.MenuItem, len(items))
	for i, item := range items {
		seed[i] = restaurantModel.MenuItem{
			ID:        uuid.NewString(),
			Name:      item.name,
			Category:  item.category,
			Price:     item.price,
			Available: true,
			Metadata:  seedMetadata(),
		}
	}

	return seed
}

func seedBarProducts() []barModel.Product {
	products := []struct {
		name     string
		kind     string
		price    float64
		stock    int
		minStock int
		maxStock int
	}{
		{"Kingfisher Premium", "beer", 250, 48, 12, 96},
		{"Old Monk", "rum", 180, 10, 6, 30},
		{"Jacob's Creek Shiraz", "wine", 650, 4, 4, 24},
		{"Virgin Mojito", "mocktail", 160, 40, 10, 60},
	}

	seed := make([]barModel.Product, len(products))
	for i, product := range products {
		seed[i] = barModel.Product{
			ID:       uuid.NewString(),
			Name:     product.name,
			Type:     product.kind,
			Price:    product.price,
			Stock:    product.stock,
			MinStock: product.minStock,
			MaxStock: product.maxStock,
			Metadata: seedMetadata(),
		}
	}

	return seed
}

func seedStockItems() []stockModel.Item {
	items := []struct {
		name     string
		category string
		quantity int
		unit     string
		minStock int
		maxStock int
		unitCost float64
		supplier string
	}{
		{"Basmati Rice", "grocery", 80, "kg", 20, 200, 95, "Annapurna Traders"},
		{"Bath Towels", "housekeeping", 30, "pcs", 25, 120, 240, "Linen House"},
		{"Toiletry Kits", "housekeeping", 12, "pcs", 40, 300, 55, "Linen House"},
		{"Cooking Oil", "grocery", 35, "l", 15, 100, 140, "Annapurna Traders"},
	}

	seed := make([]stockModel.Item, len(items))
	for i, item := range items {
		seed[i] = stockModel.Item{
			ID:       uuid.NewString(),
			Name:     item.name,
			Category: item.category,
			Quantity: item.quantity,
			Unit:     item.unit,
			MinStock: item.minStock,
			MaxStock: item.maxStock,
			UnitCost: item.unitCost,
			Supplier: item.supplier,
			Metadata: seedMetadata(),
		}
	}

	return seed
}
