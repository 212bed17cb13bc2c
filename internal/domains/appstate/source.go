package appstate

import (
	"context"

	barModel "frontdesk/internal/domains/bar/model"
	barRepo "frontdesk/internal/domains/bar/repository"
	hallModel "frontdesk/internal/domains/hall/model"
	hallRepo "frontdesk/internal/domains/hall/repository"
	noteModel "frontdesk/internal/domains/note/model"
	noteRepo "frontdesk/internal/domains/note/repository"
	restaurantModel "frontdesk/internal/domains/restaurant/model"
	restaurantRepo "frontdesk/internal/domains/restaurant/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	stockModel "frontdesk/internal/domains/stock/model"
	stockRepo "frontdesk/internal/domains/stock/repository"
)

// Source fetches a whole collection.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Seeder is implemented by sources that can persist the seed dataset of an empty collection.
type Seeder[T any] interface {
	InsertBulk(ctx context.Context, models []T) error
}

// Sources is one fetcher per collection. A nil source serves the seed dataset.
type Sources struct {
	Rooms       Source[roomModel.Room]
	Halls       Source[hallModel.Hall]
	MenuItems   Source[restaurantModel.MenuItem]
	Orders      Source[restaurantModel.Order]
	BarProducts Source[barModel.Product]
	BarSales    Source[barModel.Sale]
	StockItems  Source[stockModel.Item]
	DailyNotes  Source[noteModel.DailyNote]
}

func ProvideSources(
	rooms roomRepo.Room,
	halls hallRepo.Hall,
	menuItems restaurantRepo.MenuItem,
	orders restaurantRepo.Order,
	barProducts barRepo.Product,
	barSales barRepo.Sale,
	stockItems stockRepo.Item,
	dailyNotes noteRepo.DailyNote,
) Sources {
	return Sources{
		Rooms:       rooms,
		Halls:       halls,
		MenuItems:   menuItems,
		Orders:      orders,
		BarProducts: barProducts,
		BarSales:    barSales,
		StockItems:  stockItems,
		DailyNotes:  dailyNotes,
	}
}
