// Package appstate holds the process-wide copy of the dashboard collections.
// It is built once by the injector, loaded at startup and shared by the services.
package appstate

import (
	"context"
	"sync/atomic"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	barModel "frontdesk/internal/domains/bar/model"
	hallModel "frontdesk/internal/domains/hall/model"
	noteModel "frontdesk/internal/domains/note/model"
	"frontdesk/internal/domains/occupancy"
	restaurantModel "frontdesk/internal/domains/restaurant/model"
	roomModel "frontdesk/internal/domains/room/model"
	stockModel "frontdesk/internal/domains/stock/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Container struct {
	Rooms       *Collection[roomModel.Room]
	Halls       *Collection[hallModel.Hall]
	MenuItems   *Collection[restaurantModel.MenuItem]
	Orders      *Collection[restaurantModel.Order]
	BarProducts *Collection[barModel.Product]
	BarSales    *Collection[barModel.Sale]
	StockItems  *Collection[stockModel.Item]
	DailyNotes  *Collection[noteModel.DailyNote]

	sources Sources
	cfg     *config.Config
	otel    otel.Otel
	clock   func() time.Time
	loading atomic.Bool
}

type Option func(*Container)

// WithClock replaces the wall clock used to resolve occupancy.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		c.clock = clock
	}
}

func New(cfg *config.Config, otel otel.Otel, sources Sources, opts ...Option) *Container {
	container := &Container{
		sources: sources,
		cfg:     cfg,
		otel:    otel,
		clock:   timezone.Now,
	}

	for _, opt := range opts {
		opt(container)
	}

	now := func() time.Time { return container.clock() }

	container.Rooms = NewCollection(roomModel.TableName, roomModel.Room.Key, occupancy.Resolve[roomModel.Room], now)
	container.Halls = NewCollection(hallModel.TableName, hallModel.Hall.Key, occupancy.Resolve[hallModel.Hall], now)
	container.MenuItems = NewCollection(restaurantModel.MenuItemTableName, restaurantModel.MenuItem.Key, nil, now)
	container.Orders = NewCollection(restaurantModel.OrderTableName, restaurantModel.Order.Key, nil, now)
	container.BarProducts = NewCollection(barModel.ProductTableName, barModel.Product.Key, nil, now)
	container.BarSales = NewCollection(barModel.SaleTableName, barModel.Sale.Key, nil, now)
	container.StockItems = NewCollection(stockModel.TableName, stockModel.Item.Key, nil, now)
	container.DailyNotes = NewCollection(noteModel.TableName, noteModel.DailyNote.Key, nil, now)

	container.loading.Store(true)

	return container
}

// Provide builds a container on the wall clock for the injector.
func Provide(cfg *config.Config, otel otel.Otel, sources Sources) *Container {
	return New(cfg, otel, sources)
}

// Loading is true until every collection has been fetched or fallen back to its seed.
func (c *Container) Loading() bool {
	return c.loading.Load()
}

func (c *Container) Now() time.Time {
	return c.clock()
}

// Load fetches every collection concurrently. A collection whose fetch fails, or comes
// back empty, is served from its seed dataset; the others are unaffected.
func (c *Container) Load(ctx context.Context) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelStateScopeName, constant.OtelStateScopeName+".Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	defer c.loading.Store(false)

	seedOnEmpty := c.cfg.State.SeedOnEmpty
	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error { return load(gctx, c.Rooms, c.sources.Rooms, seedRooms(), seedOnEmpty) })
	group.Go(func() error { return load(gctx, c.Halls, c.sources.Halls, seedHalls(), seedOnEmpty) })
	group.Go(func() error { return load(gctx, c.MenuItems, c.sources.MenuItems, seedMenuItems(), seedOnEmpty) })
	group.Go(func() error { return load(gctx, c.Orders, c.sources.Orders, nil, seedOnEmpty) })
	group.Go(func() error { return load(gctx, c.BarProducts, c.sources.BarProducts, seedBarProducts(), seedOnEmpty) })
	group.Go(func() error { return load(gctx, c.BarSales, c.sources.BarSales, nil, seedOnEmpty) })
	group.Go(func() error { return load(gctx, c.StockItems, c.sources.StockItems, seedStockItems(), seedOnEmpty) })
	group.Go(func() error { return load(gctx, c.DailyNotes, c.sources.DailyNotes, nil, seedOnEmpty) })

	err = group.Wait()

	log.Info().
		Int("rooms", c.Rooms.Len()).
		Int("halls", c.Halls.Len()).
		Int("menu_items", c.MenuItems.Len()).
		Int("orders", c.Orders.Len()).
		Int("bar_products", c.BarProducts.Len()).
		Int("bar_sales", c.BarSales.Len()).
		Int("stock_items", c.StockItems.Len()).
		Int("daily_notes", c.DailyNotes.Len()).
		Msg("Application state loaded")

	return err
}

// load only fails when ctx is done; fetch errors fall back to the seed.
func load[T any](ctx context.Context, collection *Collection[T], source Source[T], seed []T, seedOnEmpty bool) error {
	if source == nil {
		collection.Replace(seed)

		return nil
	}

	items, err := source.List(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			collection.Replace(seed)

			return ctxErr
		}

		log.Warn().Err(err).Str("collection", collection.Name()).Msg("failed to fetch collection, serving seed data")
		collection.Replace(seed)

		return nil
	}

	if len(items) > 0 || !seedOnEmpty || len(seed) == 0 {
		collection.Replace(items)

		return nil
	}

	log.Info().Str("collection", collection.Name()).Int("records", len(seed)).Msg("collection is empty, seeding")
	collection.Replace(seed)

	if seeder, ok := source.(Seeder[T]); ok {
		if err := seeder.InsertBulk(ctx, seed); err != nil {
			log.Warn().Err(err).Str("collection", collection.Name()).Msg("failed to persist seed data")
		}
	}

	return nil
}
