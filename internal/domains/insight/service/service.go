package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"frontdesk/config"
	"frontdesk/infras/ai"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/appstate"
	barModel "frontdesk/internal/domains/bar/model"
	"frontdesk/internal/domains/insight/model/dto"
	restaurantModel "frontdesk/internal/domains/restaurant/model"
	roomModel "frontdesk/internal/domains/room/model"
	stockModel "frontdesk/internal/domains/stock/model"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheTrends = "insight:trends"

	percent = 100

	trendsSystemPrompt = `You analyse monthly KPIs of a hotel. Compare each current month figure with the previous month.
Flag a KPI as an anomaly when the change is unusually large for a hotel of steady size.
Answer with one JSON object and nothing else:
{"revenueAnomaly": bool, "occupancyAnomaly": bool, "guestsAnomaly": bool, "ordersAnomaly": bool, "insight": "two or three sentences for the manager"}`
)

type Insight interface {
	Trends(ctx context.Context, req dto.TrendsRequest) (dto.TrendsResponse, error)
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	ai    ai.Client
	state *appstate.Container
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(ai ai.Client, state *appstate.Container, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Insight {
	return &serviceImpl{
		ai:    ai,
		state: state,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Trends(ctx context.Context, req dto.TrendsRequest) (res dto.TrendsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Trends")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheTrends, req.Parts()...)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for trends")

		return res, nil
	}

	if err = s.ai.CompleteJSON(ctx, trendsSystemPrompt, req.Prompt(), &res); err != nil {
		log.Error().Err(err).Msg("failed to analyse trends")

		return dto.TrendsResponse{}, failure.BadGateway("failed to analyse trends") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save trends to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()

	occupied := 0

	for _, room := range s.state.Rooms.All() {
		res.Rooms.Add(room.Status)

		if room.Status != roomModel.StatusOccupied {
			continue
		}

		occupied++

		total := 0.0
		if room.TotalPrice != nil {
			total = *room.TotalPrice
		}

		res.RevenueBooked += total
		res.AmountCollected += room.PaidAmount
		res.OutstandingBalance += room.Balance()
	}

	if res.Rooms.Total > 0 {
		res.OccupancyRate = float64(occupied) * percent / float64(res.Rooms.Total)
	}

	for _, hall := range s.state.Halls.All() {
		res.Halls.Add(hall.Status)

		if hall.Engaged() && hall.TotalPrice != nil {
			res.RevenueBooked += *hall.TotalPrice
		}
	}

	for _, order := range s.state.Orders.All() {
		switch order.Status {
		case restaurantModel.OrderStatusPaid:
			res.RestaurantRevenue += order.Total
		case restaurantModel.OrderStatusCancelled:
		default:
			res.OpenOrders++
		}
	}

	for _, sale := range s.state.BarSales.All() {
		res.BarRevenue += sale.Total
	}

	for _, product := range s.state.BarProducts.All() {
		if product.Status() != barModel.StatusGood {
			res.BarLowStock++
		}
	}

	for _, item := range s.state.StockItems.All() {
		if item.Status() != stockModel.StatusNormal {
			res.StockAlerts++
		}
	}

	return res, nil
}
