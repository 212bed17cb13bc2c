package service

//go:generate go run go.uber.org/mock/mockgen -source=./order.go -destination=./mocks/order_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/appstate"
	"frontdesk/internal/domains/restaurant/model"
	"frontdesk/internal/domains/restaurant/model/dto"
	"frontdesk/internal/domains/restaurant/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Order interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (dto.OrderResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, status string) (dto.GetOrdersResponse, error)
	Get(ctx context.Context, id string) (dto.OrderResponse, error)
	Advance(ctx context.Context, req dto.AdvanceOrderRequest, id string) (dto.OrderResponse, error)
}

type orderImpl struct {
	repo  repository.Order
	state *appstate.Container
	otel  otel.Otel
}

func NewOrder(repo repository.Order, state *appstate.Container, otel otel.Otel) Order {
	return &orderImpl{
		repo:  repo,
		state: state,
		otel:  otel,
	}
}

// prices looks every line up in the menu. Unknown or unavailable dishes reject the order.
func (s *orderImpl) prices(lines []dto.OrderLine) (map[string]float64, error) {
	prices := make(map[string]float64, len(lines))

	for _, line := range lines {
		item, ok := s.state.MenuItems.Find(line.Name)
		if !ok {
			return nil, failure.BadRequestFromString(fmt.Sprintf("%s is not on the menu", line.Name)) // nolint:wrapcheck
		}

		if !item.Available {
			return nil, failure.BadRequestFromString(fmt.Sprintf("%s is not available", line.Name)) // nolint:wrapcheck
		}

		prices[line.Name] = item.Price
	}

	return prices, nil
}

func (s *orderImpl) Create(ctx context.Context, req dto.CreateOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	prices, err := s.prices(req.Items)
	if err != nil {
		return res, err
	}

	if req.RoomNumber != constant.Empty {
		if _, ok := s.state.Rooms.Find(req.RoomNumber); !ok {
			return res, failure.BadRequestFromString(fmt.Sprintf("room %s does not exist", req.RoomNumber)) // nolint:wrapcheck
		}
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	order := req.ToModel(user, prices)

	if err = s.state.Orders.Insert(ctx, order, s.repo.Insert); err != nil {
		log.Error().Err(err).Str("table", req.TableNumber).Msg("failed to create order")

		return res, appstate.AsFailure(err, model.OrderEntityName, order.ID)
	}

	res.FromModel(order)

	return res, nil
}

func (s *orderImpl) GetAll(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetOrdersResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllOrders")
	defer scope.End()
	defer scope.TraceIfError(err)

	orders := s.state.Orders.All()

	if status != constant.Empty {
		orders = slices.DeleteFunc(orders, func(order model.Order) bool { return order.Status != status })
	}

	// newest first
	slices.SortStableFunc(orders, func(a, b model.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	res.FromModels(shared.Paginate(orders, params.Page, params.Limit), len(orders), params.Limit)

	return res, nil
}

func (s *orderImpl) Get(ctx context.Context, id string) (res dto.OrderResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, ok := s.state.Orders.Find(id)
	if !ok {
		return res, failure.NotFound(model.OrderEntityName + " not found") // nolint:wrapcheck
	}

	res.FromModel(order)

	return res, nil
}

func (s *orderImpl) Advance(ctx context.Context, req dto.AdvanceOrderRequest, id string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdvanceOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	order, err := s.state.Orders.Apply(ctx, id, func(current model.Order) (model.Order, error) {
		if err := model.CanTransition(current.Status, req.Status); err != nil {
			return current, failure.BadRequest(err) // nolint:wrapcheck
		}

		current.Status = req.Status
		current.Touch(user, s.state.Now())

		return current, nil
	}, func(ctx context.Context, next model.Order) error {
		return s.repo.Update(ctx,
			map[string]any{
				model.FieldStatus:        next.Status,
				constant.FieldModifiedAt: next.ModifiedAt,
				constant.FieldModifiedBy: next.ModifiedBy,
			},
			shared.FilterByID(id, model.FieldID, model.OrderTableName))
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Str("status", req.Status).Msg("failed to advance order")

		return res, fmt.Errorf("failed to advance order: %w", appstate.AsFailure(err, model.OrderEntityName, id))
	}

	res.FromModel(order)

	return res, nil
}
