package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/appstate"
	"frontdesk/internal/domains/billing"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, status string) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, number string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, number string) (dto.RoomResponse, error)
	Occupy(ctx context.Context, req dto.OccupyRoomRequest, number string) (dto.RoomResponse, error)
	Checkout(ctx context.Context, req dto.CheckoutRoomRequest, number string) (dto.RoomResponse, error)
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, number string) (dto.RoomResponse, error)
	Delete(ctx context.Context, number string) error
}

type serviceImpl struct {
	repo  repository.Room
	state *appstate.Container
	otel  otel.Otel
}

func New(repo repository.Room, state *appstate.Container, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		state: state,
		otel:  otel,
	}
}

func (s *serviceImpl) update(user string) appstate.WriteFunc[model.Room] {
	return func(ctx context.Context, next model.Room) error {
		return s.repo.Update(ctx,
			shared.StructColumns(next, user, model.FieldID),
			shared.FilterByField(model.FieldNumber, next.Number, model.TableName))
	}
}

// apply runs mutate against the resolved room and stamps the modification.
func (s *serviceImpl) apply(ctx context.Context, number string, mutate func(model.Room) (model.Room, error)) (res dto.RoomResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.state.Rooms.Apply(ctx, number, func(current model.Room) (model.Room, error) {
		next, err := mutate(current)
		if err != nil {
			return next, err
		}

		next.Touch(user, s.state.Now())

		return next, nil
	}, s.update(user))
	if err != nil {
		return res, appstate.AsFailure(err, model.EntityName, number)
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	room := req.ToModel(user)

	err = s.state.Rooms.Insert(ctx, room, s.repo.Insert)
	if err != nil {
		log.Error().Err(err).Str("number", req.Number).Msg("failed to create room")

		return res, appstate.AsFailure(err, model.EntityName, req.Number)
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetRoomsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	rooms := s.state.Rooms.All()

	if status != constant.Empty {
		filtered := rooms[:0]
		for _, room := range rooms {
			if room.Status == status {
				filtered = append(filtered, room)
			}
		}

		rooms = filtered
	}

	rooms = shared.SortByKey(rooms, model.Room.Key, params.SortDir)

	res.FromModels(shared.Paginate(rooms, params.Page, params.Limit), len(rooms), params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, number string) (res dto.RoomResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, ok := s.state.Rooms.Find(number)
	if !ok {
		return res, failure.NotFound(model.EntityName + " not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, number string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.apply(ctx, number, func(current model.Room) (model.Room, error) {
		if current.Engaged() && req.Status != constant.Empty && req.Status != current.Status {
			return current, failure.BadRequestFromString("status of an occupied room changes only on checkout") // nolint:wrapcheck
		}

		return req.Apply(current), nil
	})
	if err != nil {
		log.Error().Err(err).Str("number", number).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Occupy(ctx context.Context, req dto.OccupyRoomRequest, number string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Occupy")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.apply(ctx, number, func(current model.Room) (model.Room, error) {
		if current.Status != model.StatusAvailable {
			return current, failure.Conflict(fmt.Sprintf("room %s is %s", number, current.Status)) // nolint:wrapcheck
		}

		return req.Apply(current), nil
	})
	if err != nil {
		log.Error().Err(err).Str("number", number).Msg("failed to occupy room")

		return res, fmt.Errorf("failed to occupy room: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Checkout(ctx context.Context, req dto.CheckoutRoomRequest, number string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.apply(ctx, number, func(current model.Room) (model.Room, error) {
		if !current.Engaged() {
			return current, failure.Conflict(fmt.Sprintf("room %s is not occupied", number)) // nolint:wrapcheck
		}

		return current.CheckedOut(req.Status()), nil
	})
	if err != nil {
		log.Error().Err(err).Str("number", number).Msg("failed to check out room")

		return res, fmt.Errorf("failed to check out room: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, number string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.apply(ctx, number, func(current model.Room) (model.Room, error) {
		payment := billing.RecordPayment(current.PaidAmount, current.Transactions, *req.Amount, req.Method, s.state.Now())

		current.PaidAmount = payment.PaidAmount
		current.Transactions = payment.Transactions

		return current, nil
	})
	if err != nil {
		log.Error().Err(err).Str("number", number).Msg("failed to record payment")

		return res, fmt.Errorf("failed to record payment: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, number string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.state.Rooms.Remove(ctx, number, func(ctx context.Context, current model.Room) error {
		if current.Engaged() {
			return failure.Conflict(fmt.Sprintf("room %s is occupied", number)) // nolint:wrapcheck
		}

		return s.repo.Delete(ctx, shared.FilterByField(model.FieldNumber, number, model.TableName))
	})
	if err != nil {
		log.Error().Err(err).Str("number", number).Msg("failed to delete room")

		return appstate.AsFailure(err, model.EntityName, number)
	}

	return nil
}
