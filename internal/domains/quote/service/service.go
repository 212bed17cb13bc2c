package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/appstate"
	"frontdesk/internal/domains/billing"
	hallModel "frontdesk/internal/domains/hall/model"
	"frontdesk/internal/domains/quote/model/dto"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
)

// Quote previews charges without touching any record.
type Quote interface {
	Room(ctx context.Context, req dto.QuoteRoomRequest) (billing.RoomQuote, error)
	Hall(ctx context.Context, req dto.QuoteHallRequest) (billing.HallQuote, error)
	AddOns(ctx context.Context) []billing.AddOn
}

type serviceImpl struct {
	state *appstate.Container
	otel  otel.Otel
}

func New(state *appstate.Container, otel otel.Otel) Quote {
	return &serviceImpl{
		state: state,
		otel:  otel,
	}
}

func (s *serviceImpl) Room(ctx context.Context, req dto.QuoteRoomRequest) (res billing.RoomQuote, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuoteRoom")
	defer scope.End()

	room, ok := s.state.Rooms.Find(req.Room)
	if !ok {
		return res, failure.NotFound(roomModel.EntityName + " " + req.Room + " not found") // nolint:wrapcheck
	}

	return req.Quote(room.Price), nil
}

func (s *serviceImpl) Hall(ctx context.Context, req dto.QuoteHallRequest) (res billing.HallQuote, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuoteHall")
	defer scope.End()

	hall, ok := s.state.Halls.Find(req.Hall)
	if !ok {
		return res, failure.NotFound(hallModel.EntityName + " " + req.Hall + " not found") // nolint:wrapcheck
	}

	return req.Quote(hall.Price), nil
}

func (s *serviceImpl) AddOns(ctx context.Context) []billing.AddOn {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddOns")
	defer scope.End()

	return billing.AddOns()
}
