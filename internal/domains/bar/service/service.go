package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/appstate"
	"frontdesk/internal/domains/bar/model"
	"frontdesk/internal/domains/bar/model/dto"
	"frontdesk/internal/domains/bar/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Bar interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error)
	GetProducts(ctx context.Context, status string) ([]dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, req dto.UpdateProductRequest, name string) (dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, name string) error
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (dto.SaleResponse, error)
	GetSales(ctx context.Context, product, date string) (dto.GetSalesResponse, error)
}

type serviceImpl struct {
	products repository.Product
	sales    repository.Sale
	state    *appstate.Container
	otel     otel.Otel
}

func New(products repository.Product, sales repository.Sale, state *appstate.Container, otel otel.Otel) Bar {
	return &serviceImpl{
		products: products,
		sales:    sales,
		state:    state,
		otel:     otel,
	}
}

func (s *serviceImpl) writeProduct(user string) appstate.WriteFunc[model.Product] {
	return func(ctx context.Context, next model.Product) error {
		return s.products.Update(ctx,
			shared.StructColumns(next, user, model.FieldID),
			shared.FilterByField(model.FieldName, next.Name, model.ProductTableName))
	}
}

func (s *serviceImpl) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (res dto.ProductResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateProduct")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	product := req.ToModel(user)

	if err = s.state.BarProducts.Insert(ctx, product, s.products.Insert); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to create bar product")

		return res, appstate.AsFailure(err, model.ProductEntityName, req.Name)
	}

	res.FromModel(product)

	return res, nil
}

func (s *serviceImpl) GetProducts(ctx context.Context, status string) (res []dto.ProductResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProducts")
	defer scope.End()
	defer scope.TraceIfError(err)

	products := s.state.BarProducts.All()

	if status != constant.Empty {
		products = slices.DeleteFunc(products, func(product model.Product) bool { return product.Status() != status })
	}

	return dto.ProductsFromModels(shared.SortByKey(products, model.Product.Key, constant.Empty)), nil
}

func (s *serviceImpl) UpdateProduct(ctx context.Context, req dto.UpdateProductRequest, name string) (res dto.ProductResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProduct")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	product, err := s.state.BarProducts.Apply(ctx, name, func(current model.Product) (model.Product, error) {
		next := req.Apply(current)
		if next.MaxStock < next.MinStock {
			return current, failure.BadRequestFromString("max_stock must not be below min_stock") // nolint:wrapcheck
		}

		next.Touch(user, s.state.Now())

		return next, nil
	}, s.writeProduct(user))
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to update bar product")

		return res, fmt.Errorf("failed to update bar product: %w", appstate.AsFailure(err, model.ProductEntityName, name))
	}

	res.FromModel(product)

	return res, nil
}

func (s *serviceImpl) DeleteProduct(ctx context.Context, name string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteProduct")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.state.BarProducts.Remove(ctx, name, func(ctx context.Context, _ model.Product) error {
		return s.products.Delete(ctx, shared.FilterByField(model.FieldName, name, model.ProductTableName))
	})
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to delete bar product")

		return appstate.AsFailure(err, model.ProductEntityName, name)
	}

	return nil
}

// RecordSale takes the sold quantity off the shelf and books the sale. When the sale
// cannot be stored the stock is put back.
func (s *serviceImpl) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (res dto.SaleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordSale")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	at := s.state.Now()

	var sale model.Sale

	product, err := s.state.BarProducts.Apply(ctx, req.Product, func(current model.Product) (model.Product, error) {
		if current.Stock < req.Quantity {
			return current, failure.BadRequestFromString(fmt.Sprintf("only %d of %s left", current.Stock, current.Name)) // nolint:wrapcheck
		}

		sale = req.ToModel(user, current.Price, at)

		current.Stock -= req.Quantity
		current.Touch(user, at)

		return current, nil
	}, s.writeProduct(user))
	if err != nil {
		log.Error().Err(err).Str("product", req.Product).Msg("failed to take sale off stock")

		return res, appstate.AsFailure(err, model.ProductEntityName, req.Product)
	}

	if err = s.state.BarSales.Insert(ctx, sale, s.sales.Insert); err != nil {
		log.Error().Err(err).Str("product", req.Product).Msg("failed to record bar sale")

		s.restock(context.WithoutCancel(ctx), user, product.Name, req.Quantity)

		return res, fmt.Errorf("failed to record bar sale: %w", err)
	}

	res.FromModel(sale)

	return res, nil
}

func (s *serviceImpl) restock(ctx context.Context, user, name string, quantity int) {
	_, err := s.state.BarProducts.Apply(ctx, name, func(current model.Product) (model.Product, error) {
		current.Stock += quantity
		current.Touch(user, s.state.Now())

		return current, nil
	}, s.writeProduct(user))
	if err != nil {
		log.Error().Err(err).Str("product", name).Int("quantity", quantity).Msg("failed to put stock back")
	}
}

func (s *serviceImpl) GetSales(ctx context.Context, product, date string) (res dto.GetSalesResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSales")
	defer scope.End()
	defer scope.TraceIfError(err)

	sales := s.state.BarSales.All()

	sales = slices.DeleteFunc(sales, func(sale model.Sale) bool {
		if product != constant.Empty && sale.Product != product {
			return true
		}

		return date != constant.Empty && timezone.DayKey(sale.SoldAt) != date
	})

	slices.SortStableFunc(sales, func(a, b model.Sale) int {
		return b.SoldAt.Compare(a.SoldAt)
	})

	res.FromModels(sales)

	return res, nil
}
