package dto

import (
	"time"

	"frontdesk/internal/domains/bar/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Name     string  `json:"name"      validate:"required,max=100"`
	Type     string  `json:"type"      validate:"required,max=50"`
	Price    float64 `json:"price"     validate:"gt=0"`
	Stock    int     `json:"stock"     validate:"min=0"`
	MinStock int     `json:"min_stock" validate:"min=0"`
	MaxStock int     `json:"max_stock" validate:"min=0,gtefield=MinStock"`
}

func (c *CreateProductRequest) ToModel(user string) model.Product {
	return model.Product{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Type:     c.Type,
		Price:    c.Price,
		Stock:    c.Stock,
		MinStock: c.MinStock,
		MaxStock: c.MaxStock,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateProductRequest struct {
	Type     string   `json:"type"      validate:"omitempty,max=50"`
	Price    *float64 `json:"price"     validate:"omitempty,gt=0"`
	Stock    *int     `json:"stock"     validate:"omitempty,min=0"`
	MinStock *int     `json:"min_stock" validate:"omitempty,min=0"`
	MaxStock *int     `json:"max_stock" validate:"omitempty,min=0"`
}

func (u *UpdateProductRequest) Apply(product model.Product) model.Product {
	if u.Type != constant.Empty {
		product.Type = u.Type
	}

	if u.Price != nil {
		product.Price = *u.Price
	}

	if u.Stock != nil {
		product.Stock = *u.Stock
	}

	if u.MinStock != nil {
		product.MinStock = *u.MinStock
	}

	if u.MaxStock != nil {
		product.MaxStock = *u.MaxStock
	}

	return product
}

type ProductResponse struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	MinStock int     `json:"min_stock"`
	MaxStock int     `json:"max_stock"`
	Status   string  `json:"status"`
	gDto.Metadata
}

func (r *ProductResponse) FromModel(product model.Product) {
	r.Name = product.Name
	r.Type = product.Type
	r.Price = product.Price
	r.Stock = product.Stock
	r.MinStock = product.MinStock
	r.MaxStock = product.MaxStock
	r.Status = product.Status()
	r.Metadata.FromModel(product.Metadata)
}

func ProductsFromModels(products []model.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, product := range products {
		res[i].FromModel(product)
	}

	return res
}

type RecordSaleRequest struct {
	Product  string `json:"product"  validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

func (r *RecordSaleRequest) ToModel(user string, unitPrice float64, at time.Time) model.Sale {
	return model.Sale{
		ID:        uuid.NewString(),
		Product:   r.Product,
		Quantity:  r.Quantity,
		UnitPrice: unitPrice,
		Total:     float64(r.Quantity) * unitPrice,
		SoldAt:    at,
		Metadata:  gModel.NewMetadata(user, at),
	}
}

type SaleResponse struct {
	ID        string  `json:"id"`
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
	SoldAt    string  `json:"sold_at"`
}

func (r *SaleResponse) FromModel(sale model.Sale) {
	r.ID = sale.ID
	r.Product = sale.Product
	r.Quantity = sale.Quantity
	r.UnitPrice = sale.UnitPrice
	r.Total = sale.Total
	r.SoldAt = timezone.Format(sale.SoldAt, constant.DateFormat)
}

type GetSalesResponse struct {
	Sales   []SaleResponse `json:"sales"`
	Revenue float64        `json:"revenue"`
}

func (r *GetSalesResponse) FromModels(sales []model.Sale) {
	r.Sales = make([]SaleResponse, len(sales))
	r.Revenue = 0

	for i, sale := range sales {
		r.Sales[i].FromModel(sale)
		r.Revenue += sale.Total
	}
}
