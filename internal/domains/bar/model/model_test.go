package model_test

import (
	"testing"

	"frontdesk/internal/domains/bar/model"

	"github.com/stretchr/testify/assert"
)

func TestProduct_Status(t *testing.T) {
	tests := []struct {
		name    string
		product model.Product
		want    string
	}{
		{name: "at min is critical", product: model.Product{Stock: 5, MinStock: 5, MaxStock: 45}, want: model.StatusCritical},
		{name: "inside low band", product: model.Product{Stock: 14, MinStock: 5, MaxStock: 45}, want: model.StatusLow},
		{name: "band edge is good", product: model.Product{Stock: 15, MinStock: 5, MaxStock: 45}, want: model.StatusGood},
		{name: "no usable max", product: model.Product{Stock: 6, MinStock: 5}, want: model.StatusGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.Status())
		})
	}
}
