package stocklevel_test

import (
	"testing"

	"frontdesk/shared/stocklevel"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name                        string
		current, minStock, maxStock int
		want                        stocklevel.Level
	}{
		{"below min", 2, 5, 45, stocklevel.Critical},
		{"at min", 5, 5, 45, stocklevel.Critical},
		{"inside low band", 14, 5, 45, stocklevel.Low},
		{"band edge is healthy", 15, 5, 45, stocklevel.Healthy},
		{"well stocked", 40, 5, 45, stocklevel.Healthy},
		{"above max", 60, 5, 45, stocklevel.Healthy},
		{"degenerate range", 6, 5, 5, stocklevel.Healthy},
		{"degenerate range critical", 5, 5, 0, stocklevel.Critical},
		{"empty shelf with zero min", 0, 0, 10, stocklevel.Critical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stocklevel.Of(tt.current, tt.minStock, tt.maxStock))
		})
	}
}
