package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNeedsReorder(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      bool
	}{
		{"well stocked", 50, 10, false},
		{"just above threshold", 11, 10, false},
		{"exactly at threshold", 10, 10, true},
		{"below threshold", 3, 10, true},
		{"out of stock", 0, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{StockQuantity: tt.stock, ReorderThreshold: tt.threshold}
			assert.Equal(t, tt.want, p.NeedsReorder())
		})
	}
}

func TestSupplierShare(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{"100.00", "70.00"},
		{"10.00", "7.00"},
		{"0.00", "0.00"},
		{"99.99", "69.99"},
		{"0.10", "0.07"},
	}

	for _, tt := range tests {
		p := Product{Price: decimal.RequireFromString(tt.price)}
		assert.Equal(t, tt.want, p.SupplierShare().Round(2).StringFixed(2))
	}
}
