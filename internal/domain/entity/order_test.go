package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalFromItems(t *testing.T) {
	order := Order{Items: []OrderItem{
		{Quantity: 2, Price: decimal.RequireFromString("100.50")},
		{Quantity: 1, Price: decimal.RequireFromString("200.75")},
	}}

	assert.Equal(t, "401.75", order.TotalFromItems().StringFixed(2))
}

func TestTotalFromItemsWithDiscount(t *testing.T) {
	ten := decimal.RequireFromString("10")
	order := Order{
		DiscountApplied: &ten,
		Items: []OrderItem{
			{Quantity: 1, Price: decimal.RequireFromString("200.00")},
		},
	}

	assert.Equal(t, "180.00", order.TotalFromItems().StringFixed(2))
}

func TestTotalFromItemsEmpty(t *testing.T) {
	var order Order
	assert.True(t, order.TotalFromItems().IsZero())
}

func TestOrderItemTotalPrice(t *testing.T) {
	item := OrderItem{Quantity: 3, Price: decimal.RequireFromString("19.99")}
	assert.Equal(t, "59.97", item.TotalPrice().StringFixed(2))
}
