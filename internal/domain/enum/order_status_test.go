package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusCompleted.Valid())
	assert.True(t, OrderStatusCancelled.Valid())
	assert.False(t, OrderStatus("SHIPPED").Valid())
	assert.False(t, OrderStatus("completed").Valid())
}

func TestOrderStatusScanRejectsUnknown(t *testing.T) {
	s := OrderStatusCompleted
	require.NoError(t, s.Scan("CANCELLED"))
	assert.Equal(t, OrderStatusCancelled, s)

	require.Error(t, s.Scan("SHIPPED"))
	assert.Equal(t, OrderStatusCancelled, s)
}

func TestDiscountTypeScanRejectsUnknown(t *testing.T) {
	d := DiscountTypeFlat
	require.NoError(t, d.Scan([]byte("FLAT")))

	require.Error(t, d.Scan("PERCENT"))
	assert.Equal(t, DiscountTypeFlat, d)
}
