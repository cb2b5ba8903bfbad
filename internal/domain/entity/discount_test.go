package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscountIsActive(t *testing.T) {
	from := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, time.June, 30, 23, 59, 59, 0, time.UTC)
	d := Discount{ValidFrom: from, ValidUntil: until}

	assert.False(t, d.IsActive(from.Add(-time.Second)))
	assert.True(t, d.IsActive(from))
	assert.True(t, d.IsActive(from.AddDate(0, 0, 15)))
	assert.True(t, d.IsActive(until))
	assert.False(t, d.IsActive(until.Add(time.Second)))
}
