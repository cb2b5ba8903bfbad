package enum

import (
	"database/sql/driver"
	"fmt"
)

// DiscountType represents the kind of a discount
type DiscountType string

const (
	DiscountTypeFlat DiscountType = "FLAT"
)

func (t DiscountType) String() string {
	return string(t)
}

// Valid reports whether t is one of the known discount types
func (t DiscountType) Valid() bool {
	return t == DiscountTypeFlat
}

func (t DiscountType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*t = DiscountTypeFlat
		return nil
	}
	var parsed DiscountType
	switch v := value.(type) {
	case string:
		parsed = DiscountType(v)
	case []byte:
		parsed = DiscountType(v)
	default:
		return fmt.Errorf("cannot scan %T into DiscountType", value)
	}
	if !parsed.Valid() {
		return fmt.Errorf("unknown discount type %q", string(parsed))
	}
	*t = parsed
	return nil
}
