package enum

import (
	"database/sql/driver"
	"fmt"
)

// MembershipLevel represents a customer's membership tier
type MembershipLevel string

const (
	MembershipBronze MembershipLevel = "BRONZE"
	MembershipSilver MembershipLevel = "SILVER"
	MembershipGold   MembershipLevel = "GOLD"
)

// membershipDiscounts maps each tier to its fixed discount percentage.
// Derived at read time, never persisted.
var membershipDiscounts = map[MembershipLevel]float64{
	MembershipBronze: 0,
	MembershipSilver: 5,
	MembershipGold:   10,
}

func (m MembershipLevel) String() string {
	return string(m)
}

// Valid reports whether m is one of the known membership levels
func (m MembershipLevel) Valid() bool {
	_, ok := membershipDiscounts[m]
	return ok
}

// Discount returns the discount percentage for this membership level
func (m MembershipLevel) Discount() float64 {
	return membershipDiscounts[m]
}

func (m MembershipLevel) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *MembershipLevel) Scan(value interface{}) error {
	if value == nil {
		*m = MembershipBronze
		return nil
	}
	var parsed MembershipLevel
	switch v := value.(type) {
	case string:
		parsed = MembershipLevel(v)
	case []byte:
		parsed = MembershipLevel(v)
	default:
		return fmt.Errorf("cannot scan %T into MembershipLevel", value)
	}
	if !parsed.Valid() {
		return fmt.Errorf("unknown membership level %q", string(parsed))
	}
	*m = parsed
	return nil
}
