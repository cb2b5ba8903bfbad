package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipDiscount(t *testing.T) {
	assert.Equal(t, 0.0, MembershipBronze.Discount())
	assert.Equal(t, 5.0, MembershipSilver.Discount())
	assert.Equal(t, 10.0, MembershipGold.Discount())

	// Unknown levels fall back to no discount.
	assert.Equal(t, 0.0, MembershipLevel("PLATINUM").Discount())
}

func TestMembershipValid(t *testing.T) {
	assert.True(t, MembershipBronze.Valid())
	assert.True(t, MembershipSilver.Valid())
	assert.True(t, MembershipGold.Valid())
	assert.False(t, MembershipLevel("").Valid())
	assert.False(t, MembershipLevel("bronze").Valid())
}

func TestMembershipScan(t *testing.T) {
	var m MembershipLevel
	require.NoError(t, m.Scan("GOLD"))
	assert.Equal(t, MembershipGold, m)

	require.NoError(t, m.Scan([]byte("SILVER")))
	assert.Equal(t, MembershipSilver, m)

	require.NoError(t, m.Scan(nil))
	assert.Equal(t, MembershipBronze, m)
}

func TestMembershipScanRejectsUnknown(t *testing.T) {
	m := MembershipSilver
	require.Error(t, m.Scan("PLATINUM"))
	// A failed scan must not clobber the previous value.
	assert.Equal(t, MembershipSilver, m)

	require.Error(t, m.Scan(42))
	assert.Equal(t, MembershipSilver, m)
}
