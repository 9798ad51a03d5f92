package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceQuoteBase(t *testing.T) {
	for _, name := range Names() {
		pkg, ok := Get(name)
		require.True(t, ok)

		for _, count := range []int{pkg.MinJumpers, pkg.MinJumpers + 1, 25} {
			quote, err := PriceQuote(name, count, false)
			require.NoError(t, err, "package %s count %d", name, count)
			assert.Equal(t, pkg.PricePerJumper*count, quote.BasePrice)
			assert.Equal(t, 0, quote.RoomFee)
			assert.Equal(t, pkg.PricePerJumper*count, quote.Total)
		}
	}
}

func TestPriceQuotePrivateRoom(t *testing.T) {
	for _, name := range Names() {
		pkg, _ := Get(name)
		count := pkg.MinJumpers + 2

		quote, err := PriceQuote(name, count, true)
		require.NoError(t, err)
		assert.Equal(t, RoomFeePerJumper*count, quote.RoomFee)
		assert.Equal(t, pkg.PricePerJumper*count+RoomFeePerJumper*count, quote.Total)
	}
}

func TestPriceQuoteMVPBreakdown(t *testing.T) {
	quote, err := PriceQuote("MVP", 20, true)
	require.NoError(t, err)
	assert.Equal(t, 700, quote.BasePrice)
	assert.Equal(t, 100, quote.RoomFee)
	assert.Equal(t, 800, quote.Total)
}

func TestPriceQuoteBelowMinimum(t *testing.T) {
	for _, name := range Names() {
		pkg, _ := Get(name)

		_, err := PriceQuote(name, pkg.MinJumpers-1, false)
		require.Error(t, err)
		ve, ok := IsValidation(err)
		require.True(t, ok)
		assert.Equal(t, ReasonBelowMinimum, ve.Reason)
		assert.Equal(t, pkg.MinJumpers, ve.MinJumpers)
		assert.Contains(t, ve.Message, "Minimum 10 jumpers")
	}
}

func TestPriceQuoteUnknownPackage(t *testing.T) {
	_, err := PriceQuote("Mega Party", 12, false)
	require.Error(t, err)
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonUnknownPackage, ve.Reason)
	for _, name := range Names() {
		assert.Contains(t, ve.Message, name)
	}
}

func TestValidateDateRestrictionGloParty(t *testing.T) {
	// 2025-01-17 is a Friday, 2025-01-18 a Saturday.
	assert.NoError(t, ValidateDateRestriction("Glo Party", "2025-01-17"))
	assert.NoError(t, ValidateDateRestriction("Glo Party", "2025-01-18"))

	// 2025-01-15 is a Wednesday.
	err := ValidateDateRestriction("Glo Party", "2025-01-15")
	require.Error(t, err)
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, ReasonRestrictedDay, ve.Reason)
	assert.Equal(t, []string{"Friday", "Saturday"}, ve.AllowedDays)
	assert.Contains(t, ve.Message, "Wednesday")
}

func TestValidateDateRestrictionUnrestrictedTiers(t *testing.T) {
	// Rookie has no day restriction: any parseable date passes.
	for _, date := range []string{"2025-01-13", "2025-01-15", "2025-01-19"} {
		assert.NoError(t, ValidateDateRestriction("Rookie", date))
	}
}

func TestValidateDateRestrictionMalformedDate(t *testing.T) {
	for _, date := range []string{"", "next friday", "17-01-2025", "2025/01/17", "2025-13-40"} {
		err := ValidateDateRestriction("Glo Party", date)
		require.Error(t, err, "date %q", date)
		ve, ok := IsValidation(err)
		require.True(t, ok)
		assert.Equal(t, ReasonMalformedDate, ve.Reason, "date %q", date)
	}
}

func TestSummary(t *testing.T) {
	summary, err := Summary("Glo Party")
	require.NoError(t, err)
	assert.Contains(t, summary, "$40 per jumper")
	assert.Contains(t, summary, "minimum 10 jumpers")
	assert.Contains(t, summary, "Friday, Saturday")

	_, err = Summary("Nonexistent")
	assert.Error(t, err)
}

func TestCatalogInvariants(t *testing.T) {
	restricted := 0
	for _, name := range Names() {
		pkg, ok := Get(name)
		require.True(t, ok)
		assert.GreaterOrEqual(t, pkg.MinJumpers, 10, "catalog floor")
		assert.Equal(t, RoomFeePerJumper, pkg.RoomFeePerHead)
		if pkg.Restricted() {
			restricted++
		}
	}
	assert.Equal(t, 1, restricted, "current catalog restricts exactly one tier")
	assert.Len(t, Names(), 4)
}
