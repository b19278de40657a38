package catalog_test

import (
	"testing"

	"repuestos/internal/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputePricing(t *testing.T) {
	// Reference case: 8500 -> tax 1615, minimum (8500+1615)*1.4 = 14161,
	// list floor(14161*1.25/1000)*1000+990 = 17990.
	pricing, err := catalog.ComputePricing(decimal.NewFromInt(8500))
	assert.NoError(t, err)
	assert.True(t, pricing.Tax.Equal(decimal.NewFromInt(1615)), "tax was %s", pricing.Tax)
	assert.True(t, pricing.MinimumSalePrice.Equal(decimal.NewFromInt(14161)), "minimum was %s", pricing.MinimumSalePrice)
	assert.True(t, pricing.ListPrice.Equal(decimal.NewFromInt(17990)), "list was %s", pricing.ListPrice)
}

func TestComputePricing_ExactTax(t *testing.T) {
	// Tax must be exactly cost * 0.19, with no binary floating point drift.
	cases := []struct {
		cost string
		tax  string
	}{
		{"0", "0"},
		{"100", "19"},
		{"8500", "1615"},
		{"33333", "6333.27"},
		{"99999", "18999.81"},
		{"123456.78", "23456.7882"},
	}

	for _, tc := range cases {
		pricing, err := catalog.ComputePricing(decimal.RequireFromString(tc.cost))
		assert.NoError(t, err)
		assert.True(t, pricing.Tax.Equal(decimal.RequireFromString(tc.tax)),
			"cost %s: expected tax %s, got %s", tc.cost, tc.tax, pricing.Tax)
	}
}

func TestComputePricing_ListPriceEndsIn990(t *testing.T) {
	costs := []int64{0, 1, 990, 4000, 8500, 25000, 35000, 45000, 85000, 100000}
	tail := decimal.NewFromInt(990)
	thousand := decimal.NewFromInt(1000)

	for _, cost := range costs {
		pricing, err := catalog.ComputePricing(decimal.NewFromInt(cost))
		assert.NoError(t, err)
		assert.True(t, pricing.ListPrice.Mod(thousand).Equal(tail),
			"cost %d: list price %s does not end in 990", cost, pricing.ListPrice)
	}
}

func TestComputePricing_TruncatesBeforeAddingTail(t *testing.T) {
	// minimum = 14161, minimum*1.25 = 17701.25: the list price truncates to
	// 17000 before the tail, never rounds up to 18000.
	pricing, err := catalog.ComputePricing(decimal.NewFromInt(8500))
	assert.NoError(t, err)
	assert.True(t, pricing.ListPrice.Equal(decimal.NewFromInt(17990)))

	// Zero cost collapses to the bare tail.
	pricing, err = catalog.ComputePricing(decimal.Zero)
	assert.NoError(t, err)
	assert.True(t, pricing.ListPrice.Equal(decimal.NewFromInt(990)))
}

func TestComputePricing_NegativeCost(t *testing.T) {
	_, err := catalog.ComputePricing(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, catalog.ErrNegativeCost)
}
