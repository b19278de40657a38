// Package catalog implements the catalog query and pricing engine: price
// derivation from a stored cost, stock status classification, free-text
// search tokenization, and compilation of search tokens into a predicate
// that storage backends can evaluate in-process or push down as a query.
//
// Everything in this package is pure and stateless; it is safe for
// concurrent use without coordination.
package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNegativeCost is returned when a pricing derivation is attempted on a
// negative cost price. Negative costs are a data-entry error that must be
// rejected at the boundary, never priced.
var ErrNegativeCost = errors.New("cost price must not be negative")

var (
	taxRate         = decimal.RequireFromString("0.19")
	minimumMargin   = decimal.RequireFromString("1.4")
	listPriceMargin = decimal.RequireFromString("1.25")
	thousand        = decimal.NewFromInt(1000)
	listPriceTail   = decimal.NewFromInt(990)
)

// Pricing holds the sale prices derived from a product's cost price.
// All amounts are exact decimals in the same currency as the cost.
type Pricing struct {
	Tax              decimal.Decimal `json:"tax"`
	MinimumSalePrice decimal.Decimal `json:"minimum_sale_price"`
	ListPrice        decimal.Decimal `json:"list_price"`
}

// ComputePricing derives the tax, minimum sale price and list price from a
// cost price:
//
//	tax              = cost * 0.19
//	minimumSalePrice = (cost + tax) * 1.4
//	listPrice        = floor(minimumSalePrice * 1.25 / 1000) * 1000 + 990
//
// The list price is truncated down to the nearest thousand before the 990
// tail is added, so it always ends in 990.
func ComputePricing(costPrice decimal.Decimal) (Pricing, error) {
	if costPrice.IsNegative() {
		return Pricing{}, ErrNegativeCost
	}

	tax := costPrice.Mul(taxRate)
	minimum := costPrice.Add(tax).Mul(minimumMargin)
	thousands := minimum.Mul(listPriceMargin).Div(thousand).Floor()
	list := thousands.Mul(thousand).Add(listPriceTail)

	return Pricing{
		Tax:              tax,
		MinimumSalePrice: minimum,
		ListPrice:        list,
	}, nil
}
