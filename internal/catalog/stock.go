package catalog

// StockStatus is the human-readable availability label shown next to a
// product in the storefront.
type StockStatus string

const (
	StockAvailable StockStatus = "Stock disponible"
	StockLow       StockStatus = "Últimas unidades"
	StockLastUnit  StockStatus = "Última unidad"
	StockOut       StockStatus = "Sin stock"
)

// ClassifyStock maps a quantity on hand to its availability label.
// Boundaries are inclusive: 5 units is still "Últimas unidades", 6 is
// "Stock disponible".
func ClassifyStock(quantity int) StockStatus {
	switch {
	case quantity > 5:
		return StockAvailable
	case quantity >= 2:
		return StockLow
	case quantity == 1:
		return StockLastUnit
	default:
		return StockOut
	}
}
