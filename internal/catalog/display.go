package catalog

import (
	"strconv"
	"strings"

	"repuestos/internal/models"
)

// DisplayName composes the product's storefront name from its descriptive
// fields and year range, e.g. "FOCO DELANTERO LH TOYOTA COROLLA 2015 - 2022".
// Blank fields are dropped before joining with single spaces; the "-"
// between the years is literal.
func DisplayName(p *models.Product) string {
	candidates := []string{
		p.Description,
		p.Location,
		p.Side,
		p.Position,
		p.Brand,
		p.Model,
		strconv.Itoa(p.YearFrom),
		"-",
		strconv.Itoa(p.YearTo),
	}

	parts := make([]string, 0, len(candidates))
	for _, part := range candidates {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}
