package catalog

import (
	"strings"

	"repuestos/internal/models"
)

// Condition is a single constraint over a product. Conditions can be
// evaluated in-process with Matches, or translated by a storage backend
// into native query syntax (see the GORM product repository).
type Condition interface {
	Matches(p *models.Product) bool
}

// YearInRange matches products whose production year range contains the
// year, inclusive on both ends.
type YearInRange int

// Matches implements Condition.
func (y YearInRange) Matches(p *models.Product) bool {
	return p.YearFrom <= int(y) && int(y) <= p.YearTo
}

// TextContains matches products where the term occurs as a case-insensitive
// substring of at least one searchable field.
type TextContains string

// Matches implements Condition.
func (t TextContains) Matches(p *models.Product) bool {
	term := strings.ToLower(string(t))
	for _, field := range SearchFields {
		if strings.Contains(strings.ToLower(field.Value(p)), term) {
			return true
		}
	}
	return false
}

// Filter is the compiled form of a search query: the conjunction of its
// conditions. An empty filter matches every product.
type Filter []Condition

// Matches reports whether the product satisfies every condition.
func (f Filter) Matches(p *models.Product) bool {
	for _, cond := range f {
		if !cond.Matches(p) {
			return false
		}
	}
	return true
}

// SearchField pairs a database column with its in-memory accessor so the
// same field list drives both in-process matching and SQL pushdown.
type SearchField struct {
	Column string
	Value  func(p *models.Product) string
}

// SearchFields lists the fields a text token is matched against. Adding a
// searchable field is a one-line change here.
var SearchFields = []SearchField{
	{"description", func(p *models.Product) string { return p.Description }},
	{"brand", func(p *models.Product) string { return p.Brand }},
	{"model", func(p *models.Product) string { return p.Model }},
	{"trim", func(p *models.Product) string { return p.Trim }},
	{"position", func(p *models.Product) string { return p.Position }},
	{"location", func(p *models.Product) string { return p.Location }},
	{"side", func(p *models.Product) string { return p.Side }},
	{"supplier", func(p *models.Product) string { return p.Supplier }},
	{"product_brand", func(p *models.Product) string { return p.ProductBrand }},
}

// BuildFilter compiles tokens into a filter: one condition per token,
// combined with AND. Year tokens become year-range containment checks and
// text tokens become nine-field substring checks.
func BuildFilter(tokens []Token) Filter {
	if len(tokens) == 0 {
		return nil
	}

	filter := make(Filter, 0, len(tokens))
	for _, token := range tokens {
		if token.Kind == TokenYear {
			filter = append(filter, YearInRange(token.Year))
			continue
		}
		filter = append(filter, TextContains(token.Text))
	}
	return filter
}

// Search tokenizes the query and returns the products matching it,
// evaluating the filter in-process. Storage backends that support pushdown
// should compile the query with Tokenize and BuildFilter instead and
// translate the filter themselves.
func Search(query string, products []models.Product) []models.Product {
	filter := BuildFilter(Tokenize(query))

	matched := make([]models.Product, 0, len(products))
	for i := range products {
		if filter.Matches(&products[i]) {
			matched = append(matched, products[i])
		}
	}
	return matched
}
