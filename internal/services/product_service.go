package services

import (
	"fmt"

	"repuestos/internal/catalog"
	"repuestos/internal/models"
	"repuestos/internal/repositories"

	"github.com/shopspring/decimal"
)

// ProductView is a product decorated with its derived display fields. The
// derived values are recomputed on every read; nothing here is cached or
// persisted.
type ProductView struct {
	models.Product
	Tax              decimal.Decimal     `json:"tax"`
	MinimumSalePrice decimal.Decimal     `json:"minimum_sale_price"`
	ListPrice        decimal.Decimal     `json:"list_price"`
	DisplayName      string              `json:"display_name"`
	StockStatus      catalog.StockStatus `json:"stock_status"`
}

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// SearchProducts resolves a free-text query against the catalog: the query
// is tokenized and compiled into a filter, the repository applies it (pushed
// down or in-process), and every surviving record gets its derived fields.
// An empty query returns the whole catalog.
func (s *ProductService) SearchProducts(query string) ([]ProductView, error) {
	filter := catalog.BuildFilter(catalog.Tokenize(query))

	products, err := s.repo.Search(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	views := make([]ProductView, 0, len(products))
	for i := range products {
		view, err := newProductView(&products[i])
		if err != nil {
			return nil, fmt.Errorf("failed to derive fields for product %s: %w", products[i].ID, err)
		}
		views = append(views, view)
	}
	return views, nil
}

// GetProductByID retrieves a single product with its derived fields.
func (s *ProductService) GetProductByID(id string) (*ProductView, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	view, err := newProductView(product)
	if err != nil {
		return nil, fmt.Errorf("failed to derive fields for product %s: %w", id, err)
	}
	return &view, nil
}

// CreateProduct creates a new product after checking the pricing and year
// preconditions the calculator assumes.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// validateProduct enforces the invariants the catalog engine assumes of
// stored records. Invalid values are rejected here, never coerced.
func validateProduct(product *models.Product) error {
	if product.CostPrice.IsNegative() {
		return fmt.Errorf("invalid product: %w", catalog.ErrNegativeCost)
	}
	if product.YearFrom > product.YearTo {
		return fmt.Errorf("invalid product: year range %d-%d is inverted", product.YearFrom, product.YearTo)
	}
	if product.Quantity < 0 {
		return fmt.Errorf("invalid product: quantity must not be negative")
	}
	return nil
}

// newProductView computes the derived display fields for one record.
func newProductView(product *models.Product) (ProductView, error) {
	pricing, err := catalog.ComputePricing(product.CostPrice)
	if err != nil {
		return ProductView{}, err
	}

	return ProductView{
		Product:          *product,
		Tax:              pricing.Tax,
		MinimumSalePrice: pricing.MinimumSalePrice,
		ListPrice:        pricing.ListPrice,
		DisplayName:      catalog.DisplayName(product),
		StockStatus:      catalog.ClassifyStock(product.Quantity),
	}, nil
}
