package repositories

import (
	"fmt"
	"strings"

	"repuestos/internal/catalog"
	"repuestos/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Search pushes the compiled filter down to the database instead of loading
// the catalog into memory. Each condition becomes a WHERE clause: year
// conditions a range containment check, text conditions an OR chain of
// case-insensitive LIKEs over the searchable columns. GORM ANDs the clauses
// together, matching the filter's conjunction semantics.
func (r *GORMProductRepository) Search(filter catalog.Filter) ([]models.Product, error) {
	tx := r.db.Model(&models.Product{})

	for _, cond := range filter {
		switch c := cond.(type) {
		case catalog.YearInRange:
			tx = tx.Where("year_from <= ? AND year_to >= ?", int(c), int(c))
		case catalog.TextContains:
			pattern := "%" + strings.ToLower(string(c)) + "%"
			clauses := make([]string, 0, len(catalog.SearchFields))
			args := make([]interface{}, 0, len(catalog.SearchFields))
			for _, field := range catalog.SearchFields {
				clauses = append(clauses, fmt.Sprintf("LOWER(%s) LIKE ?", field.Column))
				args = append(args, pattern)
			}
			tx = tx.Where(strings.Join(clauses, " OR "), args...)
		default:
			return nil, fmt.Errorf("unsupported filter condition %T", cond)
		}
	}

	var products []models.Product
	if err := tx.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound when the row is
		// missing, so we check RowsAffected.
		return fmt.Errorf("product with ID %s not found for update", product.ID)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found for deletion", id)
	}
	return nil
}
