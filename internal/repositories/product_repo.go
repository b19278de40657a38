package repositories

import (
	"repuestos/internal/catalog"
	"repuestos/internal/models"
)

// ProductRepository defines the interface for product data access.
// Search takes the compiled catalog filter so implementations can either
// push it down to the database or evaluate it in-process; the filter fixes
// the semantics, not the execution strategy.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Search(filter catalog.Filter) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
