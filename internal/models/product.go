package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a spare part in the catalog.
// Prices derived from CostPrice (tax, minimum sale price, list price) are
// computed on read by the catalog package and never stored.
type Product struct {
	ID           string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,max=36"`
	Supplier     string          `json:"supplier" gorm:"type:varchar(100)" validate:"required,max=100"`
	SupplierCode string          `json:"supplier_code" gorm:"type:varchar(50)" validate:"required,max=50"`
	Description  string          `json:"description" gorm:"type:varchar(200)" validate:"required,max=200"`
	Position     string          `json:"position" gorm:"type:varchar(50)" validate:"omitempty,max=50"`
	Location     string          `json:"location" gorm:"type:varchar(50)" validate:"omitempty,max=50"`
	Side         string          `json:"side" gorm:"type:varchar(50)" validate:"omitempty,max=50"`
	Brand        string          `json:"brand" gorm:"type:varchar(50)" validate:"required,max=50"`
	Model        string          `json:"model" gorm:"type:varchar(50)" validate:"required,max=50"`
	YearFrom     int             `json:"year_from" validate:"required"`
	YearTo       int             `json:"year_to" validate:"required,gtefield=YearFrom"`
	Trim         string          `json:"trim" gorm:"type:varchar(50)" validate:"omitempty,max=50"`
	ProductBrand string          `json:"product_brand" gorm:"type:varchar(50)" validate:"required,max=50"`
	Image0       string          `json:"image0" gorm:"type:varchar(255)" validate:"omitempty,url"`
	Image1       string          `json:"image1" gorm:"type:varchar(255)" validate:"omitempty,url"`
	CostPrice    decimal.Decimal `json:"cost_price" gorm:"type:decimal(10,0)"`
	Quantity     int             `json:"quantity" validate:"gte=0"`
	// gorm.Model cannot be embedded here: its ID/Model field names collide
	// with the Model column above, so its timestamp fields are inlined.
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
