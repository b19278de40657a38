package catalog_test

import (
	"testing"

	"repuestos/internal/catalog"
	"repuestos/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	product := models.Product{
		Description: "MANILLA PUERTA",
		Location:    "EXTERIOR",
		Side:        "LH",
		Position:    "DELANTERA",
		Brand:       "TOYOTA",
		Model:       "YARIS",
		YearFrom:    2012,
		YearTo:      2017,
	}

	assert.Equal(t,
		"MANILLA PUERTA EXTERIOR LH DELANTERA TOYOTA YARIS 2012 - 2017",
		catalog.DisplayName(&product))
}

func TestDisplayName_DropsBlankFields(t *testing.T) {
	product := models.Product{
		Description: "RADIADOR",
		Brand:       "MAZDA",
		Model:       "CX-5",
		YearFrom:    2018,
		YearTo:      2021,
	}

	// No doubled spaces where position/location/side are empty.
	assert.Equal(t, "RADIADOR MAZDA CX-5 2018 - 2021", catalog.DisplayName(&product))
}
