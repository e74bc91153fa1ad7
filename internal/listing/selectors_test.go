package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inmolista/server/internal/models"
)

func featuredFixture() []models.Property {
	return []models.Property{
		{ID: "f1", Title: "Casa Roma", City: "CDMX", Featured: true, Status: models.StatusAvailable},
		{ID: "f2", Title: "Loft Centro", City: "CDMX", Featured: false, Status: models.StatusAvailable},
		{ID: "f3", Title: "Casa Lomas", City: "CDMX", Featured: true, Status: models.StatusSold},
		{ID: "f4", Title: "Depto Sur", City: "CDMX", Featured: true, Status: models.StatusAvailable},
		{ID: "f5", Title: "Oficina Norte", City: "CDMX", Featured: true, Status: models.StatusAvailable},
		{ID: "f6", Title: "Bodega Este", City: "CDMX", Featured: true, Status: models.StatusAvailable},
	}
}

func TestFeaturedSubset(t *testing.T) {
	result := FeaturedSubset(featuredFixture(), 3)

	assert.Len(t, result, 3)
	// Input order, skipping non-featured and non-available records
	assert.Equal(t, "f1", result[0].ID)
	assert.Equal(t, "f4", result[1].ID)
	assert.Equal(t, "f5", result[2].ID)
}

func TestFeaturedSubset_NeverExceedsLimit(t *testing.T) {
	assert.Len(t, FeaturedSubset(featuredFixture(), 2), 2)
	assert.Len(t, FeaturedSubset(featuredFixture(), 100), 4)
	assert.Empty(t, FeaturedSubset(featuredFixture(), 0))
	assert.Empty(t, FeaturedSubset(nil, 3))
}

func TestFeaturedSubset_ExcludesUnavailableAndUnfeatured(t *testing.T) {
	for _, p := range FeaturedSubset(featuredFixture(), 100) {
		assert.True(t, p.Featured)
		assert.Equal(t, models.StatusAvailable, p.Status)
	}
}

func TestDistinctCities(t *testing.T) {
	props := []models.Property{
		{City: "Mexico City"},
		{City: "Puebla"},
		{City: "Mexico City"},
		{City: "Guadalajara"},
	}

	assert.Equal(t, []string{"Mexico City", "Puebla", "Guadalajara"}, DistinctCities(props))
}

func TestDistinctCities_CaseSensitive(t *testing.T) {
	// Exact string comparison: differently cased names count separately.
	props := []models.Property{
		{City: "Puebla"},
		{City: "puebla"},
	}

	assert.Len(t, DistinctCities(props), 2)
}

func TestStatistics(t *testing.T) {
	props := []models.Property{
		{Price: 250000, Status: models.StatusAvailable, Operation: models.OperationSale, Currency: models.CurrencyUSD},
		{Price: 15000, Status: models.StatusAvailable, Operation: models.OperationRental, Currency: models.CurrencyMXN},
		{Price: 120000, Status: models.StatusSold, Operation: models.OperationSale, Currency: models.CurrencyEUR},
	}

	stats := Statistics(props)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Available)
	assert.Equal(t, 2, stats.ForSale)
	// The sum deliberately mixes currencies, matching the dashboard.
	assert.Equal(t, float64(385000), stats.TotalValue)
}

func TestStatistics_TotalAlwaysMatchesLength(t *testing.T) {
	assert.Equal(t, models.PropertyStats{}, Statistics(nil))
	assert.Equal(t, len(featuredFixture()), Statistics(featuredFixture()).Total)
}

func TestStatistics_AbsentPriceContributesZero(t *testing.T) {
	props := []models.Property{
		{Status: models.StatusAvailable},
		{Price: 100},
	}

	assert.Equal(t, float64(100), Statistics(props).TotalValue)
}
