package listing

import "inmolista/server/internal/models"

// FeaturedSubset returns the featured, available properties in input order,
// truncated to limit. No re-sorting is applied; a non-positive limit yields
// an empty result.
func FeaturedSubset(properties []models.Property, limit int) []models.Property {
	featured := make([]models.Property, 0, limit)
	if limit <= 0 {
		return featured
	}
	for _, p := range properties {
		if p.Featured && p.Status == models.StatusAvailable {
			featured = append(featured, p)
			if len(featured) == limit {
				break
			}
		}
	}
	return featured
}

// DistinctCities returns the unique city values across the collection in
// first-seen order. Comparison is exact: "Bogotá" and "bogotá" count as two
// cities, which is the observed reference behavior.
func DistinctCities(properties []models.Property) []string {
	seen := make(map[string]struct{}, len(properties))
	cities := make([]string, 0, len(properties))
	for _, p := range properties {
		if _, ok := seen[p.City]; ok {
			continue
		}
		seen[p.City] = struct{}{}
		cities = append(cities, p.City)
	}
	return cities
}

// Statistics computes the dashboard counters in a single pass. TotalValue
// sums prices across all records without normalizing to a common currency;
// the mixed-currency sum is known to be inaccurate for multi-currency
// catalogs and is kept to match the reference dashboard.
func Statistics(properties []models.Property) models.PropertyStats {
	stats := models.PropertyStats{Total: len(properties)}
	for _, p := range properties {
		if p.Status == models.StatusAvailable {
			stats.Available++
		}
		if p.Operation == models.OperationSale {
			stats.ForSale++
		}
		stats.TotalValue += p.Price
	}
	return stats
}
