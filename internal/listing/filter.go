package listing

import "inmolista/server/internal/models"

// Filter returns the subsequence of properties matching the filter set,
// preserving input order. The input slice is never mutated; with every
// filter field at its wildcard value the result carries the same elements
// in the same order.
func Filter(properties []models.Property, filters models.FilterSet) []models.Property {
	matched := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if Matches(p, filters) {
			matched = append(matched, p)
		}
	}
	return matched
}
