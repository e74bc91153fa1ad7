package listing

import (
	"strconv"
	"strings"

	"inmolista/server/internal/models"
)

// Matches reports whether a property satisfies every active clause of the
// filter set. Unset or wildcard fields impose no constraint. Absent numeric
// fields on the record compare as 0, and an unrecognized type never equals
// a selected filter value.
func Matches(p models.Property, f models.FilterSet) bool {
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.City), search) {
			return false
		}
	}

	if active(string(f.Type)) {
		if !p.Type.Known() || p.Type != f.Type {
			return false
		}
	}

	if active(string(f.Operation)) {
		if !p.Operation.Known() || p.Operation != f.Operation {
			return false
		}
	}

	if min, ok := bound(f.MinPrice); ok && p.Price < min {
		return false
	}

	if max, ok := bound(f.MaxPrice); ok && p.Price > max {
		return false
	}

	if active(f.Bedrooms) {
		if min, ok := bound(f.Bedrooms); ok && float64(p.Bedrooms) < min {
			return false
		}
	}

	if f.City != "" {
		if !strings.Contains(strings.ToLower(p.City), strings.ToLower(f.City)) {
			return false
		}
	}

	return true
}

// active reports whether an enumerated filter field holds a real selection
// rather than a wildcard.
func active(v string) bool {
	return v != "" && v != models.FilterAny
}

// bound parses a numeric filter field. A field that is empty or does not
// parse imposes no constraint.
func bound(v string) (float64, bool) {
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
