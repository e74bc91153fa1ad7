package models

import "time"

// PropertyType is the closed set of listing categories. Values outside the
// set are carried as-is and reported as unknown instead of crashing display
// or filter code.
type PropertyType string

const (
	TypeHouse          PropertyType = "house"
	TypeApartment      PropertyType = "apartment"
	TypeLand           PropertyType = "land"
	TypeOffice         PropertyType = "office"
	TypeCommercialUnit PropertyType = "commercial_unit"
	TypeWarehouse      PropertyType = "warehouse"
)

type Operation string

const (
	OperationSale   Operation = "sale"
	OperationRental Operation = "rental"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusSold      Status = "sold"
	StatusRented    Status = "rented"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyMXN Currency = "MXN"
)

// FilterAny is the wildcard value for enumerated filter fields. An empty
// string is accepted as the same wildcard.
const FilterAny = "any"

var typeLabels = map[PropertyType]string{
	TypeHouse:          "Casa",
	TypeApartment:      "Apartamento",
	TypeLand:           "Terreno",
	TypeOffice:         "Oficina",
	TypeCommercialUnit: "Local Comercial",
	TypeWarehouse:      "Bodega",
}

var operationLabels = map[Operation]string{
	OperationSale:   "Venta",
	OperationRental: "Alquiler",
}

var statusLabels = map[Status]string{
	StatusAvailable: "Disponible",
	StatusReserved:  "Reservada",
	StatusSold:      "Vendida",
	StatusRented:    "Alquilada",
}

// UnknownLabel is rendered for any enum value outside its closed set.
const UnknownLabel = "Desconocido"

func (t PropertyType) Known() bool {
	_, ok := typeLabels[t]
	return ok
}

func (t PropertyType) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return UnknownLabel
}

func (o Operation) Known() bool {
	_, ok := operationLabels[o]
	return ok
}

func (o Operation) Label() string {
	if label, ok := operationLabels[o]; ok {
		return label
	}
	return UnknownLabel
}

func (s Status) Known() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return UnknownLabel
}

func (c Currency) Known() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyMXN:
		return true
	}
	return false
}

// Property is one real-estate listing. The store assigns ID and CreatedDate
// at creation; both are immutable afterwards.
type Property struct {
	ID           string       `gorm:"primaryKey" json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Type         PropertyType `json:"type"`
	Operation    Operation    `json:"operation"`
	Price        float64      `json:"price"`
	Currency     Currency     `json:"currency"`
	Area         float64      `json:"area"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	Parking      int          `json:"parking"`
	Address      string       `json:"address"`
	City         string       `json:"city"`
	Neighborhood string       `json:"neighborhood"`
	Images       []string     `gorm:"serializer:json" json:"images"`
	Features     []string     `gorm:"serializer:json" json:"features"`
	Status       Status       `json:"status"`
	Featured     bool         `json:"featured"`
	CreatedDate  time.Time    `json:"created_date"`
}

// Valid reports whether the record carries the required fields. Invalid
// records are still tolerated by filtering and statistics; validity only
// gates create and update.
func (p Property) Valid() bool {
	return p.Title != "" && p.City != ""
}

// FilterSet holds the current user-selected search criteria. Numeric bounds
// arrive as strings from form inputs; a non-numeric value imposes no
// constraint, matching the way the filter form behaves.
type FilterSet struct {
	Search    string       `form:"search" json:"search"`
	Type      PropertyType `form:"type" json:"type"`
	Operation Operation    `form:"operation" json:"operation"`
	MinPrice  string       `form:"minPrice" json:"minPrice"`
	MaxPrice  string       `form:"maxPrice" json:"maxPrice"`
	Bedrooms  string       `form:"bedrooms" json:"bedrooms"`
	City      string       `form:"city" json:"city"`
}

// PropertyStats aggregates the admin dashboard counters. TotalValue sums
// prices across all records regardless of their currency, reproducing the
// reference behavior; see the Statistics doc comment.
type PropertyStats struct {
	Total      int     `json:"total"`
	Available  int     `json:"available"`
	ForSale    int     `json:"for_sale"`
	TotalValue float64 `json:"total_value"`
}
