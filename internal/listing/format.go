package listing

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"inmolista/server/internal/models"
)

// ErrInvalidCurrency is returned when a price is formatted with an explicit
// currency code outside the supported set. An absent code falls back to USD;
// an invalid one is a caller bug and fails loudly.
var ErrInvalidCurrency = errors.New("unsupported currency code")

var currencySymbols = map[models.Currency]string{
	models.CurrencyUSD: "$",
	models.CurrencyEUR: "€",
	models.CurrencyMXN: "$",
}

var pricePrinter = message.NewPrinter(language.MustParse("es-MX"))

// FormatPrice renders an amount as a display string in the es-MX convention:
// symbol prefix, thousands grouping, no decimal places. The formatter is
// operation-agnostic; the rental "/mes" suffix belongs to the caller.
func FormatPrice(amount float64, code models.Currency) (string, error) {
	if code == "" {
		code = models.CurrencyUSD
	}
	symbol, ok := currencySymbols[code]
	if !ok {
		return "", ErrInvalidCurrency
	}
	return pricePrinter.Sprintf("%s%v", symbol,
		number.Decimal(amount, number.MaxFractionDigits(0))), nil
}
