package catalog

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultCurrency is used for products without a currency.
const DefaultCurrency = "USD"

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// Currencies without minor units.
var wholeUnits = map[string]bool{
	"JPY": true,
	"KRW": true,
}

// toMinor converts a price in major units to minor units.
func toMinor(major float64, currency string) int64 {
	if wholeUnits[strings.ToUpper(currency)] {
		return int64(math.Round(major))
	}
	return int64(math.Round(major * 100))
}

// FormatPrice renders minor units with grouped thousands, e.g. "$1,299.00"
// or "1,299.00 CHF" for currencies without a symbol.
func FormatPrice(minor int64, currency string) string {
	currency = strings.ToUpper(currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	var amount string
	if wholeUnits[currency] {
		amount = humanize.Comma(minor)
	} else {
		amount = humanize.FormatFloat("#,###.##", float64(minor)/100)
	}

	if sym, ok := symbols[currency]; ok {
		return sym + amount
	}
	return amount + " " + currency
}

// PriceText renders the product's price.
func (p Product) PriceText() string {
	return FormatPrice(p.Price, p.Currency)
}
