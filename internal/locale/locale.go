// Package locale carries the presentation-side locale helpers: static
// per-locale price formatting and text direction. The stores themselves are
// locale-agnostic; only snapshot fields and labels pass through here.
package locale

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Default is the storefront's fallback locale.
const Default = "en"

var rtlScripts = map[string]bool{
	"ar": true,
	"fa": true,
	"he": true,
	"ur": true,
}

// Dir returns "rtl" or "ltr" for the locale, defaulting to "ltr".
func Dir(loc string) string {
	tag, err := language.Parse(loc)
	if err != nil {
		return "ltr"
	}
	base, _ := tag.Base()
	if rtlScripts[base.String()] {
		return "rtl"
	}
	return "ltr"
}

// FormatPrice renders integer cents in the locale's conventions with the
// currency symbol. Static formatting only; no conversion between currencies
// happens here. Unknown locales fall back to English, unknown currency codes
// to a bare "CODE 12.34" rendering.
func FormatPrice(cents int64, currencyCode, loc string) string {
	tag, err := language.Parse(loc)
	if err != nil {
		tag = language.English
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return fmt.Sprintf("%s %.2f", currencyCode, float64(cents)/100)
	}
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(float64(cents) / 100)))
}
