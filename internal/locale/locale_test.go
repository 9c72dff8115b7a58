package locale

import (
	"strings"
	"testing"
)

func TestDir(t *testing.T) {
	if got := Dir("en"); got != "ltr" {
		t.Fatalf("en: %s", got)
	}
	if got := Dir("ar"); got != "rtl" {
		t.Fatalf("ar: %s", got)
	}
	if got := Dir("ar-SA"); got != "rtl" {
		t.Fatalf("ar-SA: %s", got)
	}
	if got := Dir("not a locale"); got != "ltr" {
		t.Fatalf("garbage input: %s", got)
	}
}

func TestFormatPriceCarriesSymbolAndAmount(t *testing.T) {
	out := FormatPrice(2500, "USD", "en")
	if !strings.Contains(out, "25") {
		t.Fatalf("amount missing from %q", out)
	}
	if !strings.Contains(out, "$") && !strings.Contains(out, "USD") {
		t.Fatalf("currency missing from %q", out)
	}
}

func TestFormatPriceUnknownCurrencyFallsBack(t *testing.T) {
	out := FormatPrice(1234, "XXXX", "en")
	if out != "XXXX 12.34" {
		t.Fatalf("unexpected fallback: %q", out)
	}
}

func TestFormatPriceUnknownLocaleFallsBack(t *testing.T) {
	out := FormatPrice(2500, "EUR", "not a locale")
	if !strings.Contains(out, "25") {
		t.Fatalf("unexpected output: %q", out)
	}
}
