package catalog

import (
	"errors"
	"strings"
	"testing"

	"storefront-core/internal/domain"
)

func TestBySlugPicksLocaleVariant(t *testing.T) {
	c := New(Fixtures())

	p, err := c.BySlug("filter-x", "de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Locale != "de" || p.CategoryLabel != "Filteranlagen" {
		t.Fatalf("unexpected variant: %+v", p)
	}
	if p.DocumentID != "doc-filter-x" {
		t.Fatalf("locale variants must share the document id: %s", p.DocumentID)
	}
}

func TestBySlugFallsBackToDefaultLocale(t *testing.T) {
	c := New(Fixtures())

	// cartridge-c has no de variant
	p, err := c.BySlug("cartridge-c", "de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Locale != "en" {
		t.Fatalf("expected default-locale fallback, got %s", p.Locale)
	}
}

func TestBySlugMissing(t *testing.T) {
	c := New(Fixtures())
	if _, err := c.BySlug("no-such-product", "en"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPaginates(t *testing.T) {
	c := New(Fixtures())

	page1, total := c.List("en", 1, 2)
	if total != 4 || len(page1) != 2 {
		t.Fatalf("page 1: total=%d len=%d", total, len(page1))
	}
	page2, _ := c.List("en", 2, 2)
	if len(page2) != 2 {
		t.Fatalf("page 2: len=%d", len(page2))
	}
	page3, _ := c.List("en", 3, 2)
	if len(page3) != 0 {
		t.Fatalf("out-of-range page must be empty, got %d", len(page3))
	}
}

func TestLoadJSON(t *testing.T) {
	input := `[
		{"id":"row-1","slug":"filter-x","locale":"en","name":"Filter X","priceCents":2500,"currencyMode":"USD"},
		{"id":"row-2","slug":"filter-x","locale":"de","name":"Filter X","priceCents":2500,"currencyMode":"EUR"}
	]`
	rows, n, err := LoadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 || rows[1].Locale != "de" {
		t.Fatalf("unexpected import: n=%d rows=%+v", n, rows)
	}
}

func TestLoadJSONRejectsInvalidRow(t *testing.T) {
	input := `[{"id":"row-1","slug":"","locale":"en","name":"Filter X"}]`
	_, _, err := LoadJSON(strings.NewReader(input))
	if err == nil || !strings.Contains(err.Error(), "slug required") {
		t.Fatalf("expected slug validation error, got %v", err)
	}
}
