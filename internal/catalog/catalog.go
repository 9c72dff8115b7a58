// Package catalog holds the localized product data the stub CMS serves.
package catalog

import (
	"sort"
	"strings"

	"storefront-core/internal/domain"
	"storefront-core/internal/locale"
)

// Catalog indexes localized product rows by locale. Lookups fall back to the
// default locale when the requested variant does not exist, mirroring how
// the real backend resolves partially translated entries.
type Catalog struct {
	byLocale map[string][]domain.Product
}

func New(products []domain.Product) *Catalog {
	c := &Catalog{byLocale: make(map[string][]domain.Product)}
	for _, p := range products {
		loc := p.Locale
		if loc == "" {
			loc = locale.Default
		}
		c.byLocale[loc] = append(c.byLocale[loc], p)
	}
	for loc := range c.byLocale {
		rows := c.byLocale[loc]
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Slug < rows[j].Slug })
	}
	return c
}

// BySlug returns the localized variant for slug, falling back to the default
// locale.
func (c *Catalog) BySlug(slug, loc string) (*domain.Product, error) {
	slug = strings.TrimSpace(slug)
	if p := c.find(slug, loc); p != nil {
		return p, nil
	}
	if loc != locale.Default {
		if p := c.find(slug, locale.Default); p != nil {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns one page of the locale's products plus the total count.
// Page numbering starts at 1; out-of-range pages return an empty slice.
func (c *Catalog) List(loc string, page, pageSize int) ([]domain.Product, int) {
	rows := c.byLocale[loc]
	if len(rows) == 0 && loc != locale.Default {
		rows = c.byLocale[locale.Default]
	}
	total := len(rows)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	start := (page - 1) * pageSize
	if start >= total {
		return []domain.Product{}, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	out := make([]domain.Product, end-start)
	copy(out, rows[start:end])
	return out, total
}

func (c *Catalog) find(slug, loc string) *domain.Product {
	for _, p := range c.byLocale[loc] {
		if p.Slug == slug {
			out := p
			return &out
		}
	}
	return nil
}
