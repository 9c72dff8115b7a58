package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"storefront-core/internal/domain"
)

// LoadJSON reads a catalog export (a JSON array of products) and returns the
// valid rows plus the number imported. Rows missing a slug, name or row id
// are rejected with a positional error rather than silently dropped.
func LoadJSON(r io.Reader) ([]domain.Product, int, error) {
	var rows []domain.Product
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, 0, fmt.Errorf("decode catalog: %w", err)
	}
	for i, p := range rows {
		if strings.TrimSpace(p.RowID) == "" {
			return nil, 0, fmt.Errorf("row %d: id required", i)
		}
		if strings.TrimSpace(p.Slug) == "" {
			return nil, 0, fmt.Errorf("row %d: slug required", i)
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, 0, fmt.Errorf("row %d: name required", i)
		}
		if p.PriceCents < 0 {
			return nil, 0, fmt.Errorf("row %d: negative price", i)
		}
	}
	return rows, len(rows), nil
}
