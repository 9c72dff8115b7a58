package domain

import "time"

// Product is one localized variant of a catalog entry as served by the CMS.
// DocumentID is stable across locale variants of the same product; RowID is
// unique per localized row.
type Product struct {
	DocumentID    string    `json:"documentId,omitempty"`
	RowID         string    `json:"id"`
	Slug          string    `json:"slug"`
	Locale        string    `json:"locale"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	CategoryLabel string    `json:"categoryLabel,omitempty"`
	ImageRef      string    `json:"imageRef,omitempty"`
	PriceCents    int64     `json:"priceCents"`
	CurrencyMode  string    `json:"currencyMode"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Key resolves the cart identity of the product: the document-level id when
// present, the row id otherwise.
func (p Product) Key() string {
	if p.DocumentID != "" {
		return p.DocumentID
	}
	return p.RowID
}
