package domain

// CartLine is one product's presence in the cart. Name, CategoryLabel,
// ImageRef, UnitPriceCents and CurrencyMode are snapshots captured at
// add-time and are not re-fetched when the source product changes.
type CartLine struct {
	ID             string `json:"id"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Name           string `json:"name"`
	CategoryLabel  string `json:"categoryLabel,omitempty"`
	ImageRef       string `json:"imageRef,omitempty"`
	CurrencyMode   string `json:"currencyMode"`
}

// LineTotal is derived, never stored.
func (l CartLine) LineTotal() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// LinePatch carries a partial snapshot update for RefreshItem, used to
// re-localize presentation fields after a locale switch. Nil fields are
// left untouched.
type LinePatch struct {
	Name           *string `json:"name,omitempty"`
	CategoryLabel  *string `json:"categoryLabel,omitempty"`
	ImageRef       *string `json:"imageRef,omitempty"`
	CurrencyMode   *string `json:"currencyMode,omitempty"`
	UnitPriceCents *int64  `json:"unitPriceCents,omitempty"`
}
