// Package cart holds the client-side shopping cart. State carries the pure
// transition logic and knows nothing about persistence; Store wraps it with
// load-on-construct / save-after-every-mutation against a storage backend.
package cart

import (
	"storefront-core/internal/domain"
)

// State is the cart's in-memory representation. Lines keep insertion order
// for display. TotalItems and TotalPriceCents are cached projections of
// Lines and are recomputed inside every mutation, never updated
// incrementally by callers.
type State struct {
	Lines           []domain.CartLine `json:"lines"`
	TotalItems      int               `json:"totalItems"`
	TotalPriceCents int64             `json:"totalPriceCents"`
}

// AddItem merges the product into the cart. Identity is resolved through
// Product.Key, so locale variants of the same document land on one line.
// An existing line keeps its add-time snapshot and gains quantityDelta;
// a new line snapshots the product's current fields. quantityDelta below 1
// is treated as 1.
func (s *State) AddItem(p domain.Product, quantityDelta int) {
	if quantityDelta < 1 {
		quantityDelta = 1
	}
	key := p.Key()
	for i := range s.Lines {
		if s.Lines[i].ID == key {
			s.Lines[i].Quantity += quantityDelta
			s.recompute()
			return
		}
	}
	s.Lines = append(s.Lines, domain.CartLine{
		ID:             key,
		Quantity:       quantityDelta,
		UnitPriceCents: p.PriceCents,
		Name:           p.Name,
		CategoryLabel:  p.CategoryLabel,
		ImageRef:       p.ImageRef,
		CurrencyMode:   p.CurrencyMode,
	})
	s.recompute()
}

// RemoveItem deletes the matching line. Absent ids are a no-op.
func (s *State) RemoveItem(id string) {
	for i := range s.Lines {
		if s.Lines[i].ID == id {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			s.recompute()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to an absolute value. Values below
// 1 are rejected as a no-op: removal is expressed through RemoveItem, never
// through a zero quantity.
func (s *State) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range s.Lines {
		if s.Lines[i].ID == id {
			s.Lines[i].Quantity = quantity
			s.recompute()
			return
		}
	}
}

// Clear empties the cart.
func (s *State) Clear() {
	s.Lines = nil
	s.recompute()
}

// RefreshItem applies a partial snapshot update to the matching line without
// touching its quantity, used to re-localize presentation fields after a
// locale switch. Totals are recomputed only when the price changed.
func (s *State) RefreshItem(id string, patch domain.LinePatch) {
	for i := range s.Lines {
		if s.Lines[i].ID != id {
			continue
		}
		line := &s.Lines[i]
		if patch.Name != nil {
			line.Name = *patch.Name
		}
		if patch.CategoryLabel != nil {
			line.CategoryLabel = *patch.CategoryLabel
		}
		if patch.ImageRef != nil {
			line.ImageRef = *patch.ImageRef
		}
		if patch.CurrencyMode != nil {
			line.CurrencyMode = *patch.CurrencyMode
		}
		if patch.UnitPriceCents != nil && *patch.UnitPriceCents != line.UnitPriceCents {
			line.UnitPriceCents = *patch.UnitPriceCents
			s.recompute()
		}
		return
	}
}

func (s *State) recompute() {
	items := 0
	var price int64
	for _, line := range s.Lines {
		items += line.Quantity
		price += line.LineTotal()
	}
	s.TotalItems = items
	s.TotalPriceCents = price
}

// normalize drops lines that violate the quantity floor and recomputes the
// cached totals. Used after rehydrating a snapshot that may predate the
// current invariants.
func (s *State) normalize() {
	kept := s.Lines[:0]
	for _, line := range s.Lines {
		if line.Quantity >= 1 {
			kept = append(kept, line)
		}
	}
	s.Lines = kept
	if len(s.Lines) == 0 {
		s.Lines = nil
	}
	s.recompute()
}
