package cart

import (
	"reflect"
	"testing"

	"storefront-core/internal/domain"
)

func filterX() domain.Product {
	return domain.Product{
		DocumentID:    "A",
		RowID:         "row-a-en",
		Slug:          "filter-x",
		Locale:        "en",
		Name:          "Filter X",
		CategoryLabel: "Filters",
		PriceCents:    2500,
		CurrencyMode:  "USD",
	}
}

func checkTotals(t *testing.T, s State) {
	t.Helper()
	items := 0
	var price int64
	for _, line := range s.Lines {
		items += line.Quantity
		price += line.UnitPriceCents * int64(line.Quantity)
	}
	if s.TotalItems != items {
		t.Fatalf("TotalItems drifted: cached %d, recomputed %d", s.TotalItems, items)
	}
	if s.TotalPriceCents != price {
		t.Fatalf("TotalPriceCents drifted: cached %d, recomputed %d", s.TotalPriceCents, price)
	}
}

func TestScenarioAddUpdateRemove(t *testing.T) {
	var s State

	s.AddItem(filterX(), 1)
	if s.TotalItems != 1 || s.TotalPriceCents != 2500 {
		t.Fatalf("after first add: items=%d price=%d", s.TotalItems, s.TotalPriceCents)
	}

	s.AddItem(filterX(), 1)
	if s.TotalItems != 2 || s.TotalPriceCents != 5000 {
		t.Fatalf("after second add: items=%d price=%d", s.TotalItems, s.TotalPriceCents)
	}

	s.UpdateQuantity("A", 5)
	if s.TotalItems != 5 || s.TotalPriceCents != 12500 {
		t.Fatalf("after update: items=%d price=%d", s.TotalItems, s.TotalPriceCents)
	}

	s.RemoveItem("A")
	if s.TotalItems != 0 || s.TotalPriceCents != 0 || len(s.Lines) != 0 {
		t.Fatalf("after remove: items=%d price=%d lines=%d", s.TotalItems, s.TotalPriceCents, len(s.Lines))
	}
	checkTotals(t, s)
}

func TestIdentityMergesLocaleVariants(t *testing.T) {
	var s State

	en := filterX()
	de := filterX()
	de.RowID = "row-a-de"
	de.Locale = "de"
	de.Name = "Filter X (DE)"

	s.AddItem(en, 1)
	s.AddItem(de, 1)

	if len(s.Lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(s.Lines))
	}
	if s.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", s.Lines[0].Quantity)
	}
	// snapshot from the first add wins; the merge never re-snapshots
	if s.Lines[0].Name != "Filter X" {
		t.Fatalf("merge overwrote snapshot name: %s", s.Lines[0].Name)
	}
	checkTotals(t, s)
}

func TestIdentityFallsBackToRowID(t *testing.T) {
	var s State

	p := filterX()
	p.DocumentID = ""
	s.AddItem(p, 1)

	if s.Lines[0].ID != "row-a-en" {
		t.Fatalf("expected row id fallback, got %s", s.Lines[0].ID)
	}
}

func TestAddItemDeltaFloor(t *testing.T) {
	var s State
	s.AddItem(filterX(), 0)
	if s.TotalItems != 1 {
		t.Fatalf("zero delta should add one, got %d", s.TotalItems)
	}
}

func TestRemoveAbsentIsIdempotent(t *testing.T) {
	var s State
	s.AddItem(filterX(), 2)
	before := s
	beforeLines := make([]domain.CartLine, len(s.Lines))
	copy(beforeLines, s.Lines)

	s.RemoveItem("nope")

	if !reflect.DeepEqual(s.Lines, beforeLines) || s.TotalItems != before.TotalItems || s.TotalPriceCents != before.TotalPriceCents {
		t.Fatalf("remove of absent id changed state: %+v", s)
	}
}

func TestUpdateQuantityFloor(t *testing.T) {
	var s State
	s.AddItem(filterX(), 1)

	s.UpdateQuantity("A", 0)
	s.UpdateQuantity("A", -1)

	if s.Lines[0].Quantity != 1 || s.TotalItems != 1 || s.TotalPriceCents != 2500 {
		t.Fatalf("quantity floor violated: %+v", s)
	}
}

func TestUpdateQuantityAbsentIsNoop(t *testing.T) {
	var s State
	s.AddItem(filterX(), 1)
	s.UpdateQuantity("nope", 7)
	if s.TotalItems != 1 {
		t.Fatalf("update of absent id changed totals: %d", s.TotalItems)
	}
}

func TestClear(t *testing.T) {
	var s State
	s.AddItem(filterX(), 3)
	s.Clear()
	if len(s.Lines) != 0 || s.TotalItems != 0 || s.TotalPriceCents != 0 {
		t.Fatalf("clear left state behind: %+v", s)
	}
}

func TestRefreshItemRelocalizesWithoutTotals(t *testing.T) {
	var s State
	s.AddItem(filterX(), 2)

	name := "Filter X (DE)"
	label := "Filteranlagen"
	s.RefreshItem("A", domain.LinePatch{Name: &name, CategoryLabel: &label})

	if s.Lines[0].Name != name || s.Lines[0].CategoryLabel != label {
		t.Fatalf("patch not applied: %+v", s.Lines[0])
	}
	if s.Lines[0].Quantity != 2 {
		t.Fatalf("refresh changed quantity: %d", s.Lines[0].Quantity)
	}
	if s.TotalPriceCents != 5000 {
		t.Fatalf("refresh without price change moved totals: %d", s.TotalPriceCents)
	}
}

func TestRefreshItemPriceChangeRecomputes(t *testing.T) {
	var s State
	s.AddItem(filterX(), 2)

	price := int64(3000)
	s.RefreshItem("A", domain.LinePatch{UnitPriceCents: &price})

	if s.TotalPriceCents != 6000 {
		t.Fatalf("expected recomputed total 6000, got %d", s.TotalPriceCents)
	}
	checkTotals(t, s)
}

func TestInsertionOrderPreserved(t *testing.T) {
	var s State

	second := filterX()
	second.DocumentID = "B"
	second.Name = "Filter Y"

	s.AddItem(filterX(), 1)
	s.AddItem(second, 1)
	s.AddItem(filterX(), 1)

	if s.Lines[0].ID != "A" || s.Lines[1].ID != "B" {
		t.Fatalf("display order changed: %s, %s", s.Lines[0].ID, s.Lines[1].ID)
	}
}
