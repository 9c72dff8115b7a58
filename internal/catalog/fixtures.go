package catalog

import "storefront-core/internal/domain"

// Fixtures returns the demo catalog for manual testing: a small set of
// water-treatment products with en/de/ar variants sharing a DocumentID.
func Fixtures() []domain.Product {
	return []domain.Product{
		{
			DocumentID: "doc-filter-x", RowID: "row-filter-x-en", Slug: "filter-x", Locale: "en",
			Name: "Filter X", Description: "Under-sink filter for hard water",
			CategoryLabel: "Filters", ImageRef: "/img/filter-x.jpg",
			PriceCents: 2500, CurrencyMode: "USD",
		},
		{
			DocumentID: "doc-filter-x", RowID: "row-filter-x-de", Slug: "filter-x", Locale: "de",
			Name: "Filter X", Description: "Untertisch-Filter für hartes Wasser",
			CategoryLabel: "Filteranlagen", ImageRef: "/img/filter-x.jpg",
			PriceCents: 2500, CurrencyMode: "EUR",
		},
		{
			DocumentID: "doc-filter-x", RowID: "row-filter-x-ar", Slug: "filter-x", Locale: "ar",
			Name: "فلتر إكس", Description: "فلتر تحت الحوض للمياه العسرة",
			CategoryLabel: "فلاتر", ImageRef: "/img/filter-x.jpg",
			PriceCents: 2500, CurrencyMode: "USD",
		},
		{
			DocumentID: "doc-softener-s", RowID: "row-softener-s-en", Slug: "softener-s", Locale: "en",
			Name: "Softener S", Description: "Compact apartment water softener",
			CategoryLabel: "Softeners", ImageRef: "/img/softener-s.jpg",
			PriceCents: 8900, CurrencyMode: "USD",
		},
		{
			DocumentID: "doc-softener-s", RowID: "row-softener-s-de", Slug: "softener-s", Locale: "de",
			Name: "Enthärter S", Description: "Kompakter Wasserenthärter für Wohnungen",
			CategoryLabel: "Enthärter", ImageRef: "/img/softener-s.jpg",
			PriceCents: 8900, CurrencyMode: "EUR",
		},
		{
			DocumentID: "doc-cartridge-c", RowID: "row-cartridge-c-en", Slug: "cartridge-c", Locale: "en",
			Name: "Cartridge C", Description: "Replacement cartridge, 6-month lifespan",
			CategoryLabel: "Spares", ImageRef: "/img/cartridge-c.jpg",
			PriceCents: 1200, CurrencyMode: "USD",
		},
	}
}
