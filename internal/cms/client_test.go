package cms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-core/internal/domain"
)

func TestProductBySlugSendsLocale(t *testing.T) {
	var gotPath, gotLocale string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLocale = r.URL.Query().Get("locale")
		json.NewEncoder(w).Encode(domain.Product{
			DocumentID: "A", RowID: "row-a-de", Slug: "filter-x", Locale: "de",
			Name: "Filter X (DE)", PriceCents: 2500, CurrencyMode: "EUR",
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	p, err := client.ProductBySlug(context.Background(), "filter-x", "de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/products/filter-x" || gotLocale != "de" {
		t.Fatalf("unexpected request: %s locale=%s", gotPath, gotLocale)
	}
	if p.Name != "Filter X (DE)" || p.Key() != "A" {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "product not found"})
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.ProductBySlug(context.Background(), "missing", "en")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServerErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "catalog unavailable"})
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.ListProducts(context.Background(), "en", 1, 20)
	if err == nil || err.Error() != "cms: catalog unavailable" {
		t.Fatalf("expected server message surfaced, got %v", err)
	}
}

func TestListProductsPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("pageSize") != "10" || q.Get("locale") != "en" {
			t.Errorf("unexpected query: %v", q)
		}
		json.NewEncoder(w).Encode(ProductPage{
			Data:     []domain.Product{{RowID: "row-1", Slug: "filter-x", Name: "Filter X"}},
			Page:     2,
			PageSize: 10,
			Total:    11,
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	page, err := client.ListProducts(context.Background(), "en", 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 11 || len(page.Data) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestAppendReplyReturnsFullTicket(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/tickets/t1/replies" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["text"] != "still leaking" {
			t.Errorf("unexpected body: %v", body)
		}
		json.NewEncoder(w).Encode(domain.Ticket{
			ID:     "t1",
			Status: domain.TicketAwaitingReply,
			Messages: []domain.ChatMessage{
				{ID: "m1", Role: domain.RoleUser, Text: "it leaks"},
				{ID: "m2", Role: domain.RoleUser, Text: "still leaking"},
			},
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	ticket, err := client.AppendReply(context.Background(), "t1", "still leaking")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket.Status != domain.TicketAwaitingReply || len(ticket.Messages) != 2 {
		t.Fatalf("unexpected ticket: %+v", ticket)
	}
}

func TestAssistantReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["locale"] != "de" {
			t.Errorf("locale not forwarded: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]string{"text": "Gerne!"})
	}))
	defer srv.Close()

	client := New(srv.URL)
	text, err := client.AssistantReply(context.Background(), "de", "Haben Sie Filter?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Gerne!" {
		t.Fatalf("unexpected reply: %q", text)
	}
}
