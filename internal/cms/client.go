// Package cms is the JSON-over-HTTP client for the headless backend. Every
// read takes locale as a query dimension; failures surface as errors
// carrying the server's message.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront-core/internal/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ProductPage is one page of a paginated product listing.
type ProductPage struct {
	Data     []domain.Product `json:"data"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
	Total    int              `json:"total"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *Client) ProductBySlug(ctx context.Context, slug, locale string) (*domain.Product, error) {
	var out domain.Product
	path := "/api/products/" + url.PathEscape(slug)
	if err := c.get(ctx, path, url.Values{"locale": {locale}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProducts(ctx context.Context, locale string, page, pageSize int) (ProductPage, error) {
	var out ProductPage
	q := url.Values{
		"locale":   {locale},
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(pageSize)},
	}
	if err := c.get(ctx, "/api/products", q, &out); err != nil {
		return ProductPage{}, err
	}
	return out, nil
}

func (c *Client) TicketByID(ctx context.Context, id string) (domain.Ticket, error) {
	var out domain.Ticket
	if err := c.get(ctx, "/api/tickets/"+url.PathEscape(id), nil, &out); err != nil {
		return domain.Ticket{}, err
	}
	return out, nil
}

type CreateTicketInput struct {
	Subject string `json:"subject"`
	Text    string `json:"text"`
	Locale  string `json:"locale,omitempty"`
}

func (c *Client) CreateTicket(ctx context.Context, in CreateTicketInput) (domain.Ticket, error) {
	var out domain.Ticket
	if err := c.post(ctx, "/api/tickets", in, &out); err != nil {
		return domain.Ticket{}, err
	}
	return out, nil
}

// AppendReply posts a customer reply and returns the full updated ticket;
// callers adopt the response wholesale.
func (c *Client) AppendReply(ctx context.Context, ticketID, text string) (domain.Ticket, error) {
	var out domain.Ticket
	body := map[string]string{"text": text}
	if err := c.post(ctx, "/api/tickets/"+url.PathEscape(ticketID)+"/replies", body, &out); err != nil {
		return domain.Ticket{}, err
	}
	return out, nil
}

// AssistantReply asks the assistant endpoint for a chat-widget answer.
func (c *Client) AssistantReply(ctx context.Context, locale, text string) (string, error) {
	var out struct {
		Text string `json:"text"`
	}
	body := map[string]string{"text": text, "locale": locale}
	if err := c.post(ctx, "/api/assistant/reply", body, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", req.URL.Path, domain.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &envelope) == nil && envelope.Error != "" {
			return fmt.Errorf("cms: %s", envelope.Error)
		}
		return fmt.Errorf("cms: unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
