package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"storefront-core/internal/domain"
	"storefront-core/internal/storage"
)

// StorageKey is the fixed namespace the cart snapshot lives under.
const StorageKey = "storefront.cart"

// Store is the single source of truth for the client's cart. It is confined
// to one goroutine, mirroring the UI's sequential task queue: mutations are
// synchronous read-modify-write on in-memory state followed by a best-effort
// persistence write. A failed write is logged and never rolls back the
// in-memory change.
//
// Two clients sharing one persisted key are last-writer-wins on the backend;
// cross-instance consistency is an accepted limitation.
type Store struct {
	backend storage.Store
	logger  *log.Logger
	state   State
}

// NewStore rehydrates the cart from the backend, or starts empty when no
// snapshot exists or the snapshot fails to decode. Decode failures are
// logged, not surfaced: a corrupt snapshot must not brick the cart.
func NewStore(ctx context.Context, backend storage.Store, logger *log.Logger) *Store {
	s := &Store{backend: backend, logger: logger}
	data, err := backend.Get(ctx, StorageKey)
	switch {
	case err == nil:
		var state State
		if jsonErr := json.Unmarshal(data, &state); jsonErr != nil {
			logger.Printf("cart: discarding unreadable snapshot: %v", jsonErr)
		} else {
			state.normalize()
			s.state = state
		}
	case errors.Is(err, domain.ErrNotFound):
		// first load, empty cart
	default:
		logger.Printf("cart: load snapshot: %v", err)
	}
	return s
}

// State returns a copy of the current cart state for reads; mutating the
// copy does not affect the store.
func (s *Store) State() State {
	out := s.state
	out.Lines = make([]domain.CartLine, len(s.state.Lines))
	copy(out.Lines, s.state.Lines)
	return out
}

func (s *Store) AddItem(ctx context.Context, p domain.Product, quantityDelta int) {
	s.state.AddItem(p, quantityDelta)
	s.persist(ctx)
}

func (s *Store) RemoveItem(ctx context.Context, id string) {
	s.state.RemoveItem(id)
	s.persist(ctx)
}

func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) {
	s.state.UpdateQuantity(id, quantity)
	s.persist(ctx)
}

func (s *Store) Clear(ctx context.Context) {
	s.state.Clear()
	s.persist(ctx)
}

func (s *Store) RefreshItem(ctx context.Context, id string, patch domain.LinePatch) {
	s.state.RefreshItem(id, patch)
	s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Printf("cart: encode snapshot: %v", err)
		return
	}
	if err := s.backend.Set(ctx, StorageKey, data); err != nil {
		s.logger.Printf("cart: persist snapshot: %v", err)
	}
}
