package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"storefront-core/internal/domain"
	"storefront-core/internal/storage"

	"github.com/google/uuid"
)

// ErrTicketClosed rejects replies to a terminal ticket.
var ErrTicketClosed = errors.New("ticket closed")

const ticketKeyPrefix = "cms.tickets."

// TicketStore keeps the stub CMS's tickets in the key-value backend, one
// entry per ticket. Status transitions happen only here, on the server side;
// clients observe them through polling.
type TicketStore struct {
	backend storage.Store
	logger  *log.Logger
	now     func() time.Time
	newID   func() string
}

func NewTicketStore(backend storage.Store, logger *log.Logger) *TicketStore {
	return &TicketStore{
		backend: backend,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (s *TicketStore) Create(ctx context.Context, subject, text, loc string) (domain.Ticket, error) {
	now := s.now()
	ticket := domain.Ticket{
		ID:      s.newID(),
		Subject: subject,
		Status:  domain.TicketOpen,
		Locale:  loc,
		Messages: []domain.ChatMessage{{
			ID:   s.newID(),
			Role: domain.RoleUser,
			Text: text,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.save(ctx, ticket); err != nil {
		return domain.Ticket{}, err
	}
	return ticket, nil
}

func (s *TicketStore) Get(ctx context.Context, id string) (domain.Ticket, error) {
	data, err := s.backend.Get(ctx, ticketKeyPrefix+id)
	if err != nil {
		return domain.Ticket{}, err
	}
	var ticket domain.Ticket
	if err := json.Unmarshal(data, &ticket); err != nil {
		return domain.Ticket{}, fmt.Errorf("decode ticket %s: %w", id, err)
	}
	return ticket, nil
}

// AppendCustomerReply adds a customer message and moves the ticket to
// awaiting-reply. Closed tickets reject the reply.
func (s *TicketStore) AppendCustomerReply(ctx context.Context, id, text string) (domain.Ticket, error) {
	return s.append(ctx, id, domain.RoleUser, text, domain.TicketAwaitingReply)
}

// AppendAgentReply adds a support-agent message and moves the ticket to
// replied.
func (s *TicketStore) AppendAgentReply(ctx context.Context, id, text string) (domain.Ticket, error) {
	return s.append(ctx, id, domain.RoleAssistant, text, domain.TicketReplied)
}

// Close moves the ticket to its terminal status.
func (s *TicketStore) Close(ctx context.Context, id string) (domain.Ticket, error) {
	ticket, err := s.Get(ctx, id)
	if err != nil {
		return domain.Ticket{}, err
	}
	ticket.Status = domain.TicketClosed
	ticket.UpdatedAt = s.now()
	if err := s.save(ctx, ticket); err != nil {
		return domain.Ticket{}, err
	}
	return ticket, nil
}

func (s *TicketStore) append(ctx context.Context, id string, role domain.Role, text string, next domain.TicketStatus) (domain.Ticket, error) {
	ticket, err := s.Get(ctx, id)
	if err != nil {
		return domain.Ticket{}, err
	}
	if ticket.Status.Terminal() {
		return domain.Ticket{}, ErrTicketClosed
	}
	ticket.Messages = append(ticket.Messages, domain.ChatMessage{
		ID:   s.newID(),
		Role: role,
		Text: text,
	})
	ticket.Status = next
	ticket.UpdatedAt = s.now()
	if err := s.save(ctx, ticket); err != nil {
		return domain.Ticket{}, err
	}
	return ticket, nil
}

func (s *TicketStore) save(ctx context.Context, ticket domain.Ticket) error {
	data, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("encode ticket %s: %w", ticket.ID, err)
	}
	return s.backend.Set(ctx, ticketKeyPrefix+ticket.ID, data)
}
