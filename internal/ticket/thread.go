// Package ticket tracks one externally-owned support conversation: its
// remote-driven status, the authoritative message list, and the optimistic
// overlay of locally-sent replies awaiting confirmation.
package ticket

import (
	"sync"
	"time"

	"storefront-core/internal/domain"

	"github.com/google/uuid"
)

// SendState is the per-thread reconciliation machine for optimistic sends.
type SendState string

const (
	SendIdle       SendState = "idle"
	SendPending    SendState = "optimistic-pending"
	SendReconciled SendState = "reconciled"
	SendFailed     SendState = "failed"
)

// Thread holds the local view of one ticket conversation. The remote source
// is authoritative: status never changes locally, and whenever a remote
// snapshot arrives with a message count different from the last known one,
// the local list is replaced wholesale and every optimistic entry is
// discarded, echoed back or not.
//
// The mutex only guards the handoff between the poller goroutine and the
// caller; each individual operation is an atomic read-modify-write.
type Thread struct {
	mu sync.Mutex

	ticketID  string
	subject   string
	status    domain.TicketStatus
	messages  []domain.ChatMessage
	overlay   []domain.ChatMessage
	lastCount int
	sendState SendState

	now   func() time.Time
	newID func() string
}

// NewThread ingests the initial remote snapshot.
func NewThread(remote domain.Ticket) *Thread {
	t := &Thread{
		ticketID:  remote.ID,
		subject:   remote.Subject,
		sendState: SendIdle,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	t.status = remote.Status
	t.messages = t.ingest(remote.Messages)
	t.lastCount = len(remote.Messages)
	return t
}

func (t *Thread) TicketID() string { return t.ticketID }

func (t *Thread) Status() domain.TicketStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

func (t *Thread) SendState() SendState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sendState
}

// Messages returns the authoritative list with the optimistic overlay
// appended, as the UI displays it.
func (t *Thread) Messages() []domain.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.ChatMessage, 0, len(t.messages)+len(t.overlay))
	out = append(out, t.messages...)
	out = append(out, t.overlay...)
	return out
}

// ApplyRemote reconciles a polled snapshot. The status always follows the
// remote. The message list is replaced only when the remote count differs
// from the last known count, which also discards the whole overlay; an
// equal count is a no-op so unchanged polls cause no re-render. Reports
// whether the message list changed.
func (t *Thread) ApplyRemote(remote domain.Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status = remote.Status
	if len(remote.Messages) == t.lastCount {
		return false
	}
	t.messages = t.ingest(remote.Messages)
	t.lastCount = len(remote.Messages)
	t.overlay = nil
	if t.sendState == SendPending {
		t.sendState = SendReconciled
	}
	return true
}

// BeginSend records an optimistic reply and returns it. The caller fires the
// remote write and settles it with ConfirmSend or FailSend.
func (t *Thread) BeginSend(text string) domain.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	msg := domain.ChatMessage{
		ID:         t.newID(),
		Role:       domain.RoleUser,
		Text:       text,
		ObservedAt: t.now(),
	}
	t.overlay = append(t.overlay, msg)
	t.sendState = SendPending
	return msg
}

// ConfirmSend replaces the whole thread state from the write response and
// clears the overlay.
func (t *Thread) ConfirmSend(remote domain.Ticket) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status = remote.Status
	t.messages = t.ingest(remote.Messages)
	t.lastCount = len(remote.Messages)
	t.overlay = nil
	t.sendState = SendReconciled
}

// FailSend removes only the failed optimistic entry, leaving any other
// overlay entries untouched.
func (t *Thread) FailSend(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.overlay {
		if t.overlay[i].ID == id {
			t.overlay = append(t.overlay[:i], t.overlay[i+1:]...)
			break
		}
	}
	t.sendState = SendFailed
}

// ingest stamps a client-observed-at time on messages the conversation API
// delivered without one. The stamp is a client-side approximation, not
// server truth.
func (t *Thread) ingest(remote []domain.ChatMessage) []domain.ChatMessage {
	now := t.now()
	out := make([]domain.ChatMessage, len(remote))
	for i, m := range remote {
		if m.ObservedAt.IsZero() {
			m.ObservedAt = now
		}
		out[i] = m
	}
	return out
}
