package domain

import "time"

// TicketStatus is driven entirely by the remote source; the client never
// transitions a ticket itself.
type TicketStatus string

const (
	TicketOpen          TicketStatus = "open"
	TicketAwaitingReply TicketStatus = "awaiting-reply"
	TicketReplied       TicketStatus = "replied"
	TicketClosed        TicketStatus = "closed"
)

// Terminal reports whether no further transitions or polling may occur.
func (s TicketStatus) Terminal() bool {
	return s == TicketClosed
}

// Ticket is a support ticket with its conversation as held by the CMS.
type Ticket struct {
	ID        string        `json:"id"`
	Subject   string        `json:"subject"`
	Status    TicketStatus  `json:"status"`
	Locale    string        `json:"locale,omitempty"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
