package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in a conversational thread. ObservedAt is the
// client-observed ingestion time, a client-side approximation rather than
// server truth (the conversation API carries no per-message timestamps).
type ChatMessage struct {
	ID         string    `json:"id"`
	Role       Role      `json:"role"`
	Text       string    `json:"text"`
	ObservedAt time.Time `json:"observedAt"`
}

// ChatSession is one independent conversational thread in the chat widget.
type ChatSession struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Messages     []ChatMessage `json:"messages"`
	CreatedAt    time.Time     `json:"createdAt"`
	LastActivity time.Time     `json:"lastActivity"`
}
