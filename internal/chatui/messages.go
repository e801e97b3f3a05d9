// Package chatui is the interactive terminal chat client for the portfolio
// server. It renders the conversation with the charmbracelet stack and talks
// to a running server's /api/chat endpoint.
package chatui

import (
	"github.com/google/uuid"
)

// Message roles. The greeting and local status lines are system messages;
// only user and assistant turns are ever sent upstream.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Greeting is the single message every fresh conversation starts with.
const Greeting = "Tired of reading resumes? Just ask me about Alex Jordan."

// Message is one entry in the conversation transcript.
type Message struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

func newMessage(role, content string) Message {
	return Message{ID: uuid.NewString(), Role: role, Content: content}
}

func greetingMessage() Message {
	return newMessage(RoleSystem, Greeting)
}

// replyMsg carries the outcome of a chat request back into Update.
type replyMsg struct {
	content string
	err     error
}

// fillerTickMsg fires when a request has been in flight long enough to swap
// the typing indicator for the filler phrase. seq guards against ticks from
// already-completed requests.
type fillerTickMsg struct {
	seq int
}

// resizeTickMsg applies a debounced window resize. seq guards against stale
// ticks from superseded resizes.
type resizeTickMsg struct {
	seq int
}

// pageMsg carries the fetched portfolio page text for the split view.
type pageMsg struct {
	content string
	err     error
}
