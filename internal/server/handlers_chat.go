package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexjordan/folio/internal/llm"
)

var validate = validator.New()

// ChatMessage is one turn of supplied conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the request body for POST /api/chat.
type ChatRequest struct {
	Message  string        `json:"message" validate:"required"`
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse is the success response for POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
}

// handleChat validates the request, assembles the system prompt, makes a
// single upstream call, and returns the reply. No retries; the caller decides
// whether to re-send.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, &ErrValidation{Message: "Invalid JSON in request body"})
		return
	}

	// message is decoded leniently: a body that parses but carries a
	// non-string message is a validation problem, not malformed JSON.
	var raw struct {
		Message  json.RawMessage `json:"message"`
		Messages []ChatMessage   `json:"messages"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		s.writeError(w, &ErrValidation{Message: "Invalid JSON in request body"})
		return
	}

	req := ChatRequest{Messages: raw.Messages}
	if len(raw.Message) > 0 {
		if err := json.Unmarshal(raw.Message, &req.Message); err != nil {
			s.writeError(w, &ErrValidation{Message: "Message is required and must be a string"})
			return
		}
	}
	if err := validate.Struct(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		s.writeError(w, &ErrValidation{Message: "Message is required and must be a string"})
		return
	}

	// Configuration is checked before any upstream work: a missing credential
	// must never result in an outbound call.
	if s.llm == nil {
		s.writeError(w, &ErrConfiguration{Message: "GEMINI_API_KEY is not configured"})
		return
	}

	systemPrompt, err := s.builder.Build(r.Context())
	if err != nil {
		log.Printf("Error building system prompt: %v", err)
		s.writeError(w, &ErrUpstream{Message: "Service temporarily unavailable", Cause: err})
		return
	}

	history := make([]llm.Turn, 0, len(req.Messages))
	for _, msg := range req.Messages {
		// Only user and assistant turns are forwarded; anything else in the
		// supplied history is dropped.
		if msg.Role != llm.RoleUser && msg.Role != llm.RoleAssistant {
			continue
		}
		history = append(history, llm.Turn{Role: msg.Role, Content: msg.Content})
	}

	reply, err := s.llm.Chat(r.Context(), systemPrompt, history, req.Message)
	if err != nil {
		log.Printf("Error processing chat request: %v", err)
		s.writeError(w, &ErrUpstream{Message: "Service temporarily unavailable", Cause: err})
		return
	}
	if reply == "" {
		reply = "I apologize, but I couldn't generate a response."
	}

	s.jsonResponse(w, http.StatusOK, ChatResponse{Response: reply, Success: true})
}
