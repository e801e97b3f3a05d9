// Package llm provides the language-model client used by the chat gateway.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// RoleUser and RoleAssistant are the conversation roles accepted in history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one prior exchange in the conversation history.
type Turn struct {
	Role    string
	Content string
}

// Client is an abstraction over chat-completion providers.
type Client interface {
	// Chat sends one user message with the given system instruction and
	// prior history, and returns the assistant reply.
	Chat(ctx context.Context, system string, history []Turn, message string) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// Options configure sampling for chat completions.
type Options struct {
	Model       string
	Temperature float32
	MaxTokens   int32
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	opts   Options
}

// NewGeminiClient creates a new Gemini-backed chat client.
func NewGeminiClient(ctx context.Context, apiKey string, opts Options) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, opts: opts}, nil
}

// Chat sends the message through a Gemini chat session seeded with the
// conversation history. Exactly one attempt; callers decide about retries.
func (c *GeminiClient) Chat(ctx context.Context, system string, history []Turn, message string) (string, error) {
	model := c.client.GenerativeModel(c.opts.Model)
	model.SetTemperature(c.opts.Temperature)
	model.SetMaxOutputTokens(c.opts.MaxTokens)
	if system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}

	session := model.StartChat()
	session.History = historyToContents(history)

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// historyToContents maps conversation turns to the Gemini wire roles.
// Unknown roles are dropped rather than rejected.
func historyToContents(history []Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		var role string
		switch turn.Role {
		case RoleUser:
			role = "user"
		case RoleAssistant:
			role = "model"
		default:
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Content)},
		})
	}
	return contents
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
