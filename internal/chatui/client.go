package chatui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Client talks to a running portfolio server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// Generous timeout: model calls are slow and the widget never
		// cancels an in-flight request.
		http: &http.Client{Timeout: 120 * time.Second},
	}
}

type chatRequest struct {
	Message  string        `json:"message"`
	Messages []chatHistory `json:"messages,omitempty"`
}

type chatHistory struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Details  string `json:"details"`
}

// Send posts one message with the prior conversation turns and returns the
// assistant reply. System messages are local to the widget and never sent.
func (c *Client) Send(message string, history []Message) (string, error) {
	req := chatRequest{Message: message}
	for _, msg := range history {
		if msg.Role != RoleUser && msg.Role != RoleAssistant {
			continue
		}
		req.Messages = append(req.Messages, chatHistory{Role: msg.Role, Content: msg.Content})
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encoding chat request: %w", err)
	}

	resp, err := c.http.Post(c.baseURL+"/api/chat", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("sending chat request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading chat response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decoding chat response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != "" {
			return "", fmt.Errorf("server: %s", parsed.Error)
		}
		return "", fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return parsed.Response, nil
}

// FetchPage retrieves the portfolio page and projects it to plain text for
// the split view's main pane.
func (c *Client) FetchPage() (string, error) {
	resp, err := c.http.Get(c.baseURL + "/")
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing page: %w", err)
	}

	var sb strings.Builder
	doc.Find("main section, main header").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	})
	if sb.Len() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	return strings.TrimSpace(sb.String()), nil
}
