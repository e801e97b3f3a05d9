package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexjordan/folio/internal/content"
	"github.com/alexjordan/folio/internal/llm"
)

// stubClient is a scripted llm.Client for handler tests.
type stubClient struct {
	reply string
	err   error

	calls      int
	gotSystem  string
	gotHistory []llm.Turn
	gotMessage string
}

func (c *stubClient) Chat(_ context.Context, system string, history []llm.Turn, message string) (string, error) {
	c.calls++
	c.gotSystem = system
	c.gotHistory = history
	c.gotMessage = message
	return c.reply, c.err
}

func (c *stubClient) Close() error { return nil }

// writeFixture creates a minimal content tree and returns its root.
func writeFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	write := func(rel, body string) {
		t.Helper()
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}

	write("profile.md", `---
name: Alex Jordan
title: Product Manager
summary: Experienced product manager
email: alex@example.com
socialLinks:
  - platform: LinkedIn
    url: https://linkedin.com/in/alexjordan
    icon: linkedin
---
`)
	write("about.md", "---\n---\nI build products.\n")
	write("education.md", `---
title: Education
sections:
  - title: University
    content: "BSc Computer Science"
---
`)
	write("experience/globex.md", `---
title: Principal PM
company: Globex
location: Remote
startDate: 2021-07
endDate: Present
technologies:
  - Go
---
- Leading platform strategy
`)
	write("references/jane.md", `---
name: Jane Smith
title: VP Engineering
relationship: Manager
---
Alex is outstanding.
`)
	write("blog/first.md", `---
title: On Roadmaps
date: 2022-01-15
url: https://blog.example.com/roadmaps
---
Roadmaps are promises, not plans.
`)
	write("projects/folio.md", `---
title: Folio
type: Side project
url: https://github.com/alexjordan/folio
technologies:
  - Go
---
A portfolio site with a chat assistant.
`)
	write("system-prompt.md", "You speak for {name}, a {title}.\n")

	return root
}

func newTestServer(t *testing.T, client llm.Client) *Server {
	t.Helper()
	store, err := content.NewStore(writeFixture(t))
	require.NoError(t, err)
	srv, err := New(Config{Port: 0}, store, client)
	require.NoError(t, err)
	return srv
}

func TestNewRequiresStore(t *testing.T) {
	_, err := New(Config{Port: 8080}, nil, nil)
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubClient{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, &stubClient{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/chat", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestIndexRendersProfile(t *testing.T) {
	srv := newTestServer(t, &stubClient{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Alex Jordan")
	assert.Contains(t, body, "Product Manager")
	assert.Contains(t, body, "Globex")
	assert.Contains(t, body, "Jane Smith")
	assert.Contains(t, body, "On Roadmaps")
}

func TestIndexUnavailableWhenContentMissing(t *testing.T) {
	root := t.TempDir() // empty: no profile.md
	store, err := content.NewStore(root)
	require.NoError(t, err)
	srv, err := New(Config{Port: 0}, store, &stubClient{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
