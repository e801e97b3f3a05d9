package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_RequiresKeyAndModel(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", Options{Model: "gemini-2.5-flash"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")

	_, err = NewGeminiClient(context.Background(), "some-key", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model")
}

func TestHistoryToContents(t *testing.T) {
	contents := historyToContents([]Turn{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
		{Role: "system", Content: "dropped"},
	})

	require.Len(t, contents, 2)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "model", contents[1].Role)
	assert.Equal(t, genai.Text("hello"), contents[1].Parts[0])
}

func TestExtractTextFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text("part one "), genai.Text("part two")},
			},
		}},
	}

	text, err := extractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "part one part two", text)
}

func TestExtractTextFromResponse_Empty(t *testing.T) {
	_, err := extractTextFromResponse(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	_, err = extractTextFromResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	})
	assert.Error(t, err)
}
