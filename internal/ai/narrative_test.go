package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dqagent/internal/config"
	"dqagent/internal/errors"
	"dqagent/internal/quality"
)

func testReport() *quality.Report {
	return &quality.Report{HasFile: true, Message: "sales file checked successfully"}
}

func testAIConfig(baseURL string) config.AIConfig {
	return config.AIConfig{
		Enabled: true,
		APIKey:  "sk-test",
		Model:   "gpt-4.1-mini",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}
}

func TestNarrative(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  ## Summary\nall good  "}}]}`))
	}))
	defer server.Close()

	client := NewClient(nil, testAIConfig(server.URL))

	narrative, err := client.Narrative(context.Background(), testReport())
	require.NoError(t, err)

	assert.Equal(t, "## Summary\nall good", narrative)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4.1-mini", gotBody["model"])

	messages := gotBody["messages"].([]any)
	require.Len(t, messages, 2)
	user := messages[1].(map[string]any)
	assert.Contains(t, user["content"], `"has_file": true`)
}

func TestNarrativeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(nil, testAIConfig(server.URL))

	_, err := client.Narrative(context.Background(), testReport())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNarrativeFailed))
}

func TestNarrativeEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(nil, testAIConfig(server.URL))

	_, err := client.Narrative(context.Background(), testReport())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNarrativeFailed))
}

func TestNarrativeUnreachableEndpoint(t *testing.T) {
	cfg := testAIConfig("http://127.0.0.1:1")
	cfg.Timeout = 500 * time.Millisecond
	client := NewClient(nil, cfg)

	_, err := client.Narrative(context.Background(), testReport())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNarrativeFailed))
}

func TestNarrativeMissingKey(t *testing.T) {
	cfg := testAIConfig("http://unused")
	cfg.APIKey = ""
	client := NewClient(nil, cfg)

	_, err := client.Narrative(context.Background(), testReport())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNarrativeFailed))
}
