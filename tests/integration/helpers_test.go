//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("TRIVIA_API_BASE_URL", "http://localhost:8080")
}

func getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := http.Get(baseURL() + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, decodeJSON(t, resp)
}

func postJSON(t *testing.T, path string, payload any) (int, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload for %s: %v", path, err)
	}
	resp, err := http.Post(baseURL()+path, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, decodeJSON(t, resp)
}

func deleteJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, baseURL()+path, nil)
	if err != nil {
		t.Fatalf("build DELETE %s: %v", path, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, decodeJSON(t, resp)
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return out
}

// createQuestion posts a throwaway question and returns its text so tests
// can find it again via search.
func createQuestion(t *testing.T, marker string) string {
	t.Helper()

	text := fmt.Sprintf("Integration question %s?", marker)
	status, body := postJSON(t, "/questions", map[string]any{
		"question":   text,
		"answer":     "Integration answer",
		"category":   1,
		"difficulty": 1,
	})
	if status != http.StatusOK {
		t.Fatalf("create question returned status %d: %v", status, body)
	}
	return text
}

// findQuestionID locates a created question through the search endpoint.
func findQuestionID(t *testing.T, text string) int64 {
	t.Helper()

	status, body := postJSON(t, "/questions/search", map[string]any{"searchTerm": text})
	if status != http.StatusOK {
		t.Fatalf("search returned status %d: %v", status, body)
	}
	questions, _ := body["questions"].([]any)
	if len(questions) != 1 {
		t.Fatalf("expected exactly one match for %q, got %d", text, len(questions))
	}
	q := questions[0].(map[string]any)
	return int64(q["id"].(float64))
}
