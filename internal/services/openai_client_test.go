package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIClientComplete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization header mismatch: %q", got)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"A great bike."}}]}`))
	}))
	defer ts.Close()

	client := NewOpenAIClient(ts.Client(), "test-key")
	client.baseURL = ts.URL

	resp, err := client.Complete(context.Background(), ChatCompletionRequest{
		Model:    "gpt-4o-mini",
		Messages: []ChatMessage{{Role: "user", Content: "describe"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "A great bike." {
		t.Errorf("content mismatch: %q", resp.Content)
	}
}

func TestOpenAIClientCompleteErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer ts.Close()

	client := NewOpenAIClient(ts.Client(), "test-key")
	client.baseURL = ts.URL

	_, err := client.Complete(context.Background(), ChatCompletionRequest{Model: "gpt-4o-mini"})
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestOpenAIClientEmptyKey(t *testing.T) {
	client := NewOpenAIClient(nil, "")
	_, err := client.Complete(context.Background(), ChatCompletionRequest{})
	if err == nil {
		t.Fatal("expected error for empty api key")
	}
}
