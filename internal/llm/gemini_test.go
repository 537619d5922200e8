package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func newTestGeminiREST(t *testing.T, handler http.HandlerFunc) *GeminiRESTProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewGeminiRESTProvider(GeminiConfig{
		APIKey:  "g-test",
		Model:   "gemini-2.0-flash",
		BaseURL: server.URL,
	}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestGeminiREST_HappyPath(t *testing.T) {
	var gotBody geminiRequest
	var gotPath, gotKey string

	p := newTestGeminiREST(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": "```json\n{\"score\":85}\n```"}},
				},
				"finishReason": "STOP",
			}},
			"usageMetadata": map[string]any{
				"promptTokenCount":     120,
				"candidatesTokenCount": 30,
				"totalTokenCount":      150,
			},
		})
	})

	req := Prompt("Grade this.")
	req.Temperature = 0.2
	req.MaxTokens = 500
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v1beta/models/gemini-2.0-flash:generateContent" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotKey != "g-test" {
		t.Fatalf("expected api key in query, got %q", gotKey)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "Grade this." {
		t.Fatalf("unexpected contents: %+v", gotBody.Contents)
	}
	if gotBody.GenerationConfig.Temperature != 0.2 || gotBody.GenerationConfig.MaxOutputTokens != 500 {
		t.Fatalf("unexpected generation config: %+v", gotBody.GenerationConfig)
	}

	// Fences are left for the caller to strip.
	if resp.Text != "```json\n{\"score\":85}\n```" {
		t.Fatalf("unexpected text %q", resp.Text)
	}
	if resp.Usage.InputTokens != 120 || resp.Usage.OutputTokens != 30 {
		t.Fatalf("unexpected usage: %+v", resp.Usage)
	}
	if resp.Model != "gemini-2.0-flash" {
		t.Fatalf("expected model fallback to configured id, got %q", resp.Model)
	}
}

func TestGeminiREST_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "bad request",
			status: http.StatusBadRequest,
			body:   `{"error":{"code":400,"message":"API key not valid"}}`,
			check: func(t *testing.T, err error) {
				var up *ErrUpstream
				if !errors.As(err, &up) || up.StatusCode != 400 {
					t.Fatalf("expected 400 ErrUpstream, got %T (%v)", err, err)
				}
				var rl *ErrRateLimit
				if errors.As(err, &rl) {
					t.Fatal("400 must not be a rate limit")
				}
			},
		},
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			body:   `{"error":{"code":429,"message":"quota"}}`,
			check: func(t *testing.T, err error) {
				var rl *ErrRateLimit
				if !errors.As(err, &rl) {
					t.Fatalf("expected ErrRateLimit, got %T (%v)", err, err)
				}
				var up *ErrUpstream
				if !errors.As(err, &up) || up.StatusCode != 429 {
					t.Fatalf("expected wrapped 429 ErrUpstream, got %v", err)
				}
			},
		},
		{
			name:   "no candidates",
			status: http.StatusOK,
			body:   `{"candidates":[]}`,
			check: func(t *testing.T, err error) {
				var mal *ErrMalformedResponse
				if !errors.As(err, &mal) {
					t.Fatalf("expected ErrMalformedResponse, got %T (%v)", err, err)
				}
			},
		},
		{
			name:   "empty text",
			status: http.StatusOK,
			body:   `{"candidates":[{"content":{"parts":[{"text":""}]},"finishReason":"STOP"}]}`,
			check: func(t *testing.T, err error) {
				var mal *ErrMalformedResponse
				if !errors.As(err, &mal) {
					t.Fatalf("expected ErrMalformedResponse, got %T (%v)", err, err)
				}
			},
		},
		{
			name:   "truncated",
			status: http.StatusOK,
			body:   `{"candidates":[{"content":{"parts":[{"text":"{\"title\":"}]},"finishReason":"MAX_TOKENS"}]}`,
			check: func(t *testing.T, err error) {
				var maxTok *ErrMaxTokensExceeded
				if !errors.As(err, &maxTok) {
					t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestGeminiREST(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := p.Generate(context.Background(), Prompt("x"))
			if err == nil {
				t.Fatal("expected error")
			}
			tt.check(t, err)
		})
	}
}

func TestGeminiREST_RateLimitCarriesRetryAfter(t *testing.T) {
	p := newTestGeminiREST(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "2")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota"}}`))
	})
	_, err := p.Generate(context.Background(), Prompt("x"))
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T (%v)", err, err)
	}
	if rl.RetryAfter != 2*time.Second {
		t.Fatalf("expected RetryAfter 2s, got %s", rl.RetryAfter)
	}
}

func TestGeminiREST_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	p, err := NewGeminiRESTProvider(GeminiConfig{APIKey: "g-test", Model: "gemini-2.0-flash", BaseURL: url}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = p.Generate(context.Background(), Prompt("x"))
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestGeminiREST_MissingKey(t *testing.T) {
	_, err := NewGeminiRESTProvider(GeminiConfig{Model: "gemini-2.0-flash"}, 0)
	var cfgErr *ErrConfiguration
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ErrConfiguration, got %T (%v)", err, err)
	}
}

func TestGemini_MissingKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiConfig{})
	var cfgErr *ErrConfiguration
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ErrConfiguration, got %T (%v)", err, err)
	}
}
