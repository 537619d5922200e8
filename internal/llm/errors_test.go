package llm

import (
	"net/http"
	"testing"
	"time"
	"unicode/utf8"
)

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"missing", "", 0},
		{"seconds", "2", 2 * time.Second},
		{"padded seconds", " 5 ", 5 * time.Second},
		{"zero", "0", 0},
		{"negative", "-4", 0},
		{"http date", now.Add(90 * time.Second).Format(http.TimeFormat), 90 * time.Second},
		{"past date", now.Add(-time.Minute).Format(http.TimeFormat), 0},
		{"garbage", "soon", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.value != "" {
				h.Set("Retry-After", tt.value)
			}
			if got := parseRetryAfter(h, now); got != tt.want {
				t.Errorf("parseRetryAfter(%q) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}

	if got := parseRetryAfter(nil, now); got != 0 {
		t.Errorf("nil header: got %s, want 0", got)
	}
}

func TestUpstreamError_RateLimitReadsHeader(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "7")
	err := upstreamError(http.StatusTooManyRequests, "quota", h, nil)
	rl, ok := err.(*ErrRateLimit)
	if !ok {
		t.Fatalf("expected *ErrRateLimit, got %T", err)
	}
	if rl.RetryAfter != 7*time.Second {
		t.Errorf("RetryAfter = %s, want 7s", rl.RetryAfter)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"ascii cut", "abcdef", 3, "abc..."},
		// Each Hangul syllable is three bytes; a cut at byte 4 backs up to 3.
		{"hangul mid rune", "가나다", 4, "가..."},
		{"hangul on boundary", "가나다", 6, "가나..."},
		{"hangul inside first rune", "가나다", 2, "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.n)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Truncate(%q, %d) produced invalid UTF-8 %q", tt.in, tt.n, got)
			}
		})
	}
}
