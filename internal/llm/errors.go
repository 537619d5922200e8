package llm

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrConfiguration indicates the provider cannot be used as configured,
// typically because credentials are missing.
type ErrConfiguration struct {
	Provider string
	Setting  string // config key or env var that needs a value
	Err      error
}

func (e *ErrConfiguration) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s provider misconfigured: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s provider misconfigured: %s is required", e.Provider, e.Setting)
}

func (e *ErrConfiguration) Unwrap() error { return e.Err }

// ErrUpstream indicates the generation endpoint answered with a non-2xx status.
type ErrUpstream struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, Truncate(e.Body, 300))
}

func (e *ErrUpstream) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrMalformedResponse indicates the provider answered successfully but the
// completion text is empty or missing.
type ErrMalformedResponse struct {
	Body string
	Err  error
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed LLM response: %v", e.Err)
}

func (e *ErrMalformedResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Text string
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// Truncate shortens s to at most n bytes plus an ellipsis, cutting on a
// rune boundary so multi-byte text stays valid UTF-8.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

// parseRetryAfter reads a Retry-After header given as delay-seconds or an
// HTTP date. Missing, malformed or past values yield zero.
func parseRetryAfter(h http.Header, now time.Time) time.Duration {
	v := strings.TrimSpace(h.Get("Retry-After"))
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
