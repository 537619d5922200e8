package llm

import (
	"net/http"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider wraps OpenAIProvider with OpenRouter-specific defaults.
// OpenRouter exposes an OpenAI-compatible API, so the underlying SDK is reused.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
// Requests carry the X-Title and HTTP-Referer attribution headers when
// AppName or SiteURL are set.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ErrConfiguration{Provider: ProviderOpenRouter, Setting: "OPENROUTER_API_KEY"}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	inner := newOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}, openRouterHeaders(cfg))
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

func openRouterHeaders(cfg OpenRouterConfig) http.Header {
	h := http.Header{}
	if cfg.AppName != "" {
		h.Set("X-Title", cfg.AppName)
	}
	if cfg.SiteURL != "" {
		h.Set("HTTP-Referer", cfg.SiteURL)
	}
	return h
}

// headerTransport adds fixed headers to every outgoing request.
type headerTransport struct {
	headers http.Header
	base    http.RoundTripper
}

func (t *headerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	for k, vs := range t.headers {
		for _, v := range vs {
			r.Header.Add(k, v)
		}
	}
	return t.base.RoundTrip(r)
}
