package llm

import (
	"context"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiRESTProvider calls the Gemini generateContent endpoint directly.
// It exists for deployments that want the plain HTTP contract without the
// SDK, and for tests that point it at an httptest server.
type GeminiRESTProvider struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewGeminiRESTProvider creates a REST Gemini provider. A zero timeout leaves
// the client unbounded; the context still applies.
func NewGeminiRESTProvider(cfg GeminiConfig, timeout time.Duration) (*GeminiRESTProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ErrConfiguration{Provider: ProviderGeminiREST, Setting: "GEMINI_API_KEY"}
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultGeminiBaseURL
	}
	client := resty.New().
		SetBaseURL(base).
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &GeminiRESTProvider{
		client: client,
		apiKey: cfg.APIKey,
		model:  resolveModel(cfg.Model, geminiModels),
	}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
	ModelVersion string `json:"modelVersion"`
}

func (p *GeminiRESTProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	body := geminiRequest{
		GenerationConfig: geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		},
	}
	if req.System != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}
	if req.Schema != nil {
		body.GenerationConfig.ResponseMIMEType = "application/json"
	}
	for _, m := range req.Messages {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		body.Contents = append(body.Contents, geminiContent{Role: role, Parts: []geminiPart{{Text: m.Content}}})
	}

	var out geminiResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("model", p.model).
		SetQueryParam("key", p.apiKey).
		SetBody(body).
		SetResult(&out).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &ErrProviderUnavailable{Err: err}
	}
	if resp.IsError() {
		return nil, upstreamError(resp.StatusCode(), resp.String(), resp.Header(), nil)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, &ErrMalformedResponse{
			Body: Truncate(resp.String(), 500),
			Err:  errors.New("no candidates in Gemini response"),
		}
	}
	cand := out.Candidates[0]
	text := cand.Content.Parts[0].Text
	if cand.FinishReason == "MAX_TOKENS" {
		return nil, &ErrMaxTokensExceeded{Text: text}
	}
	if text == "" {
		return nil, &ErrMalformedResponse{
			Body: Truncate(resp.String(), 500),
			Err:  errors.New("empty text in Gemini candidate"),
		}
	}

	model := out.ModelVersion
	if model == "" {
		model = p.model
	}
	return &Response{
		Text: text,
		Usage: Usage{
			InputTokens:  out.UsageMetadata.PromptTokenCount,
			OutputTokens: out.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  out.UsageMetadata.TotalTokenCount,
		},
		Model:      model,
		StopReason: "end",
	}, nil
}

func (p *GeminiRESTProvider) ModelID() string {
	return p.model
}
