package ai

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"tiffin/config"
	"time"

	"github.com/go-resty/resty/v2"
)

// Completer is the external text-completion service. Implementations may
// fail at any time; callers must treat every response as untrusted and
// fall back to the rule-based path on any error.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GeminiClient talks to the Google Generative Language REST API.
type GeminiClient struct {
	http      *resty.Client
	baseUrl   string
	apiKey    string
	model     string
	timeout   time.Duration
	available atomic.Bool
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewGeminiClient builds a client from the loaded application config.
func NewGeminiClient() *GeminiClient {
	cfg := config.AppConfig
	return &GeminiClient{
		http:    resty.New(),
		baseUrl: cfg.GeminiBaseUrl,
		apiKey:  cfg.GeminiApiKey,
		model:   cfg.GeminiModel,
		timeout: time.Duration(cfg.GeminiTimeout) * time.Second,
	}
}

// Complete sends one prompt and returns the raw completion text.
func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini api key not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var result geminiResponse
	resp, err := g.http.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetBody(geminiRequest{
			Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		}).
		SetResult(&result).
		Post(fmt.Sprintf("%s/models/%s:generateContent", g.baseUrl, g.model))
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		if result.Error != nil {
			return "", fmt.Errorf("gemini error: %s", result.Error.Message)
		}
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode())
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// Available reports the last probed state of the service.
func (g *GeminiClient) Available() bool {
	return g.available.Load()
}

// Probe checks whether the service answers at all and records the result.
// Run once at boot and periodically from the scheduler.
func (g *GeminiClient) Probe() bool {
	if g.apiKey == "" {
		g.available.Store(false)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
	defer cancel()

	resp, err := g.http.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		Get(fmt.Sprintf("%s/models/%s", g.baseUrl, g.model))

	ok := err == nil && resp.StatusCode() == 200
	if prev := g.available.Swap(ok); prev != ok {
		if ok {
			log.Println("Gemini service is reachable, AI analysis enabled")
		} else {
			log.Println("Gemini service unreachable, using rule-based fallback")
		}
	}
	return ok
}
