package diagnosis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"amor-service/internal/domain"
	"amor-service/internal/platform/fallback"
	"amor-service/internal/platform/obs"
)

// Models tried in order; the first one that answers wins. The legacy vision
// model stays last for accounts that lost access to the 1.5 family.
var DefaultModels = []string{
	"gemini-1.5-flash-latest",
	"gemini-1.5-pro",
	"gemini-pro-vision",
}

// GeminiClient implements DiagnosisProvider against the Generative Language
// REST API. Prompt construction and response parsing live here; the model
// itself is a black box.
type GeminiClient struct {
	session *http.Client
	apiKey  string
	baseURL string
	models  []string
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}

	return &GeminiClient{
		session: &http.Client{Timeout: 30 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://generativelanguage.googleapis.com",
		models:  DefaultModels,
	}, nil
}

type generateRequest struct {
	Contents []struct {
		Parts []generatePart `json:"parts"`
	} `json:"contents"`
}

type generatePart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *generateInline `json:"inline_data,omitempty"`
}

type generateInline struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Diagnose sends the crop photo through the model fallback chain and
// returns the first usable answer.
func (c *GeminiClient) Diagnose(ctx context.Context, imageBase64, mimeType, language string) (_ domain.Diagnosis, err error) {
	defer obs.Time(ctx, "gemini.Diagnose")(&err)

	if strings.TrimSpace(imageBase64) == "" {
		return domain.Diagnosis{}, errors.New("diagnose: image must be non-empty")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	prompt := buildPrompt(language)

	attempts := make([]fallback.Attempt[string], 0, len(c.models))
	for _, model := range c.models {
		m := model
		attempts = append(attempts, fallback.Attempt[string]{
			Name: m,
			Run: func(ctx context.Context) (string, error) {
				return c.generate(ctx, m, prompt, imageBase64, mimeType)
			},
		})
	}

	advice, model, err := fallback.TryEach(ctx, attempts)
	if err != nil {
		return domain.Diagnosis{}, fmt.Errorf("diagnose: %w", err)
	}

	return domain.Diagnosis{Model: model, Advice: advice}, nil
}

func buildPrompt(language string) string {
	base := "You are an agronomist helping a smallholder farmer. " +
		"Look at this crop photo and identify the most likely disease, pest or deficiency. " +
		"Give a short diagnosis and 2-3 practical, low-cost treatment steps."
	if language == "bn" {
		return base + " Answer in Bengali (Bangla)."
	}
	return base + " Answer in English."
}

func (c *GeminiClient) generate(ctx context.Context, model, prompt, imageBase64, mimeType string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)

	var body generateRequest
	body.Contents = append(body.Contents, struct {
		Parts []generatePart `json:"parts"`
	}{
		Parts: []generatePart{
			{Text: prompt},
			{InlineData: &generateInline{MimeType: mimeType, Data: imageBase64}},
		},
	})

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no candidates in response")
	}

	text := strings.TrimSpace(decoded.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", errors.New("empty answer text")
	}

	return text, nil
}
