// Package gemini implements the content validation port against the
// Google Generative Language HTTP API. A structured response schema forces
// the model to return a strict {valid, explanation} JSON verdict.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"clipfund/internal/core/port"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("gemini api key not configured")

// Client calls the Gemini generateContent endpoint to judge whether a
// submitted video satisfies campaign requirements.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a validation client for the given API key and model.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64         `json:"temperature"`
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

// validationSchema constrains the model output to the verdict shape.
var validationSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "valid": {"type": "BOOLEAN", "description": "Meets all campaign requirements"},
    "explanation": {"type": "STRING", "description": "Actionable rationale"}
  },
  "required": ["valid", "explanation"]
}`)

const promptTemplate = `You are moderating a YouTube submission for a UGC campaign.

Video URL: %s

Campaign Requirements (must satisfy ALL):
%s

Evaluate and return STRICT JSON:
- valid: boolean (true only if ALL requirements are clearly satisfied)
- explanation: short, actionable reason

Checklist:
1) Primary focus on requirement
2) Active demonstration or prominent feature
3) Real value (educational/entertaining)
4) Positive brand alignment
5) If a duration threshold exists (e.g., >10%%), consider that.

Return only JSON with keys { "valid": boolean, "explanation": string }.`

// Validate asks the model for a verdict on the video. Upstream failures
// wrap port.ErrUpstream so the HTTP layer maps them to 502.
func (c *Client) Validate(ctx context.Context, videoURL, requirements string) (*port.ValidationResult, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, videoURL, requirements)}}}},
		GenerationConfig: generationConfig{
			Temperature:      0.2,
			ResponseMimeType: "application/json",
			ResponseSchema:   validationSchema,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", port.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gemini returned status %d", port.ErrUpstream, resp.StatusCode)
	}

	var genResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err = json.Unmarshal(body, &genResp); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", port.ErrUpstream, err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty gemini response", port.ErrUpstream)
	}

	var result port.ValidationResult
	if err = json.Unmarshal([]byte(genResp.Candidates[0].Content.Parts[0].Text), &result); err != nil {
		return nil, fmt.Errorf("%w: gemini verdict is not valid JSON: %v", port.ErrUpstream, err)
	}
	return &result, nil
}
