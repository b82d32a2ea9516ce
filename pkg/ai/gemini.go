package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Sushmeta1/Skill-Synch/pkg/config"
)

// modelCandidates are probed in order until one answers; modern names first
var modelCandidates = []string{
	"gemini-1.5-flash-latest",
	"gemini-1.5-flash",
	"gemini-1.5-pro-latest",
	"gemini-1.5-pro",
	"gemini-pro-latest",
	"gemini-pro",
}

// GeminiClient is a minimal client for Gemini API calls used for narrative
// feedback generation
type GeminiClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGeminiClient creates a Gemini client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GEMINI_API_URL")
		if base == "" {
			base = "https://generativelanguage.googleapis.com"
		}
	}

	var model string
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	} else {
		model = modelCandidates[0]
	}

	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: base,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether an API key is configured. Without a key all calls
// degrade to demo-mode output.
func (g *GeminiClient) Enabled() bool {
	return g.apiKey != ""
}

// generateContentRequest is the shape for generateContent requests
type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateContentResponse is a minimal response shape
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// FeedbackInput carries the analysis scores handed to the model
type FeedbackInput struct {
	OverallScore    int      `json:"overall_score"`
	ConfidenceScore int      `json:"confidence_score"`
	ClarityScore    int      `json:"clarity_score"`
	HesitationRate  int      `json:"hesitation_rate"`
	ContentScore    int      `json:"content_quality_score"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"areas_for_improvement"`
}

// demoFeedback is returned when no API key is configured or the model call
// fails, so the endpoint always produces a narrative
const demoFeedback = "You presented yourself with solid confidence and a clear, positive tone. " +
	"Your answers covered relevant technical ground, and your enthusiasm for the role came through. " +
	"To improve further, work on reducing filler words and back up your skills with one or two concrete project examples. " +
	"Overall this was a strong practice session - keep refining your delivery."

// GenerateFeedback asks Gemini for a coaching narrative over the analysis
// scores. The returned bool reports whether the text is AI-generated or the
// demo fallback.
func (g *GeminiClient) GenerateFeedback(ctx context.Context, input FeedbackInput) (string, bool, error) {
	if !g.Enabled() {
		return demoFeedback, false, nil
	}

	prompt := fmt.Sprintf(
		"You are an interview coach. A candidate's practice interview was scored as follows:\n"+
			"- Overall score: %d/100\n"+
			"- Confidence: %d/100\n"+
			"- Clarity: %d/100\n"+
			"- Hesitation rate: %d%%\n"+
			"- Content quality: %d/100\n"+
			"- Strengths: %s\n"+
			"- Areas for improvement: %s\n\n"+
			"Write a short, encouraging paragraph of personalized feedback (4-6 sentences). "+
			"Be specific and actionable; do not repeat the numbers back.",
		input.OverallScore, input.ConfidenceScore, input.ClarityScore,
		input.HesitationRate, input.ContentScore,
		strings.Join(input.Strengths, ", "), strings.Join(input.Improvements, ", "),
	)

	text, err := g.generateContent(ctx, g.model, prompt)
	if err != nil {
		return demoFeedback, false, err
	}
	return text, true, nil
}

// generateContent calls the Gemini generateContent endpoint for one model
func (g *GeminiClient) generateContent(ctx context.Context, model, prompt string) (string, error) {
	reqBody := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var gr generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", err
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}
	return strings.TrimSpace(gr.Candidates[0].Content.Parts[0].Text), nil
}

// ModelProbe records the outcome of probing one candidate model
type ModelProbe struct {
	Model   string `json:"model"`
	Working bool   `json:"working"`
	Error   string `json:"error,omitempty"`
}

// Diagnostics is the result of a connectivity check against Gemini
type Diagnostics struct {
	KeyConfigured bool         `json:"key_configured"`
	WorkingModel  string       `json:"working_model,omitempty"`
	Probes        []ModelProbe `json:"probes,omitempty"`
}

// Diagnose checks key presence and probes the candidate models in order,
// stopping at the first one that answers
func (g *GeminiClient) Diagnose(ctx context.Context) Diagnostics {
	diag := Diagnostics{KeyConfigured: g.Enabled()}
	if !diag.KeyConfigured {
		return diag
	}

	for _, model := range modelCandidates {
		probe := ModelProbe{Model: model}
		if _, err := g.generateContent(ctx, model, "Say 'OK' if you're working"); err != nil {
			probe.Error = err.Error()
			diag.Probes = append(diag.Probes, probe)
			continue
		}
		probe.Working = true
		diag.Probes = append(diag.Probes, probe)
		diag.WorkingModel = model
		break
	}
	return diag
}
