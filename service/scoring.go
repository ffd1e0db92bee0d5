package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Adiru352/luxmeet3.0/models"
)

// FallbackScore is returned whenever the scoring service fails. Scoring is
// best-effort: a degraded score beats a blocked capture flow.
const FallbackScore = 50

// LeadContext is the engagement summary sent to the scoring model.
type LeadContext struct {
	Source            string
	EmailDomain       string
	Interactions      []models.LeadInteraction
	TotalInteractions int
	TimeToRespond     *int // minutes, nil when the lead never clicked or shared
}

// BuildLeadContext derives the scoring context from a lead and its stored
// interaction history.
func BuildLeadContext(lead *models.Lead, interactions []models.LeadInteraction) LeadContext {
	emailDomain := ""
	if at := strings.LastIndex(lead.Email, "@"); at >= 0 && at+1 < len(lead.Email) {
		emailDomain = lead.Email[at+1:]
	}

	return LeadContext{
		Source:            lead.Source,
		EmailDomain:       emailDomain,
		Interactions:      interactions,
		TotalInteractions: len(interactions),
		TimeToRespond:     responseTimeMinutes(interactions),
	}
}

// responseTimeMinutes is the whole-minute gap between the first interaction
// and the first click or share. Nil when there are fewer than two
// interactions or the lead never clicked or shared.
func responseTimeMinutes(interactions []models.LeadInteraction) *int {
	if len(interactions) < 2 {
		return nil
	}

	first := interactions[0].CreatedAt
	for _, interaction := range interactions {
		if interaction.Type == "click" || interaction.Type == "share" {
			minutes := int(interaction.CreatedAt.Sub(first).Minutes())
			return &minutes
		}
	}
	return nil
}

// BuildScoringPrompt renders the instruction sent to the model. The model is
// asked for a bare integer; anything else is treated as a failure.
func BuildScoringPrompt(ctx LeadContext) string {
	timeToRespond := "N/A"
	if ctx.TimeToRespond != nil {
		timeToRespond = fmt.Sprintf("%d minutes", *ctx.TimeToRespond)
	}

	var history strings.Builder
	for _, interaction := range ctx.Interactions {
		history.WriteString("- " + interaction.Type + " at " + interaction.CreatedAt.UTC().Format(time.RFC3339))
		if interaction.Details != "" {
			history.WriteString(": " + interaction.Details)
		}
		history.WriteString("\n")
	}

	return fmt.Sprintf(`Analyze this lead's engagement data and provide a lead score from 0-100:

Lead Source: %s
Email Domain: %s
Total Interactions: %d
Time to Respond: %s

Recent Interactions:
%s
Consider:
1. Quality of interactions (downloads > shares > clicks > views)
2. Frequency and recency of interactions
3. Response time
4. Lead source quality (direct > nfc > qr)
5. Email domain reputation (business vs personal email)

Return only a number between 0 and 100.`,
		ctx.Source, ctx.EmailDomain, ctx.TotalInteractions, timeToRespond, history.String())
}

// LeadScorer asks an external model for a 0-100 engagement score.
type LeadScorer interface {
	Score(ctx context.Context, lead *models.Lead, leadCtx LeadContext) (int, error)
}

// ChatScorer calls an OpenAI-compatible chat completions endpoint.
type ChatScorer struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewChatScorer builds a scorer from environment configuration.
// All outbound calls are bounded by a 10 second timeout.
func NewChatScorer() *ChatScorer {
	baseURL := os.Getenv("SCORING_API_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("SCORING_MODEL")
	if model == "" {
		model = "gpt-4-turbo-preview"
	}

	return &ChatScorer{
		apiKey:  os.Getenv("SCORING_API_KEY"),
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (s *ChatScorer) Score(ctx context.Context, lead *models.Lead, leadCtx LeadContext) (int, error) {
	if s.apiKey == "" {
		return 0, fmt.Errorf("SCORING_API_KEY not set in environment")
	}

	payload := chatCompletionRequest{
		Model:       s.model,
		Messages:    []chatMessage{{Role: "user", Content: BuildScoringPrompt(leadCtx)}},
		MaxTokens:   5,
		Temperature: 0.3,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal scoring request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build scoring request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("scoring request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return 0, fmt.Errorf("scoring service returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("failed to read scoring response: %w", err)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return 0, fmt.Errorf("malformed scoring response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return 0, fmt.Errorf("scoring response contained no choices")
	}

	return parseScore(completion.Choices[0].Message.Content)
}

func parseScore(content string) (int, error) {
	trimmed := strings.TrimSpace(content)
	// Models occasionally append punctuation; take the leading signed
	// integer. Out-of-range values (including negatives) are the clamp's
	// job, not a parse failure.
	end := 0
	if end < len(trimmed) && trimmed[end] == '-' {
		end++
	}
	digits := end
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("non-numeric scoring output: %q", content)
	}
	return strconv.Atoi(trimmed[:end])
}

// ClampScore forces a score into [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ScoreLead runs the scorer and applies the degrade-gracefully policy:
// the result is always in [0,100], and any failure yields FallbackScore
// instead of an error.
func ScoreLead(ctx context.Context, scorer LeadScorer, lead *models.Lead, leadCtx LeadContext) int {
	score, err := scorer.Score(ctx, lead, leadCtx)
	if err != nil {
		log.Printf("Lead scoring failed for %s, using fallback: %v", lead.ID, err)
		return FallbackScore
	}
	return ClampScore(score)
}
