// Package gemini adapts the Gemini generative text API to the topic suggestion service.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"icebreaker/config"
	domainerrors "icebreaker/internal/domain/errors"
	"icebreaker/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/genai"
)

// ErrNotConfigured is reported by every call when no API key is configured.
var ErrNotConfigured = domainerrors.ErrTextTransformUnavailable.WithMessage("text transform service is not configured")

const promptTemplate = `You are an AI chat assistant that helps users draft icebreaker topic ideas and receive alternative headline suggestions.

User Input: %s

Instructions: Provide a polished version of the user input and exactly %d alternative headline suggestions.`

// contentGenerator is the subset of *genai.Models the suggester calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type topicSuggester struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

type unconfiguredSuggester struct{}

// SuggesterParams holds dependencies for the topic suggester, injected by Fx.
type SuggesterParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewTopicSuggester builds a Gemini backed service.TopicSuggester.
// Without an API key the returned suggester fails every call with ErrNotConfigured.
func NewTopicSuggester(params SuggesterParams) (service.TopicSuggester, error) {
	cfg := params.Config.TextTransform
	if cfg == nil || strings.TrimSpace(cfg.APIKey) == "" {
		params.Logger.Warn("Text transform API key not configured, topic suggestions disabled")

		return unconfiguredSuggester{}, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	params.Logger.Info("Text transform service configured", slog.String("model", cfg.Model))

	return newTopicSuggester(client.Models, cfg.Model, cfg.Timeout, params.Logger), nil
}

func newTopicSuggester(models contentGenerator, model string, timeout time.Duration, logger *slog.Logger) *topicSuggester {
	return &topicSuggester{
		models:  models,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// SuggestTopic sends one generation request and parses the structured reply.
func (s *topicSuggester) SuggestTopic(ctx context.Context, userInput string) (*service.TopicSuggestion, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.models.GenerateContent(ctx, s.model, genai.Text(buildPrompt(userInput)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   suggestionSchema(),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	s.logger.DebugContext(ctx, "Topic suggestion generated",
		slog.String("model", s.model),
		slog.Duration("latency", time.Since(start)),
	)

	if resp == nil {
		return nil, domainerrors.ErrTextTransformEmpty
	}

	return parseSuggestion(resp.Text())
}

func (unconfiguredSuggester) SuggestTopic(context.Context, string) (*service.TopicSuggestion, error) {
	return nil, ErrNotConfigured
}

func buildPrompt(userInput string) string {
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(userInput), service.AlternativeHeadlineCount)
}

func suggestionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"polishedTopic": {
				Type:        genai.TypeString,
				Description: "A polished version of the user input.",
			},
			"alternativeHeadlines": {
				Type:        genai.TypeArray,
				Description: "Three alternative headline suggestions.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
		},
		Required:         []string{"polishedTopic", "alternativeHeadlines"},
		PropertyOrdering: []string{"polishedTopic", "alternativeHeadlines"},
	}
}

type suggestionPayload struct {
	PolishedTopic        string   `json:"polishedTopic"`
	AlternativeHeadlines []string `json:"alternativeHeadlines"`
}

// parseSuggestion decodes the JSON reply. Headline numbering such as "1. " is stripped
// and blank headlines are dropped; fewer than three remaining headlines is an error.
func parseSuggestion(raw string) (*service.TopicSuggestion, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domainerrors.ErrTextTransformEmpty
	}

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, errors.Wrap(err, "malformed topic suggestion response")
	}

	topic := strings.TrimSpace(payload.PolishedTopic)
	if topic == "" {
		return nil, domainerrors.ErrTextTransformEmpty
	}

	headlines := make([]string, 0, service.AlternativeHeadlineCount)
	for _, h := range payload.AlternativeHeadlines {
		h = stripNumbering(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		headlines = append(headlines, h)
		if len(headlines) == service.AlternativeHeadlineCount {
			break
		}
	}
	if len(headlines) < service.AlternativeHeadlineCount {
		return nil, errors.Errorf("expected %d alternative headlines, got %d",
			service.AlternativeHeadlineCount, len(headlines))
	}

	return &service.TopicSuggestion{
		PolishedTopic:        topic,
		AlternativeHeadlines: headlines,
	}, nil
}

// stripNumbering removes a leading list marker like "1." or "2)".
func stripNumbering(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) || (s[i] != '.' && s[i] != ')') {
		return s
	}

	return strings.TrimSpace(s[i+1:])
}
