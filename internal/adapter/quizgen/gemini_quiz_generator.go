package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"wikiquiz/internal/config"
	"wikiquiz/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// errorTextPrefixLen bounds how much of a bad completion ends up in error
// messages.
const errorTextPrefixLen = 500

// Completer is the narrow contract the generator needs from a language
// model: one prompt in, raw completion text out. The production completer
// wraps a langchaingo Gemini client; tests supply stubs.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type googleAICompleter struct {
	model       llms.Model
	temperature float64
}

func (c *googleAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
		llms.WithTemperature(c.temperature))
}

// GeminiQuizGenerator implements domain.QuizGenerator on top of a Completer.
type GeminiQuizGenerator struct {
	completer Completer
	logger    *zap.Logger
}

// NewGeminiQuizGenerator creates a generator backed by the Gemini API.
func NewGeminiQuizGenerator(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (domain.QuizGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}

	model, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	logger.Info("initialized gemini quiz generator", zap.String("model", cfg.Model))

	return &GeminiQuizGenerator{
		completer: &googleAICompleter{model: model, temperature: cfg.Temperature},
		logger:    logger,
	}, nil
}

// NewWithCompleter wires an arbitrary Completer, used by tests.
func NewWithCompleter(completer Completer, logger *zap.Logger) domain.QuizGenerator {
	return &GeminiQuizGenerator{completer: completer, logger: logger}
}

// Generate renders the prompt, runs one completion, and decodes and
// validates the result. A single attempt: the caller decides on retries.
func (g *GeminiQuizGenerator) Generate(ctx context.Context, title, bodyText string) (*domain.QuizOutput, error) {
	prompt := buildPrompt(title, bodyText)

	g.logger.Info("generating quiz",
		zap.String("title", title),
		zap.Int("body_chars", len(bodyText)))

	raw, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		g.logger.Error("model completion failed", zap.Error(err))
		return nil, domain.NewLLMRequestError(err)
	}

	g.logger.Debug("received completion", zap.Int("raw_chars", len(raw)))

	output, err := decodeQuizOutput(raw)
	if err != nil {
		return nil, err
	}

	g.logger.Info("quiz generated",
		zap.String("title", output.Title),
		zap.Int("questions", len(output.Quiz)))

	return output, nil
}

// decodeQuizOutput parses a completion into a validated QuizOutput. It tries
// the text as-is first and only sanitizes on decode failure, so clean model
// output never goes through the brace heuristic.
func decodeQuizOutput(raw string) (*domain.QuizOutput, error) {
	var output domain.QuizOutput
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &output); err != nil {
		cleaned := Sanitize(raw)
		output = domain.QuizOutput{}
		if err := json.Unmarshal([]byte(cleaned), &output); err != nil {
			return nil, domain.NewMalformedModelOutputError(err, textPrefix(cleaned))
		}
	}

	output.Normalize()
	if err := output.Validate(); err != nil {
		return nil, err
	}
	return &output, nil
}

func textPrefix(s string) string {
	if len(s) > errorTextPrefixLen {
		return s[:errorTextPrefixLen]
	}
	return s
}
