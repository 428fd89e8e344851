package guardrail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/meridianbank/governance-gateway/internal/config"
	"github.com/meridianbank/governance-gateway/internal/llm"
	"github.com/meridianbank/governance-gateway/internal/models"
	"github.com/meridianbank/governance-gateway/internal/prompts"
	"github.com/rs/zerolog"
)

// Layer-2 confidence levels. Fallback verdicts carry reduced confidence
// so downstream consumers can tell a real classification from a degraded
// one.
const (
	disabledConfidence  = 0.5
	simulatedConfidence = 0.85
	fallbackConfidence  = 0.3
)

// Token count reported for a simulated classification call.
const simulatedClassificationTokens = 50

// Classifier is Layer 2: semantic intent classification through a cheap
// model. Every failure path fails open to ALLOWED — a false negative here
// falls through to the already risk-priced primary model, while a false
// positive would wrongly deny a legitimate banking request.
type Classifier struct {
	client   llm.LLMClient // nil when the model dependency is unavailable
	renderer *prompts.Renderer
	cfg      config.LLMClassificationConfig
	live     bool
	logger   *zerolog.Logger
}

func NewClassifier(
	cfg config.LLMClassificationConfig,
	client llm.LLMClient,
	renderer *prompts.Renderer,
	live bool,
	logger *zerolog.Logger,
) *Classifier {
	return &Classifier{
		client:   client,
		renderer: renderer,
		cfg:      cfg,
		live:     live,
		logger:   logger,
	}
}

// Classify returns the semantic verdict for a request and the tokens the
// classification consumed. It never returns an error: infrastructure
// failures map to ALLOWED with reduced confidence.
func (c *Classifier) Classify(ctx context.Context, request string) (models.IntentClassification, int) {
	if !c.cfg.IsEnabled() {
		c.logger.Info().Msg("semantic classification disabled, allowing request")
		return models.IntentClassification{
			Category:      models.IntentAllowed,
			Confidence:    disabledConfidence,
			Reasoning:     "Classificação semântica desabilitada, requisição permitida por padrão",
			DetectedRisks: []string{},
		}, 0
	}

	if !c.live {
		c.logger.Debug().Msg("simulated mode, semantic classification allows request")
		return models.IntentClassification{
			Category:      models.IntentAllowed,
			Confidence:    simulatedConfidence,
			Reasoning:     "Simulação: requisição analisada semanticamente e considerada segura",
			DetectedRisks: []string{},
		}, simulatedClassificationTokens
	}

	if c.client == nil {
		c.logger.Warn().Msg("classifier model client unavailable, allowing request")
		return models.IntentClassification{
			Category:      models.IntentAllowed,
			Confidence:    disabledConfidence,
			Reasoning:     "Cliente do classificador indisponível, requisição permitida por fallback",
			DetectedRisks: []string{},
		}, 0
	}

	return c.classifyLive(ctx, request)
}

func (c *Classifier) classifyLive(ctx context.Context, request string) (models.IntentClassification, int) {
	prompt, err := c.renderer.Render(prompts.IntentClassifierTemplate, prompts.PromptData{UserRequest: request})
	if err != nil {
		if errors.Is(err, prompts.ErrTemplateNotFound) {
			c.logger.Error().Err(err).Msg("classification template not found")
			return c.failOpen("Template de classificação não encontrado, permitindo por fallback"), 0
		}
		c.logger.Error().Err(err).Msg("failed to render classification prompt")
		return c.failOpen(fmt.Sprintf("Erro ao montar prompt do classificador: %v, permitindo por fallback", err)), 0
	}

	resp, err := c.client.InvokeModel(ctx, llm.LLMRequest{
		Model:       c.cfg.Model,
		Prompt:      prompt,
		MaxTokens:   c.cfg.MaxOutputTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		c.logger.Error().Err(err).Str("model", c.cfg.Model).Msg("classification call failed")
		return c.failOpen(fmt.Sprintf("Erro no classificador: %v, permitindo por fallback", err)), 0
	}

	// Missing usage components count as zero.
	tokensUsed := resp.Usage.Total()

	content := stripMarkdownCodeBlock(resp.Content)

	var classification models.IntentClassification
	if err := json.Unmarshal([]byte(content), &classification); err != nil {
		c.logger.Error().Err(err).Str("content", resp.Content).Msg("failed to deserialize classifier response")
		return c.failOpen("Erro na validação da resposta do classificador, permitindo por fallback"), tokensUsed
	}

	if err := classification.Validate(); err != nil {
		c.logger.Error().Err(err).Msg("classifier response failed schema validation")
		return c.failOpen("Erro na validação da resposta do classificador, permitindo por fallback"), tokensUsed
	}

	c.logger.Info().
		Str("category", string(classification.Category)).
		Float64("confidence", classification.Confidence).
		Int("tokens", tokensUsed).
		Msg("semantic classification complete")

	// A genuine BLOCKED verdict passes through unchanged.
	return classification, tokensUsed
}

func (c *Classifier) failOpen(reasoning string) models.IntentClassification {
	return models.IntentClassification{
		Category:      models.IntentAllowed,
		Confidence:    fallbackConfidence,
		Reasoning:     reasoning,
		DetectedRisks: []string{},
	}
}

// stripMarkdownCodeBlock removes markdown code block formatting if present
func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		firstNewline := strings.Index(content, "\n")
		if firstNewline == -1 {
			return content
		}

		closingBackticks := strings.LastIndex(content, "```")
		if closingBackticks == -1 || closingBackticks <= firstNewline {
			return content
		}

		content = content[firstNewline+1 : closingBackticks]
		content = strings.TrimSpace(content)
	}

	return content
}
