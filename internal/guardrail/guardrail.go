// Package guardrail validates user intent before any expensive model call
// is made. Defense in two layers: compiled pattern matching at zero cost,
// then semantic classification through a cheap model only when the first
// layer is inconclusive.
package guardrail

import (
	"context"
	"fmt"

	"github.com/meridianbank/governance-gateway/internal/config"
	"github.com/meridianbank/governance-gateway/internal/llm"
	"github.com/meridianbank/governance-gateway/internal/models"
	"github.com/meridianbank/governance-gateway/internal/prompts"
	"github.com/rs/zerolog"
)

// AvoidedCostEstimator reports the estimated cost of the primary model
// call a block prevented.
type AvoidedCostEstimator interface {
	EstimateAvoidedCost() float64
}

// Guardrail composes the two layers. Stateless across invocations: the
// compiled pattern set and configuration are read-only after New, so one
// instance is safe for concurrent use.
type Guardrail struct {
	matcher    *Matcher
	classifier *Classifier
	costs      AvoidedCostEstimator
	sanitizer  *Sanitizer
	logger     *zerolog.Logger
}

// New builds the guardrail from configuration. A missing or empty threat
// pattern set is fatal: the guardrail cannot exist without its signatures.
// Individual pattern compile failures are not fatal (see NewMatcher).
func New(
	cfg *config.GuardrailConfig,
	client llm.LLMClient,
	renderer *prompts.Renderer,
	costs AvoidedCostEstimator,
	live bool,
	logger *zerolog.Logger,
) (*Guardrail, error) {
	if cfg == nil || len(cfg.ThreatPatterns) == 0 {
		return nil, fmt.Errorf("guardrail requires a non-empty threat pattern configuration")
	}

	return &Guardrail{
		matcher:    NewMatcher(cfg.ThreatPatterns, logger),
		classifier: NewClassifier(cfg.LLMClassification, client, renderer, live, logger),
		costs:      costs,
		sanitizer:  NewSanitizer(cfg.DataMinimization, logger),
		logger:     logger,
	}, nil
}

// ValidateIntent runs both layers in fixed order and returns a
// well-formed result in every case. Layer 1 always completes before
// Layer 2 begins; Layer 2 runs only when Layer 1 found nothing.
func (g *Guardrail) ValidateIntent(ctx context.Context, request string) models.GuardrailResult {
	g.logger.Info().Str("request", g.sanitizer.Sanitize(request)).Msg("validating intent")

	if classification, blocked := g.matcher.Match(request); blocked {
		costAvoided := g.costs.EstimateAvoidedCost()

		g.logger.Warn().
			Strs("detected_risks", classification.DetectedRisks).
			Float64("cost_avoided", costAvoided).
			Msg("request blocked by pattern matching")

		return models.GuardrailResult{
			Layer:          models.LayerPatternMatching,
			Classification: *classification,
			TokensUsed:     0, // pattern matching consumes no tokens
			CostAvoided:    costAvoided,
		}
	}

	g.logger.Debug().Msg("no pattern matched, running semantic classification")

	classification, tokensUsed := g.classifier.Classify(ctx, request)

	costAvoided := 0.0
	if classification.Category == models.IntentBlocked {
		costAvoided = g.costs.EstimateAvoidedCost()
		g.logger.Warn().
			Strs("detected_risks", classification.DetectedRisks).
			Float64("cost_avoided", costAvoided).
			Msg("request blocked by semantic classification")
	} else {
		g.logger.Info().Float64("confidence", classification.Confidence).Msg("request allowed")
	}

	return models.GuardrailResult{
		Layer:          models.LayerLLMClassification,
		Classification: classification,
		TokensUsed:     tokensUsed,
		CostAvoided:    costAvoided,
	}
}

// SanitizeForLog exposes the data-minimization helper to callers that log
// request text themselves.
func (g *Guardrail) SanitizeForLog(text string) string {
	return g.sanitizer.Sanitize(text)
}
