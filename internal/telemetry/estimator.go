// Package telemetry turns token counts into money. Pricing comes from the
// model policy so finance teams can adjust it without a deploy.
package telemetry

import (
	"errors"
	"fmt"
	"math"

	"github.com/meridianbank/governance-gateway/internal/config"
	"github.com/meridianbank/governance-gateway/internal/llm"
	"github.com/rs/zerolog"
)

var ErrModelNotFound = errors.New("model not found in pricing policy")

// Character-to-token approximation used when the provider does not report
// usage. Live calls use the real usage report instead.
const charsPerTokenFallback = 4

// Fixed token split assumed for the avoided-cost heuristic: the estimate
// must be the same for every blocked request, not a function of its
// length, so the metric stays cheap and explainable.
const (
	avoidedInputTokens  = 600
	avoidedOutputTokens = 150
)

type CostEstimator struct {
	pricing        map[string]config.PricingModel
	expensiveModel string
	logger         *zerolog.Logger
}

func NewCostEstimator(policy *config.ModelPolicy, logger *zerolog.Logger) *CostEstimator {
	return &CostEstimator{
		pricing:        policy.Pricing,
		expensiveModel: policy.Routing.ExpensiveModel,
		logger:         logger,
	}
}

// CountTokens approximates the token count of a text. The approximation
// can be off by ±30% depending on language and content.
func (e *CostEstimator) CountTokens(text string) int {
	tokens := len(text) / charsPerTokenFallback
	if tokens < 1 {
		tokens = 1
	}
	return tokens
}

// CalculateCost prices an operation from character counts, approximating
// tokens first. Used in simulated mode where no usage report exists.
func (e *CostEstimator) CalculateCost(model string, inputChars int, outputChars int) (float64, error) {
	usage := llm.TokenUsage{
		InputTokens:  max(1, inputChars/charsPerTokenFallback),
		OutputTokens: max(1, outputChars/charsPerTokenFallback),
	}
	return e.CalculateCostFromTokens(model, usage)
}

// CalculateCostFromTokens prices an operation from a real usage report.
func (e *CostEstimator) CalculateCostFromTokens(model string, usage llm.TokenUsage) (float64, error) {
	pricing, ok := e.pricing[model]
	if !ok {
		e.logger.Warn().Str("model", model).Msg("model missing from pricing policy")
		return 0, fmt.Errorf("model %q: %w", model, ErrModelNotFound)
	}

	inputCost := (float64(usage.InputTokens) / 1000.0) * pricing.InputPer1kTokens
	outputCost := (float64(usage.OutputTokens) / 1000.0) * pricing.OutputPer1kTokens

	cost := roundTo6(inputCost + outputCost)

	e.logger.Debug().
		Str("model", model).
		Int("input_tokens", usage.InputTokens).
		Int("output_tokens", usage.OutputTokens).
		Float64("cost_usd", cost).
		Msg("cost calculated")

	return cost, nil
}

// EstimateAvoidedCost estimates what a blocked request would have cost on
// the expensive tier, using the fixed token split.
func (e *CostEstimator) EstimateAvoidedCost() float64 {
	pricing, ok := e.pricing[e.expensiveModel]
	if !ok {
		// Validated at policy load; kept non-fatal here so a block is
		// never reported as an error just because the metric is off.
		e.logger.Warn().Str("model", e.expensiveModel).Msg("expensive model missing from pricing policy")
		return 0
	}

	cost := (float64(avoidedInputTokens)/1000.0)*pricing.InputPer1kTokens +
		(float64(avoidedOutputTokens)/1000.0)*pricing.OutputPer1kTokens

	return roundTo6(cost)
}

// 6 decimal places keep individual micro-costs visible (e.g. $0.000123).
func roundTo6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
