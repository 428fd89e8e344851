package telemetry

import (
	"errors"
	"strings"
	"testing"

	"github.com/meridianbank/governance-gateway/internal/config"
	"github.com/meridianbank/governance-gateway/internal/llm"
	"github.com/rs/zerolog"
)

const (
	expensiveModel = "anthropic.claude-3-5-sonnet-20241022-v2:0"
	cheapModel     = "anthropic.claude-3-5-haiku-20241022-v1:0"
)

func testPolicy() *config.ModelPolicy {
	return &config.ModelPolicy{
		Pricing: map[string]config.PricingModel{
			expensiveModel: {InputPer1kTokens: 0.00125, OutputPer1kTokens: 0.01000},
			cheapModel:     {InputPer1kTokens: 0.00015, OutputPer1kTokens: 0.00060},
		},
		Routing: config.RoutingConfig{
			ExpensiveModel: expensiveModel,
			CheapModel:     cheapModel,
		},
	}
}

func newTestEstimator() *CostEstimator {
	logger := zerolog.Nop()
	return NewCostEstimator(testPolicy(), &logger)
}

func TestCountTokens(t *testing.T) {
	estimator := newTestEstimator()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty text floors at one", "", 1},
		{"short text floors at one", "abc", 1},
		{"four chars per token", strings.Repeat("a", 400), 100},
		{"remainder rounds down", strings.Repeat("a", 7), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := estimator.CountTokens(tt.text); got != tt.expected {
				t.Errorf("Expected %d tokens, got %d", tt.expected, got)
			}
		})
	}
}

func TestCalculateCostFromTokens(t *testing.T) {
	estimator := newTestEstimator()

	// 1000 input + 1000 output on the expensive model.
	cost, err := estimator.CalculateCostFromTokens(expensiveModel, llm.TokenUsage{
		InputTokens:  1000,
		OutputTokens: 1000,
	})
	if err != nil {
		t.Fatalf("CalculateCostFromTokens failed: %v", err)
	}

	expected := 0.00125 + 0.01000
	if cost != expected {
		t.Errorf("Expected cost %f, got %f", expected, cost)
	}
}

func TestCalculateCostFromTokens_RoundsTo6Decimals(t *testing.T) {
	estimator := newTestEstimator()

	cost, err := estimator.CalculateCostFromTokens(cheapModel, llm.TokenUsage{
		InputTokens:  1,
		OutputTokens: 1,
	})
	if err != nil {
		t.Fatalf("CalculateCostFromTokens failed: %v", err)
	}

	// 0.00000015 + 0.0000006 = 0.00000075 -> rounds to 0.000001
	if cost != 0.000001 {
		t.Errorf("Expected 0.000001, got %.10f", cost)
	}
}

func TestCalculateCost_ApproximatesFromChars(t *testing.T) {
	estimator := newTestEstimator()

	// 4000 input chars -> 1000 tokens, 400 output chars -> 100 tokens.
	cost, err := estimator.CalculateCost(expensiveModel, 4000, 400)
	if err != nil {
		t.Fatalf("CalculateCost failed: %v", err)
	}

	expected := 0.00125 + 0.001 // 1000 in + 100 out
	if cost != expected {
		t.Errorf("Expected cost %f, got %f", expected, cost)
	}
}

func TestCalculateCost_UnknownModel(t *testing.T) {
	estimator := newTestEstimator()

	_, err := estimator.CalculateCost("unknown-model", 100, 100)
	if !errors.Is(err, ErrModelNotFound) {
		t.Errorf("Expected ErrModelNotFound, got %v", err)
	}
}

func TestEstimateAvoidedCost(t *testing.T) {
	estimator := newTestEstimator()

	// 600 input + 150 output on the expensive tier:
	// 0.00125*0.6 + 0.01*0.15 = 0.002250
	if cost := estimator.EstimateAvoidedCost(); cost != 0.002250 {
		t.Errorf("Expected avoided cost 0.002250, got %f", cost)
	}
}

func TestEstimateAvoidedCost_MissingPricingIsNonFatal(t *testing.T) {
	logger := zerolog.Nop()
	policy := testPolicy()
	policy.Routing.ExpensiveModel = "not-priced"
	estimator := NewCostEstimator(policy, &logger)

	if cost := estimator.EstimateAvoidedCost(); cost != 0 {
		t.Errorf("Expected 0 for unpriced expensive model, got %f", cost)
	}
}
