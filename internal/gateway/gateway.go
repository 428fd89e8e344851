// Package gateway runs the full request path: intent validation, tier
// routing, prompt rendering, the audit model call, and cost telemetry.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/meridianbank/governance-gateway/internal/llm"
	"github.com/meridianbank/governance-gateway/internal/models"
	"github.com/meridianbank/governance-gateway/internal/prompts"
	"github.com/rs/zerolog"
)

// IntentValidator gates requests before any primary model call
type IntentValidator interface {
	ValidateIntent(ctx context.Context, request string) models.GuardrailResult
	SanitizeForLog(text string) string
}

// ModelRouter picks a model for a department and complexity score
type ModelRouter interface {
	Route(department string, complexity float64) (string, error)
}

// CostCalculator prices model calls
type CostCalculator interface {
	CalculateCost(model string, inputChars int, outputChars int) (float64, error)
	CalculateCostFromTokens(model string, usage llm.TokenUsage) (float64, error)
}

// PromptRenderer renders named prompt templates
type PromptRenderer interface {
	Render(name string, data prompts.PromptData) (string, error)
}

type Gateway struct {
	validator IntentValidator
	router    ModelRouter
	renderer  PromptRenderer
	client    llm.LLMClient
	costs     CostCalculator
	maxTokens int
	logger    *zerolog.Logger
}

func NewGateway(
	validator IntentValidator,
	router ModelRouter,
	renderer PromptRenderer,
	client llm.LLMClient,
	costs CostCalculator,
	maxTokens int,
	logger *zerolog.Logger,
) *Gateway {
	if maxTokens == 0 {
		maxTokens = 512
	}
	return &Gateway{
		validator: validator,
		router:    router,
		renderer:  renderer,
		client:    client,
		costs:     costs,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// Low temperature keeps audit verdicts deterministic across retries.
const auditTemperature = 0.1

// Process validates, routes, and audits one request. A guardrail block
// short-circuits before any primary model call. Unlike the guardrail's
// secondary layer, a primary model failure is an error to the caller:
// the audit itself must not silently degrade.
func (g *Gateway) Process(ctx context.Context, req models.AuditRequest) (models.GatewayResult, error) {
	result := models.GatewayResult{
		RequestID: req.RequestID,
		CreatedAt: time.Now(),
	}

	g.logger.Info().
		Str("request_id", req.RequestID).
		Str("department", req.Department).
		Str("request", g.validator.SanitizeForLog(req.UserRequest)).
		Msg("processing request")

	result.Guardrail = g.validator.ValidateIntent(ctx, req.UserRequest)
	if result.Guardrail.Classification.Category == models.IntentBlocked {
		result.Blocked = true
		g.logger.Warn().
			Str("request_id", req.RequestID).
			Str("layer", result.Guardrail.Layer).
			Msg("request blocked before model call")
		return result, nil
	}

	model, err := g.router.Route(req.Department, req.Complexity)
	if err != nil {
		return result, fmt.Errorf("routing failed for request %s: %w", req.RequestID, err)
	}
	result.Model = model

	prompt, err := g.renderer.Render(prompts.AuditMasterTemplate, prompts.PromptData{UserRequest: req.UserRequest})
	if err != nil {
		return result, fmt.Errorf("failed to render audit prompt: %w", err)
	}

	verdict, resp, err := g.invokeAudit(ctx, model, prompt)
	if err != nil {
		return result, err
	}
	result.Verdict = verdict

	cost, err := g.priceCall(model, prompt, resp)
	if err != nil {
		return result, err
	}
	result.Cost = cost

	g.logger.Info().
		Str("request_id", req.RequestID).
		Str("model", model).
		Str("compliance_status", string(verdict.ComplianceStatus)).
		Str("risk_level", string(verdict.RiskLevel)).
		Float64("cost_usd", cost).
		Msg("request audited")

	return result, nil
}

// invokeAudit calls the model and validates the structured verdict. One
// retry with a reinforced prompt when the first answer fails validation.
func (g *Gateway) invokeAudit(ctx context.Context, model string, prompt string) (*models.AuditVerdict, *llm.LLMResponse, error) {
	const maxAttempts = 2

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := g.client.InvokeModelWithRetry(ctx, llm.LLMRequest{
			Model:       model,
			Prompt:      prompt,
			MaxTokens:   g.maxTokens,
			Temperature: auditTemperature,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("audit model call failed: %w", err)
		}

		verdict, err := parseVerdict(resp.Content)
		if err == nil {
			return verdict, resp, nil
		}
		lastErr = err

		g.logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Str("model", model).
			Msg("audit verdict failed validation")

		prompt += "\n\nIMPORTANTE: Retorne APENAS JSON válido no formato especificado."
	}

	return nil, nil, fmt.Errorf("audit verdict invalid after %d attempts: %w", maxAttempts, lastErr)
}

// stripCodeFence removes markdown code block formatting if present.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		firstNewline := strings.Index(content, "\n")
		closingBackticks := strings.LastIndex(content, "```")
		if firstNewline != -1 && closingBackticks > firstNewline {
			content = strings.TrimSpace(content[firstNewline+1 : closingBackticks])
		}
	}

	return content
}

func parseVerdict(content string) (*models.AuditVerdict, error) {
	var verdict models.AuditVerdict
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &verdict); err != nil {
		return nil, fmt.Errorf("failed to deserialize audit verdict: %w", err)
	}
	if err := verdict.Validate(); err != nil {
		return nil, err
	}
	return &verdict, nil
}

// priceCall uses the provider usage report when present and falls back to
// the character approximation for simulated responses without one.
func (g *Gateway) priceCall(model string, prompt string, resp *llm.LLMResponse) (float64, error) {
	if resp.Usage.Total() > 0 {
		cost, err := g.costs.CalculateCostFromTokens(model, resp.Usage)
		if err != nil {
			return 0, fmt.Errorf("cost calculation failed: %w", err)
		}
		return cost, nil
	}

	cost, err := g.costs.CalculateCost(model, len(prompt), len(resp.Content))
	if err != nil {
		return 0, fmt.Errorf("cost calculation failed: %w", err)
	}
	return cost, nil
}
