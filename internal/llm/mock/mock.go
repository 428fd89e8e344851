// Package mock simulates the audit model so the gateway can run without
// AWS credentials or per-call costs. Simulated and live calls share the
// same response contract: JSON that validates as an AuditVerdict.
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meridianbank/governance-gateway/internal/llm"
	"github.com/meridianbank/governance-gateway/internal/models"
)

type Client struct {
}

func NewClient() *Client {
	return &Client{}
}

// charsPerToken mirrors the estimator's approximation so simulated usage
// stays consistent with simulated cost.
const charsPerToken = 4

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	verdict := simulateVerdict(request.Model, request.Prompt)

	body, err := json.Marshal(verdict)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize simulated verdict: %w", err)
	}

	return &llm.LLMResponse{
		Content:    string(body),
		StopReason: "end_turn",
		Usage: llm.TokenUsage{
			InputTokens:  approximateTokens(request.Prompt),
			OutputTokens: approximateTokens(string(body)),
		},
	}, nil
}

func (c *Client) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	return c.InvokeModel(ctx, request)
}

// simulateVerdict applies keyword rules to produce a plausible auditor
// answer. Order matters: deletion is checked before other operations.
func simulateVerdict(model string, prompt string) models.AuditVerdict {
	lower := strings.ToLower(prompt)

	var verdict models.AuditVerdict
	switch {
	case containsAny(lower, "exclusão", "excluir", "delete", "remover", "apagar"):
		verdict = models.AuditVerdict{
			ComplianceStatus: models.ComplianceRejected,
			RiskLevel:        models.RiskHigh,
			AuditReasoning:   "Operação de exclusão de dados identificada. Rejeitada por violar políticas de retenção de dados.",
		}
	case containsAny(lower, "transfer", "transferência", "pix", "pagamento"):
		verdict = models.AuditVerdict{
			ComplianceStatus: models.ComplianceRequiresReview,
			RiskLevel:        models.RiskMedium,
			AuditReasoning:   "Operação financeira detectada. Requer revisão adicional conforme política de compliance.",
		}
	case containsAny(lower, "consulta", "saldo", "extrato"):
		verdict = models.AuditVerdict{
			ComplianceStatus: models.ComplianceApproved,
			RiskLevel:        models.RiskLow,
			AuditReasoning:   "Operação de consulta de baixo risco. Aprovada conforme políticas de acesso.",
		}
	default:
		verdict = models.AuditVerdict{
			ComplianceStatus: models.ComplianceApproved,
			RiskLevel:        models.RiskLow,
			AuditReasoning:   "Solicitação genérica analisada. Sem riscos identificados.",
		}
	}

	// The expensive tier answers in more detail, the cheap tier more
	// concisely. This only affects simulated output size and cost.
	if isExpensiveModel(model) {
		verdict.AuditReasoning += " Análise detalhada realizada com modelo avançado."
	} else if runes := []rune(verdict.AuditReasoning); len(runes) > 100 {
		verdict.AuditReasoning = string(runes[:100]) + "."
	}

	return verdict
}

func isExpensiveModel(model string) bool {
	lower := strings.ToLower(model)
	return strings.Contains(lower, "sonnet") || strings.Contains(lower, "opus") || strings.Contains(lower, "pro")
}

func containsAny(s string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(s, word) {
			return true
		}
	}
	return false
}

func approximateTokens(text string) int {
	tokens := len(text) / charsPerToken
	if tokens < 1 {
		tokens = 1
	}
	return tokens
}
