package models

import (
	"fmt"
	"time"
)

type IntentCategory string

const (
	IntentAllowed IntentCategory = "ALLOWED"
	IntentBlocked IntentCategory = "BLOCKED"
)

type ComplianceStatus string

const (
	ComplianceApproved       ComplianceStatus = "APPROVED"
	ComplianceRejected       ComplianceStatus = "REJECTED"
	ComplianceRequiresReview ComplianceStatus = "REQUIRES_REVIEW"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// Guardrail layers that can produce the final decision.
const (
	LayerPatternMatching   = "pattern_matching"
	LayerLLMClassification = "llm_classification"
)

// minReasoningLength is the output-quality floor for model-written
// justifications. Shorter strings are treated as schema violations.
const minReasoningLength = 10

// IntentClassification is the verdict of a single guardrail layer.
type IntentClassification struct {
	Category      IntentCategory `json:"intent_category" jsonschema:"required,description=ALLOWED or BLOCKED"`
	Confidence    float64        `json:"confidence" jsonschema:"required,description=Classifier confidence in [0.0 1.0]"`
	Reasoning     string         `json:"reasoning" jsonschema:"required,description=Human-readable justification"`
	DetectedRisks []string       `json:"detected_risks" jsonschema:"description=Threat category names that fired"`
}

func (c *IntentClassification) Validate() error {
	if c.Category != IntentAllowed && c.Category != IntentBlocked {
		return fmt.Errorf("invalid intent category: %q", c.Category)
	}
	if c.Confidence < 0.0 || c.Confidence > 1.0 {
		return fmt.Errorf("confidence %f out of range [0.0, 1.0]", c.Confidence)
	}
	if len(c.Reasoning) < minReasoningLength {
		return fmt.Errorf("reasoning too short: %d chars, minimum %d", len(c.Reasoning), minReasoningLength)
	}
	return nil
}

// GuardrailResult is the caller-facing outcome of a validation.
type GuardrailResult struct {
	Layer          string               `json:"layer"`
	Classification IntentClassification `json:"classification"`
	TokensUsed     int                  `json:"tokens_used"`
	CostAvoided    float64              `json:"cost_avoided"`
}

// Input message

type AuditRequest struct {
	RequestID   string  `json:"request_id"`
	Department  string  `json:"department"`
	Complexity  float64 `json:"complexity"`
	UserRequest string  `json:"user_request"`
}

// AuditVerdict is the structured output of the audit model call.
type AuditVerdict struct {
	ComplianceStatus ComplianceStatus `json:"compliance_status" jsonschema:"required,description=APPROVED REJECTED or REQUIRES_REVIEW"`
	RiskLevel        RiskLevel        `json:"risk_level" jsonschema:"required,description=LOW MEDIUM HIGH or CRITICAL"`
	AuditReasoning   string           `json:"audit_reasoning" jsonschema:"required,description=Auditor justification"`
}

func (v *AuditVerdict) Validate() error {
	switch v.ComplianceStatus {
	case ComplianceApproved, ComplianceRejected, ComplianceRequiresReview:
	default:
		return fmt.Errorf("invalid compliance status: %q", v.ComplianceStatus)
	}
	switch v.RiskLevel {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
	default:
		return fmt.Errorf("invalid risk level: %q", v.RiskLevel)
	}
	if len(v.AuditReasoning) < minReasoningLength {
		return fmt.Errorf("audit reasoning too short: %d chars, minimum %d", len(v.AuditReasoning), minReasoningLength)
	}
	return nil
}

// GatewayResult is the final output of the full request pipeline.
type GatewayResult struct {
	RequestID string          `json:"request_id"`
	Guardrail GuardrailResult `json:"guardrail"`
	Blocked   bool            `json:"blocked"`
	Model     string          `json:"model,omitempty"`
	Verdict   *AuditVerdict   `json:"verdict,omitempty"`
	Cost      float64         `json:"cost"`
	CreatedAt time.Time       `json:"created_at"`
}
