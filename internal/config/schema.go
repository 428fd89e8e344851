package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// GuardrailConfig is the complete intent-guardrail configuration.
type GuardrailConfig struct {
	ThreatPatterns    ThreatPatterns          `yaml:"threat_patterns"`
	LLMClassification LLMClassificationConfig `yaml:"llm_classification"`
	DataMinimization  DataMinimizationConfig  `yaml:"data_minimization"`
}

// ThreatCategory is a named bucket of attack-pattern strings.
type ThreatCategory struct {
	Name     string
	Patterns []string
}

// ThreatPatterns preserves the declaration order of the categories.
// Category iteration order is part of the guardrail contract, so the
// mapping is decoded from the raw yaml node instead of a Go map.
type ThreatPatterns []ThreatCategory

func (t *ThreatPatterns) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("threat_patterns must be a mapping, got yaml kind %d", node.Kind)
	}

	categories := make([]ThreatCategory, 0, len(node.Content)/2)
	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		var patterns []string
		if err := valueNode.Decode(&patterns); err != nil {
			return fmt.Errorf("invalid pattern list for category %q: %w", keyNode.Value, err)
		}

		categories = append(categories, ThreatCategory{
			Name:     keyNode.Value,
			Patterns: patterns,
		})
	}

	*t = categories
	return nil
}

// LLMClassificationConfig configures the semantic classifier (Layer 2).
type LLMClassificationConfig struct {
	Enabled         *bool   `yaml:"enabled"`
	Model           string  `yaml:"model"`
	Temperature     float64 `yaml:"temperature"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
	ResponseFormat  string  `yaml:"response_format"`
}

// IsEnabled treats a missing enabled flag as on. Disabling a security
// control must be an explicit decision in the config file.
func (c LLMClassificationConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// DataMinimizationConfig controls what ends up in logs and audit trails.
type DataMinimizationConfig struct {
	MaxLogLength int         `yaml:"max_log_length"`
	SanitizePII  bool        `yaml:"sanitize_pii"`
	PIIPatterns  PIIPatterns `yaml:"pii_patterns"`
}

type PIIPatterns struct {
	CPF   string `yaml:"cpf"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

func (c *GuardrailConfig) Validate() error {
	if len(c.ThreatPatterns) == 0 {
		return fmt.Errorf("threat_patterns section is missing or empty")
	}
	for _, category := range c.ThreatPatterns {
		if len(category.Patterns) == 0 {
			return fmt.Errorf("threat category %q has no patterns", category.Name)
		}
	}
	if c.LLMClassification.Temperature < 0.0 || c.LLMClassification.Temperature > 1.0 {
		return fmt.Errorf("llm_classification.temperature %f out of range [0.0, 1.0]", c.LLMClassification.Temperature)
	}
	return nil
}

// ModelPolicy is the routing and pricing policy shared by the router and
// the cost estimator.
type ModelPolicy struct {
	Pricing     map[string]PricingModel     `yaml:"pricing"`
	Routing     RoutingConfig               `yaml:"routing"`
	Departments map[string]DepartmentConfig `yaml:"departments"`
}

type PricingModel struct {
	InputPer1kTokens  float64 `yaml:"input_per_1k_tokens"`
	OutputPer1kTokens float64 `yaml:"output_per_1k_tokens"`
}

type RoutingConfig struct {
	ExpensiveModel string `yaml:"expensive_model"`
	CheapModel     string `yaml:"cheap_model"`
}

type DepartmentConfig struct {
	Tier                string   `yaml:"tier"`
	ComplexityThreshold *float64 `yaml:"complexity_threshold"`
}

// Tiers understood by the router.
const (
	TierPlatinum = "platinum"
	TierStandard = "standard"
	TierBudget   = "budget"
)

func (p *ModelPolicy) Validate() error {
	if len(p.Pricing) == 0 {
		return fmt.Errorf("pricing section is missing or empty")
	}
	if p.Routing.ExpensiveModel == "" || p.Routing.CheapModel == "" {
		return fmt.Errorf("routing requires both expensive_model and cheap_model")
	}
	if _, ok := p.Pricing[p.Routing.ExpensiveModel]; !ok {
		return fmt.Errorf("expensive model %q has no pricing entry", p.Routing.ExpensiveModel)
	}
	if _, ok := p.Pricing[p.Routing.CheapModel]; !ok {
		return fmt.Errorf("cheap model %q has no pricing entry", p.Routing.CheapModel)
	}
	for name, dept := range p.Departments {
		switch dept.Tier {
		case TierPlatinum, TierStandard, TierBudget:
		default:
			return fmt.Errorf("department %q has unsupported tier %q", name, dept.Tier)
		}
	}
	return nil
}
