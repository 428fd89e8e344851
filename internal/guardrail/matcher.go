package guardrail

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/meridianbank/governance-gateway/internal/config"
	"github.com/meridianbank/governance-gateway/internal/models"
	"github.com/rs/zerolog"
)

// Deterministic matches are treated as near-certain. Kept a fixed
// constant on purpose: no richer confidence model is defined for Layer 1.
const patternMatchConfidence = 0.95

type compiledCategory struct {
	name     string
	patterns []*regexp.Regexp
}

// Matcher is Layer 1: compiled signature matching across threat
// categories. Zero marginal cost per request, immutable after
// construction, safe for concurrent use.
type Matcher struct {
	categories []compiledCategory
	logger     *zerolog.Logger
}

// NewMatcher compiles every pattern case-insensitively. A pattern that
// fails to compile is skipped with a warning; one broken signature must
// not take down the whole guardrail. Category order follows the config
// declaration order.
func NewMatcher(threatPatterns config.ThreatPatterns, logger *zerolog.Logger) *Matcher {
	categories := make([]compiledCategory, 0, len(threatPatterns))
	total := 0

	for _, category := range threatPatterns {
		compiled := make([]*regexp.Regexp, 0, len(category.Patterns))
		for _, pattern := range category.Patterns {
			re, err := regexp.Compile("(?i)" + pattern)
			if err != nil {
				logger.Warn().
					Str("category", category.Name).
					Str("pattern", pattern).
					Err(err).
					Msg("invalid threat pattern skipped")
				continue
			}
			compiled = append(compiled, re)
		}
		categories = append(categories, compiledCategory{name: category.Name, patterns: compiled})
		total += len(compiled)
	}

	logger.Info().Int("patterns", total).Int("categories", len(categories)).Msg("threat patterns compiled")

	return &Matcher{categories: categories, logger: logger}
}

// Match scans the request against every category in declaration order.
// The first hit within a category is enough evidence for that category,
// but the scan continues across categories so DetectedRisks can report
// multiple simultaneous threat types.
//
// Returns (nil, false) when nothing fired: Layer 1 never allows, it only
// blocks or stays silent.
func (m *Matcher) Match(request string) (*models.IntentClassification, bool) {
	var detected []string

	for _, category := range m.categories {
		for _, pattern := range category.patterns {
			if pattern.MatchString(request) {
				detected = append(detected, category.name)
				m.logger.Debug().
					Str("category", category.name).
					Str("pattern", pattern.String()).
					Msg("threat pattern matched")
				break
			}
		}
	}

	if len(detected) == 0 {
		return nil, false
	}

	return &models.IntentClassification{
		Category:   models.IntentBlocked,
		Confidence: patternMatchConfidence,
		Reasoning: fmt.Sprintf("Padrões de ameaça detectados na requisição: %s. Requisição bloqueada por segurança.",
			strings.Join(detected, ", ")),
		DetectedRisks: detected,
	}, true
}
