package guardrail

import (
	"regexp"

	"github.com/meridianbank/governance-gateway/internal/config"
	"github.com/rs/zerolog"
)

// Redaction placeholders keep the shape of the redacted value so logs
// stay readable while the data itself is gone.
const (
	cpfPlaceholder   = "***.***.***-**"
	emailPlaceholder = "***@***.***"
	phonePlaceholder = "(##) #####-####"
)

// Sanitizer applies data minimization to request text before it is
// logged or audited. It never touches what gets matched or classified.
type Sanitizer struct {
	maxLogLength int
	sanitizePII  bool
	cpfPattern   *regexp.Regexp
	emailPattern *regexp.Regexp
	phonePattern *regexp.Regexp
}

// NewSanitizer compiles the configured PII patterns. A broken pattern
// disables only that redaction, with a warning.
func NewSanitizer(cfg config.DataMinimizationConfig, logger *zerolog.Logger) *Sanitizer {
	s := &Sanitizer{
		maxLogLength: cfg.MaxLogLength,
		sanitizePII:  cfg.SanitizePII,
	}
	if s.maxLogLength <= 0 {
		s.maxLogLength = 200
	}

	if cfg.SanitizePII {
		s.cpfPattern = compilePIIPattern("cpf", cfg.PIIPatterns.CPF, logger)
		s.emailPattern = compilePIIPattern("email", cfg.PIIPatterns.Email, logger)
		s.phonePattern = compilePIIPattern("phone", cfg.PIIPatterns.Phone, logger)
	}

	return s
}

func compilePIIPattern(name string, pattern string, logger *zerolog.Logger) *regexp.Regexp {
	if pattern == "" {
		return nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		logger.Warn().Str("pii_pattern", name).Err(err).Msg("invalid PII pattern skipped")
		return nil
	}
	return re
}

// Sanitize truncates long text and redacts configured PII kinds.
func (s *Sanitizer) Sanitize(text string) string {
	if runes := []rune(text); len(runes) > s.maxLogLength {
		text = string(runes[:s.maxLogLength]) + "..."
	}

	if !s.sanitizePII {
		return text
	}

	if s.cpfPattern != nil {
		text = s.cpfPattern.ReplaceAllString(text, cpfPlaceholder)
	}
	if s.emailPattern != nil {
		text = s.emailPattern.ReplaceAllString(text, emailPlaceholder)
	}
	if s.phonePattern != nil {
		text = s.phonePattern.ReplaceAllString(text, phonePlaceholder)
	}

	return text
}
