// Package router decides which model tier serves a request. All rules
// live in the model policy YAML; the router only executes them, so FinOps
// can retune routing without a code change.
package router

import (
	"errors"
	"fmt"

	"github.com/meridianbank/governance-gateway/internal/config"
	"github.com/rs/zerolog"
)

var (
	ErrDepartmentNotFound = errors.New("department not found in routing policy")
	ErrInvalidComplexity  = errors.New("complexity score out of range")
	ErrPolicyValidation   = errors.New("routing policy validation failed")
)

type Router struct {
	departments    map[string]config.DepartmentConfig
	expensiveModel string
	cheapModel     string
	logger         *zerolog.Logger
}

func NewRouter(policy *config.ModelPolicy, logger *zerolog.Logger) *Router {
	return &Router{
		departments:    policy.Departments,
		expensiveModel: policy.Routing.ExpensiveModel,
		cheapModel:     policy.Routing.CheapModel,
		logger:         logger,
	}
}

// Route picks a model for the department and complexity score.
//
// Tier rules:
//   - platinum: always the expensive model, complexity ignored
//   - budget: always the cheap model, complexity ignored
//   - standard: cheap below the department threshold, expensive at or above
func (r *Router) Route(department string, complexity float64) (string, error) {
	dept, ok := r.departments[department]
	if !ok {
		r.logger.Warn().Str("department", department).Msg("department not in routing policy")
		return "", fmt.Errorf("department %q: %w", department, ErrDepartmentNotFound)
	}

	if complexity < 0.0 || complexity > 1.0 {
		r.logger.Warn().Float64("complexity", complexity).Msg("invalid complexity score")
		return "", fmt.Errorf("complexity %f must be in [0.0, 1.0]: %w", complexity, ErrInvalidComplexity)
	}

	switch dept.Tier {
	case config.TierPlatinum:
		r.logger.Info().Str("department", department).Str("model", r.expensiveModel).Msg("tier platinum selected")
		return r.expensiveModel, nil

	case config.TierBudget:
		r.logger.Info().Str("department", department).Str("model", r.cheapModel).Msg("tier budget selected")
		return r.cheapModel, nil

	case config.TierStandard:
		if dept.ComplexityThreshold == nil {
			return "", fmt.Errorf("department %q (tier standard) requires complexity_threshold: %w",
				department, ErrPolicyValidation)
		}

		model := r.cheapModel
		if complexity >= *dept.ComplexityThreshold {
			model = r.expensiveModel
		}
		r.logger.Info().
			Str("department", department).
			Float64("complexity", complexity).
			Float64("threshold", *dept.ComplexityThreshold).
			Str("model", model).
			Msg("tier standard selected")
		return model, nil
	}

	return "", fmt.Errorf("tier %q not supported for department %q: %w", dept.Tier, department, ErrPolicyValidation)
}
