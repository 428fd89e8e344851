package api

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/meridianbank/governance-gateway/internal/api/middleware"
	"github.com/meridianbank/governance-gateway/internal/gateway"
	"github.com/meridianbank/governance-gateway/internal/models"
	"github.com/meridianbank/governance-gateway/internal/router"
	"github.com/rs/zerolog"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ValidateRequest is the body of the guardrail-only endpoint.
type ValidateRequest struct {
	RequestID   string `json:"request_id"`
	UserRequest string `json:"user_request"`
}

type Handler struct {
	gateway   *gateway.Gateway
	validator gateway.IntentValidator
	logger    *zerolog.Logger
}

func NewHandler(gw *gateway.Gateway, validator gateway.IntentValidator, logger *zerolog.Logger) *Handler {
	return &Handler{
		gateway:   gw,
		validator: validator,
		logger:    logger,
	}
}

// POST /api/v1/validate
// Body: ValidateRequest
// Returns: GuardrailResult
func (h *Handler) Validate(req *restful.Request, resp *restful.Response) {
	var validateRequest ValidateRequest
	if err := req.ReadEntity(&validateRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("request_id", validateRequest.RequestID).
		Str("request", h.validator.SanitizeForLog(validateRequest.UserRequest)).
		Msg("Start intent validation")

	ctx := req.Request.Context()
	result := h.validator.ValidateIntent(ctx, validateRequest.UserRequest)

	h.logger.Info().
		Str("request_id", validateRequest.RequestID).
		Str("layer", result.Layer).
		Str("category", string(result.Classification.Category)).
		Int("tokens_used", result.TokensUsed).
		Msg("Intent validation complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/audit
// Body: AuditRequest
// Returns: GatewayResult
func (h *Handler) Audit(req *restful.Request, resp *restful.Response) {
	var auditRequest models.AuditRequest
	if err := req.ReadEntity(&auditRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	result, err := h.gateway.Process(ctx, auditRequest)
	if err != nil {
		h.logger.Error().Err(err).Str("request_id", auditRequest.RequestID).Msg("Audit failed")
		middleware.HandleError(resp, err, statusForError(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

// Client mistakes (unknown department, bad complexity) are 4xx; anything
// else in the pipeline is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, router.ErrDepartmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, router.ErrInvalidComplexity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
