package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/meridianbank/governance-gateway/internal/api/middleware"
	"github.com/meridianbank/governance-gateway/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/validate").
			To(handler.Validate).
			Doc("Validate the intent of a user request without calling the primary model").
			Metadata(restfulspec.KeyOpenAPITags, []string{"guardrail"}).
			Reads(ValidateRequest{}).
			Writes(models.GuardrailResult{}).
			Returns(200, "OK", models.GuardrailResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/audit").
			To(handler.Audit).
			Doc("Run the full pipeline: guardrail, tier routing, audit model call, cost telemetry").
			Metadata(restfulspec.KeyOpenAPITags, []string{"audit"}).
			Reads(models.AuditRequest{}).
			Writes(models.GatewayResult{}).
			Returns(200, "OK", models.GatewayResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Department Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
