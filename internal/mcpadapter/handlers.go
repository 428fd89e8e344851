package mcpadapter

import (
	"context"

	"github.com/meridianbank/governance-gateway/internal/gateway"
	"github.com/meridianbank/governance-gateway/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ValidateInput is the MCP tool input schema for guardrail-only checks.
type ValidateInput struct {
	RequestID   string `json:"request_id" jsonschema:"unique request identifier"`
	UserRequest string `json:"user_request" jsonschema:"free-text user request to validate"`
}

// AuditInput is the MCP tool input schema for the full pipeline
// (matches HTTP API field names).
type AuditInput struct {
	RequestID   string  `json:"request_id" jsonschema:"unique request identifier"`
	Department  string  `json:"department" jsonschema:"department key from the routing policy"`
	Complexity  float64 `json:"complexity" jsonschema:"request complexity score in [0.0 1.0]"`
	UserRequest string  `json:"user_request" jsonschema:"free-text user request to audit"`
}

// NewValidateHandler returns a tool handler backed by the given guardrail.
// Pass the returned function to mcp.AddTool.
func NewValidateHandler(validator gateway.IntentValidator) func(context.Context, *mcp.CallToolRequest, ValidateInput) (*mcp.CallToolResult, models.GuardrailResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, models.GuardrailResult, error) {
		result := validator.ValidateIntent(ctx, input.UserRequest)
		return nil, result, nil
	}
}

// NewAuditHandler returns a tool handler that runs the full request
// pipeline through the gateway.
func NewAuditHandler(gw *gateway.Gateway) func(context.Context, *mcp.CallToolRequest, AuditInput) (*mcp.CallToolResult, models.GatewayResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AuditInput) (*mcp.CallToolResult, models.GatewayResult, error) {
		result, err := gw.Process(ctx, models.AuditRequest{
			RequestID:   input.RequestID,
			Department:  input.Department,
			Complexity:  input.Complexity,
			UserRequest: input.UserRequest,
		})
		if err != nil {
			return nil, models.GatewayResult{}, err
		}
		return nil, result, nil
	}
}
