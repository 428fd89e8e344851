package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/meridianbank/governance-gateway/internal/mcpadapter"
	"github.com/meridianbank/governance-gateway/internal/setup"
	"github.com/meridianbank/governance-gateway/internal/setup/logger"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	// Load env
	_ = godotenv.Load()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load Config
	cfg := setup.LoadConfig()

	// Logs go to stderr; stdout belongs to the MCP transport.
	log := logger.New(cfg.LogLevel)

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, &log)
	if err != nil {
		log.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	// Create MCP Server
	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes (e.g. echo | ./bin/gateway-mcp)
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			log.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		log.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "governance-gateway",
			Version: "1.0.0",
		}, nil,
	)

	// Add Tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_intent",
		Description: "Run the two-layer intent guardrail on a user request and return the allow/block verdict with confidence and avoided cost",
	}, mcpadapter.NewValidateHandler(deps.Guardrail))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "audit_request",
		Description: "Run the full governance pipeline: guardrail, tier-based model routing, compliance audit, and cost telemetry",
	}, mcpadapter.NewAuditHandler(deps.Gateway))
	return server
}
