package server

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Rorical/roricalc/internal/core"
	"github.com/Rorical/roricalc/internal/tools"
)

const (
	Name    = "roricalc"
	Version = "0.1.0"
)

// CalcServer serves one calculator session over MCP
type CalcServer struct {
	mcpServer *server.MCPServer
	session   *core.Session
	registry  *tools.Registry
}

// NewCalcServer creates a server with the builtin calculator tools registered
func NewCalcServer(session *core.Session) *CalcServer {
	mcpServer := server.NewMCPServer(Name, Version, server.WithToolCapabilities(false))

	registry := tools.NewRegistry()
	tools.RegisterBuiltinTools(registry, session)
	registry.AddTo(mcpServer)

	return &CalcServer{
		mcpServer: mcpServer,
		session:   session,
		registry:  registry,
	}
}

// Start serves on stdin/stdout until the client disconnects
func (s *CalcServer) Start() error {
	log.Printf("Starting %s MCP server with %d tools", Name, len(s.registry.ListTools()))
	return server.ServeStdio(s.mcpServer)
}

// MCPServer exposes the underlying server, mainly for tests
func (s *CalcServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}
