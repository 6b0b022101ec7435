package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/grayscale-cli/internal/platform"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the platform provider.
type mcpServer struct {
	provider  *platform.Provider
	displayMu sync.Mutex
	mcp       *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with the grayscale tools.
func newMCPServer() (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{
		provider: provider,
	}

	s.mcp = mcpserver.NewMCPServer(
		"grayscale-cli",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Report whether forced grayscale display rendering is currently active"),
		),
		s.handleStatus,
	)

	s.mcp.AddTool(
		mcp.NewTool("enable",
			mcp.WithDescription("Turn forced grayscale rendering on if it is off. Reports whether a change was made."),
		),
		s.handleEnable,
	)

	s.mcp.AddTool(
		mcp.NewTool("disable",
			mcp.WithDescription("Turn forced grayscale rendering off if it is on. Reports whether a change was made."),
		),
		s.handleDisable,
	)

	s.mcp.AddTool(
		mcp.NewTool("toggle",
			mcp.WithDescription("Invert forced grayscale rendering and report the new state"),
		),
		s.handleToggle,
	)
}

// resultToText serializes a result struct to YAML for MCP responses.
func resultToText(result interface{}) string {
	b, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Sprintf("marshal error: %v", err)
	}
	return string(b)
}

func (s *mcpServer) handleStatus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.displayMu.Lock()
	defer s.displayMu.Unlock()

	on, err := s.provider.Display.UsesForceToGray()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(resultToText(StatusResult{
		OK:        true,
		Action:    "status",
		Grayscale: on,
	})), nil
}

func (s *mcpServer) handleEnable(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.handleSet(true, "enable")
}

func (s *mcpServer) handleDisable(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.handleSet(false, "disable")
}

func (s *mcpServer) handleSet(want bool, action string) (*mcp.CallToolResult, error) {
	s.displayMu.Lock()
	defer s.displayMu.Unlock()

	changed, err := ensureGrayscale(s.provider.Display, want)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(resultToText(SetResult{
		OK:        true,
		Action:    action,
		Grayscale: want,
		Changed:   changed,
	})), nil
}

func (s *mcpServer) handleToggle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.displayMu.Lock()
	defer s.displayMu.Unlock()

	on, err := toggleGrayscale(s.provider.Display)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(resultToText(SetResult{
		OK:        true,
		Action:    "toggle",
		Grayscale: on,
		Changed:   true,
	})), nil
}
