package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/jumpstart/internal/config"
	"github.com/1broseidon/jumpstart/internal/placement"
	"github.com/1broseidon/jumpstart/internal/platform"
)

const (
	ServerName    = "jumpstart"
	ServerVersion = "0.1.0"
)

// Server is the MCP server exposing workspace placement over stdio.
// Each tool call loads the config and opens a fresh X11 connection so
// a long-lived server never holds a stale view of the desktop.
type Server struct {
	mcpServer  *mcpsdk.Server
	configPath string

	// Injection points for tests.
	loadConfig  func(path string) (*config.Config, error)
	openBackend func() (platform.Backend, error)
	newLauncher func() placement.Launcher
}

// NewServer creates the MCP server. configPath may be empty to use the
// standard config location.
func NewServer(configPath string) *Server {
	s := &Server{
		configPath:  configPath,
		loadConfig:  loadConfigFrom,
		openBackend: openX11Backend,
		newLauncher: func() placement.Launcher { return placement.ExecLauncher{} },
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "run_placement",
		Description: "Launch the configured applications and move each window to its half-monitor slot. Applications are processed sequentially in config order and one failure never blocks the rest. Optionally restrict the run to named applications, or dry-run to see the planned rectangles without launching anything.",
	}, s.handleRunPlacement)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_monitors",
		Description: "List the active displays with their usable areas (panels and docks subtracted). Display 1 is the primary monitor; config display indices refer to this ordering.",
	}, s.handleListMonitors)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the current titled top-level windows. Useful for checking what title substring a config entry's name would match.",
	}, s.handleListWindows)
}

func loadConfigFrom(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func openX11Backend() (platform.Backend, error) {
	return platform.NewX11Backend()
}
