package mcp

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seiler-lab/biograph/internal/config"
	"github.com/seiler-lab/biograph/internal/store"
	"github.com/seiler-lab/biograph/internal/taxonomy"
)

// Server wraps the MCP SDK server and exposes the generate, perturb, and
// query operations as tools over a shared snapshot store.
type Server struct {
	server *sdk.Server
	store  store.GraphStore
	tables *taxonomy.Tables
	cfg    *config.EngineConfig
	root   string
}

// Config holds server configuration.
type Config struct {
	Name    string // Server name (e.g., "biograph")
	Version string // Server version
	Root    string // Project root directory
	Tables  *taxonomy.Tables
	Engine  *config.EngineConfig
}

// NewServer creates a new MCP server with biograph tools.
func NewServer(cfg *Config) (*Server, error) {
	graphStore, err := store.NewSQLiteGraphStore(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to create graph store: %w", err)
	}

	tables := cfg.Tables
	if tables == nil {
		tables = taxonomy.Default()
	}
	engine := cfg.Engine
	if engine == nil {
		engine = config.Default()
	}

	mcpServer := sdk.NewServer(&sdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, &sdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, req *sdk.InitializedRequest) {
			// Client initialized, ready to serve
		},
	})

	s := &Server{
		server: mcpServer,
		store:  graphStore,
		tables: tables,
		cfg:    engine,
		root:   cfg.Root,
	}
	s.registerTools()

	return s, nil
}

// registerTools registers all biograph MCP tools with the server.
func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "biograph_generate",
		Description: "Generate a synthetic multi-omics baseline network and save it as a named snapshot",
	}, s.handleGenerate)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "biograph_perturb",
		Description: "Apply a drug treatment to a stored baseline snapshot and save the perturbed graph",
	}, s.handlePerturb)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "biograph_query",
		Description: "Run a free-text question against a stored snapshot (omics layer, time point, pathway, category, direction, drug-target intents)",
	}, s.handleQuery)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "biograph_list",
		Description: "List stored graph snapshots",
	}, s.handleList)
}

// Run starts the MCP server over stdio transport.
// This blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	err := s.server.Run(ctx, &sdk.StdioTransport{})

	s.store.Close()

	return err
}

// Close closes the server and releases resources.
func (s *Server) Close() error {
	return s.store.Close()
}
