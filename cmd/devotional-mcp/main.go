package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "devotional/internal/adapters/mcp"
	"devotional/internal/bootstrap"
	"devotional/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "config file (default ./devotional.yaml)")
	verboseFlag := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("devotional-mcp: %v", err)
	}

	repo := bootstrap.Repository(cfg)
	// stdout carries the protocol
	logger := bootstrap.Logger(os.Stderr, *verboseFlag)

	mcpServer := server.NewMCPServer(
		"devotional-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo)
	mcpadapter.RegisterWriteTools(mcpServer, repo, bootstrap.Providers(cfg), cfg.App, logger)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("devotional-mcp: %v", err)
	}
}
