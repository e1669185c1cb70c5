package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"devotional/internal/application/commands"
	"devotional/internal/ports"
)

// RegisterWriteTools adds the tools that write artifacts or the tracker.
func RegisterWriteTools(s *server.MCPServer, archive ports.Archive, providers []ports.Provider, app string, logger *slog.Logger) {
	s.AddTool(generateTool(), generateHandler(archive, providers, app, logger))
	s.AddTool(reindexTool(), reindexHandler(archive, logger))
}

// --- generate ---

func generateTool() mcp.Tool {
	return mcp.NewTool("generate",
		mcp.WithDescription("Generate today's devotional, trying providers in order until one succeeds. Overwrites any file already written for today."),
		mcp.WithBoolean("reindex",
			mcp.Description("Rebuild the content tracker after writing"),
		),
	)
}

func generateHandler(archive ports.Archive, providers []ports.Provider, app string, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewGenerateCommand(providers, archive, app, logger)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		msg := result.Message
		if req.GetBool("reindex", false) {
			indexed, err := commands.NewIndexCommand(archive, archive, logger).Execute(ctx)
			if err != nil {
				return toolError(fmt.Errorf("%s; reindex failed: %w", msg, err))
			}
			msg += "\n" + indexed.Message
		}
		return mcp.NewToolResultText(msg), nil
	}
}

// --- reindex ---

func reindexTool() mcp.Tool {
	return mcp.NewTool("reindex",
		mcp.WithDescription("Rebuild the content tracker from the content directory."),
	)
}

func reindexHandler(archive ports.Archive, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewIndexCommand(archive, archive, logger).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		msg := result.Message
		if len(result.Skipped) > 0 {
			msg += fmt.Sprintf("\nSkipped: %s", strings.Join(result.Skipped, ", "))
		}
		return mcp.NewToolResultText(msg), nil
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
