package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"devotional/internal/application/commands"
	"devotional/internal/domain"
	"devotional/internal/ports"
)

// RegisterReadTools adds all read-only archive tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, archive ports.Archive) {
	s.AddTool(latestTool(), latestHandler(archive))
	s.AddTool(listTool(), listHandler(archive))
	s.AddTool(readDevotionalTool(), readDevotionalHandler(archive))
}

// --- latest ---

func latestTool() mcp.Tool {
	return mcp.NewTool("latest",
		mcp.WithDescription("Return the latest record from the content tracker as JSON. Scans the content directory when no tracker exists yet."),
	)
}

func latestHandler(archive ports.Archive) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		manifest, err := commands.NewLatestCommand(archive, archive).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if manifest.Latest == nil {
			return mcp.NewToolResultText("No devotionals yet."), nil
		}
		return jsonResult(manifest.Latest)
	}
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List dated devotionals in the content directory, oldest first, with their titles."),
		mcp.WithNumber("limit",
			mcp.Description("Only return the most recent N entries. Omit or 0 for all."),
		),
	)
}

func listHandler(archive ports.Archive) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := req.GetInt("limit", 0)
		if limit < 0 {
			return toolError(fmt.Errorf("limit must not be negative"))
		}

		result, err := commands.NewIndexCommand(archive, archive, nil).Build(ctx)
		if err != nil {
			return toolError(err)
		}

		records := result.Manifest.Files
		if limit > 0 && limit < len(records) {
			records = records[len(records)-limit:]
		}
		return formatEntities(records, formatRecord)
	}
}

// --- read_devotional ---

func readDevotionalTool() mcp.Tool {
	return mcp.NewTool("read_devotional",
		mcp.WithDescription("Read the devotional stored for a date. Returns the markdown body, or the raw JSON for files not in generator format."),
		mcp.WithString("date",
			mcp.Description("Date in YYYY-MM-DD form (e.g. 2025-10-13)"),
			mcp.Required(),
		),
	)
}

func readDevotionalHandler(archive ports.Archive) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", "")
		if date == "" {
			return toolError(fmt.Errorf("date is required"))
		}

		result, err := commands.NewShowDevotionalCommand(archive, date).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if result.Devotional == nil {
			return mcp.NewToolResultText(string(result.Raw)), nil
		}
		return mcp.NewToolResultText(result.Devotional.Content), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatRecord(r domain.Record) string {
	title := domain.StringField(r.Title)
	if title == "" {
		return r.File
	}
	return fmt.Sprintf("%s  %s", r.File, title)
}
