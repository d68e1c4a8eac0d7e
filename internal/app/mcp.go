package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var mcpImpl = &mcp.Implementation{
	Name:    "gotrails",
	Version: "0.1.0",
}

// ServeMCP runs the MCP server on stdio until the context ends.
func (a *App) ServeMCP(ctx context.Context) error {
	srv := mcp.NewServer(mcpImpl, nil)
	a.RegisterMCP(srv)
	a.log.Info().Msg("serving MCP on stdio")
	return srv.Run(ctx, &mcp.StdioTransport{})
}

// RegisterMCP registers the two trail tools on an MCP server. Replies are
// human-readable text; lookup failures are reported in the reply text rather
// than as tool errors, so a misspelled slug never breaks a conversation.
func (a *App) RegisterMCP(srv *mcp.Server) {
	a.registerSearchTool(srv)
	a.registerDetailsTool(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// --- search_trails ---

type searchTrailsReq struct {
	Park string `json:"park"`
}

func (a *App) registerSearchTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "search_trails",
		Description: "Search for trails in a specific national park using AllTrails data",
		InputSchema: inputSchema(map[string]any{
			"park": map[string]any{
				"type":        "string",
				"description": "Park slug in format 'us/state/park-name' (e.g., 'us/tennessee/great-smoky-mountains-national-park')",
			},
		}, []string{"park"}),
	}

	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r searchTrailsReq
		if req.Params.Arguments != nil {
			if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
				return textResult(fmt.Sprintf("Error: invalid arguments: %v", err)), nil
			}
		}
		if r.Park == "" {
			return textResult("Park parameter is required"), nil
		}

		list, err := a.scraper.SearchTrails(ctx, r.Park)
		if err != nil {
			a.log.Error().Err(err).Str("park", r.Park).Msg("search_trails failed")
		}
		if len(list) == 0 {
			return textResult(fmt.Sprintf("No trails found for park: %s. Please check the park slug format.", r.Park)), nil
		}
		return textResult(FormatTrailList(r.Park, list)), nil
	})
}

// --- get_trail_details ---

type trailDetailsReq struct {
	Slug string `json:"slug"`
}

func (a *App) registerDetailsTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "get_trail_details",
		Description: "Get detailed information about a specific trail by its AllTrails slug",
		InputSchema: inputSchema(map[string]any{
			"slug": map[string]any{
				"type":        "string",
				"description": "Trail slug from AllTrails URL (the part after '/trail/')",
			},
		}, []string{"slug"}),
	}

	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r trailDetailsReq
		if req.Params.Arguments != nil {
			if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
				return textResult(fmt.Sprintf("Error: invalid arguments: %v", err)), nil
			}
		}
		if r.Slug == "" {
			return textResult("Slug parameter is required"), nil
		}

		detail, err := a.scraper.TrailDetails(ctx, r.Slug)
		if err != nil {
			a.log.Error().Err(err).Str("slug", r.Slug).Msg("get_trail_details failed")
		}
		if detail.Title == "" {
			return textResult(fmt.Sprintf("Trail not found for slug: %s. Please check the trail slug.", r.Slug)), nil
		}
		return textResult(FormatTrailDetail(detail)), nil
	})
}
