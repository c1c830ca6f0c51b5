package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListCountersTool(srv, svc)
	registerAddCounterTool(srv, svc)
	registerUpdateCounterTool(srv, svc)
	registerAdjustCounterTool(srv, svc)
	registerRemoveCounterTool(srv, svc)
}

func registerListCountersTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_counters",
		mcp.WithDescription("List every counter on the board in order."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summary, err := svc.ListCounters(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(summary)
	})
}

func registerAddCounterTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_counter",
		mcp.WithDescription("Add a counter. Without a name it is called \"Player N\"; without a color it takes the next palette color."),
		mcp.WithString("name",
			mcp.Description("Display name; surrounding whitespace is trimmed."),
		),
		mcp.WithNumber("score",
			mcp.Description("Starting score, default 0."),
		),
		mcp.WithString("color",
			mcp.Description("Hex color such as #2563eb."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Name  string `json:"name"`
			Score int    `json:"score"`
			Color string `json:"color"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddCounter(ctx, AddCounterOptions{
			Name:  args.Name,
			Score: args.Score,
			Color: args.Color,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateCounterTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_counter",
		mcp.WithDescription("Change a counter's name, score or color. Omitted fields are left alone."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Counter id or a unique prefix of it."),
		),
		mcp.WithString("name",
			mcp.Description("New display name."),
		),
		mcp.WithNumber("score",
			mcp.Description("New score."),
		),
		mcp.WithString("color",
			mcp.Description("New hex color."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID    string  `json:"id"`
			Name  *string `json:"name"`
			Score *int    `json:"score"`
			Color *string `json:"color"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.ID == "" {
			return mcp.NewToolResultError("id is required"), nil
		}

		dto, err := svc.UpdateCounter(ctx, UpdateCounterOptions{
			ID:    args.ID,
			Name:  args.Name,
			Score: args.Score,
			Color: args.Color,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAdjustCounterTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"adjust_counter",
		mcp.WithDescription("Add a signed delta to a counter's score. A tap is 1, a long press is 5."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Counter id or a unique prefix of it."),
		),
		mcp.WithNumber("delta",
			mcp.Required(),
			mcp.Description("Amount to add; negative to subtract."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		delta, err := request.RequireInt("delta")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.AdjustCounter(ctx, id, delta)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRemoveCounterTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_counter",
		mcp.WithDescription("Delete a counter from the board."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Counter id or a unique prefix of it."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.RemoveCounter(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"removed": dto})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
