package mcp

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerBoardResource(srv, svc)
	registerCounterTemplate(srv, svc)
}

func registerBoardResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"tally://board",
		"Board",
		mcp.WithResourceDescription("Every counter on the board with its score and color."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summary, err := svc.ListCounters(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, summary)
	})
}

func registerCounterTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"tally://counters/{id}",
		"Counter",
		mcp.WithTemplateDescription("A single counter."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := firstArgument(request.Params.Arguments["id"])
		if id == "" {
			return nil, fmt.Errorf("counter id is required")
		}

		dto, err := svc.CounterByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"counter": dto})
	})
}

// firstArgument unwraps a template argument, which arrives as a string or a
// list of strings depending on the matcher.
func firstArgument(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
