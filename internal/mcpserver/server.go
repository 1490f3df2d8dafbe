// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the shape registry for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dive2Pro/roam-types/internal/checker"
	"github.com/dive2Pro/roam-types/pkg/schema"
)

// Server wraps the MCP server with registry tools.
type Server struct {
	mcp *server.MCPServer
}

// New creates a new MCP server with all registry tools registered.
func New() *Server {
	s := &Server{}

	s.mcp = server.NewMCPServer(
		"roam-types",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_shapes",
		mcp.WithDescription("List every registered shape of the Roam host API contract."),
	), s.listShapes)

	s.mcp.AddTool(mcp.NewTool("describe_shape",
		mcp.WithDescription("Return the full descriptor of one shape: fields, optionality, "+
			"enumerated literal domains, union variants, and delivery mode."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Shape name (e.g. write.create-block)")),
	), s.describeShape)

	s.mcp.AddTool(mcp.NewTool("validate_payload",
		mcp.WithDescription("Check a JSON payload for structural conformance with a named shape. "+
			"Read the conventions first via the get_payload_conventions tool or the "+
			"roam-types://payload-conventions resource."),
		mcp.WithString("shape", mcp.Required(), mcp.Description("Shape name the payload claims to satisfy")),
		mcp.WithString("payload", mcp.Required(), mcp.Description("The JSON payload to check")),
	), s.validatePayload)

	s.mcp.AddTool(mcp.NewTool("get_payload_conventions",
		mcp.WithDescription("Returns the payload document conventions. "+
			"Call this before producing payloads for validation."),
	), s.getPayloadConventions)

	// Resource: payload conventions.
	s.mcp.AddResource(
		mcp.NewResource("roam-types://payload-conventions", "Payload Conventions",
			mcp.WithResourceDescription("Conventions every payload document must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readConventionsResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listShapes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := schema.Names()
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}

func (s *Server) describeShape(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	shape := schema.Lookup(name)
	if shape == nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown shape: %s", name)), nil
	}
	out, _ := json.MarshalIndent(shape, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) validatePayload(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("shape")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := req.RequireString("payload")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var value any
	if jsonErr := json.Unmarshal([]byte(payload), &value); jsonErr != nil {
		return mcp.NewToolResultError(fmt.Sprintf("payload is not valid JSON: %v", jsonErr)), nil
	}

	if checkErr := checker.CheckDocument(&checker.Document{Shape: name, Value: value}); checkErr != nil {
		return mcp.NewToolResultError(checkErr.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("payload conforms to %s", name)), nil
}

func (s *Server) getPayloadConventions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(PayloadConventions), nil
}

func (s *Server) readConventionsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "roam-types://payload-conventions",
			MIMEType: "text/markdown",
			Text:     PayloadConventions,
		},
	}, nil
}
