package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	// Populate the shape registry.
	_ "github.com/dive2Pro/roam-types/pkg/extension"
	_ "github.com/dive2Pro/roam-types/pkg/query"
	_ "github.com/dive2Pro/roam-types/pkg/write"
)

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so we call
	// the handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "list_shapes":
		result, err = srv.listShapes(ctx, req)
	case "describe_shape":
		result, err = srv.describeShape(ctx, req)
	case "validate_payload":
		result, err = srv.validatePayload(ctx, req)
	case "get_payload_conventions":
		result, err = srv.getPayloadConventions(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestListShapes(t *testing.T) {
	srv := New()
	r := callTool(t, srv, "list_shapes", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "write.create-block") {
		t.Errorf("listing missing write.create-block:\n%s", text)
	}
	if !strings.Contains(text, "extension.setting-action") {
		t.Errorf("listing missing extension.setting-action:\n%s", text)
	}
}

func TestDescribeShape(t *testing.T) {
	srv := New()
	r := callTool(t, srv, "describe_shape", map[string]interface{}{"name": "write.create-block"})
	text := resultText(r)
	if !strings.Contains(text, `"location"`) {
		t.Errorf("descriptor missing location field:\n%s", text)
	}
}

func TestDescribeShape_Unknown(t *testing.T) {
	srv := New()
	r := callTool(t, srv, "describe_shape", map[string]interface{}{"name": "no.such"})
	if !r.IsError {
		t.Error("unknown shape should return a tool error")
	}
}

func TestValidatePayload(t *testing.T) {
	srv := New()

	r := callTool(t, srv, "validate_payload", map[string]interface{}{
		"shape":   "extension.setting-action",
		"payload": `{"type": "select", "items": ["A", "B"]}`,
	})
	if r.IsError {
		t.Errorf("valid payload rejected: %s", resultText(r))
	}

	r = callTool(t, srv, "validate_payload", map[string]interface{}{
		"shape":   "extension.setting-action",
		"payload": `{"type": "button"}`,
	})
	if !r.IsError {
		t.Error("button without content should fail")
	}

	r = callTool(t, srv, "validate_payload", map[string]interface{}{
		"shape":   "query.result",
		"payload": `not json`,
	})
	if !r.IsError {
		t.Error("unparseable payload should fail")
	}
}

func TestGetPayloadConventions(t *testing.T) {
	srv := New()
	r := callTool(t, srv, "get_payload_conventions", map[string]interface{}{})
	if !strings.Contains(resultText(r), "Payload Conventions") {
		t.Error("conventions text missing")
	}
}
