// Package toolclient implements agent.ToolRunner against the remote
// ToolRunner RPC service: it decodes the model's raw JSON tool input,
// dispatches to the right RPC, and renders the response into the
// user-facing text the model sees on its next turn.
package toolclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/RaunakChhatwal/BashAgent/internal/agent"
	"github.com/RaunakChhatwal/BashAgent/internal/rpc/toolrunnerpb"
)

// Client dials a single ToolRunner peer and implements agent.ToolRunner.
type Client struct {
	conn    *grpc.ClientConn
	rpc     toolrunnerpb.ToolRunnerClient
	schemas map[string]*jsonschema.Schema
}

// Dial connects to addr (host:port, typically "<server>:50051"). The
// connection is lazy: Dial returns once the channel is constructed, not once
// it's ready, matching grpc-go's usual non-blocking dial.
func Dial(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, &agent.TransportError{Method: "Dial", Cause: err}
	}
	schemas, err := compileToolSchemas()
	if err != nil {
		return nil, &agent.ConfigError{Message: err.Error()}
	}
	return &Client{conn: conn, rpc: toolrunnerpb.NewToolRunnerClient(conn), schemas: schemas}, nil
}

func (c *Client) Close() error { return c.conn.Close() }

// compileToolSchemas compiles each tool descriptor's InputSchema once at
// dial time, so every RunTool call validates against an already-parsed
// schema rather than reparsing JSON Schema text per call.
func compileToolSchemas() (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	schemas := make(map[string]*jsonschema.Schema, len(agent.DefaultTools))
	for _, tool := range agent.DefaultTools {
		url := "mem://" + tool.Name + ".json"
		if err := compiler.AddResource(url, strings.NewReader(tool.InputSchema)); err != nil {
			return nil, fmt.Errorf("compiling schema for %s: %w", tool.Name, err)
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compiling schema for %s: %w", tool.Name, err)
		}
		schemas[tool.Name] = schema
	}
	return schemas, nil
}

// RunTool implements agent.ToolRunner: name is one of "bash"/"text_editor",
// input is the raw JSON object the model produced. Errors split per spec 7:
// malformed input or an Unknown-coded RPC status come back as (text,
// isError=true, nil); anything else escalates as a non-nil error.
func (c *Client) RunTool(ctx context.Context, name, input string) (string, bool, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(input), &raw); err != nil {
		return fmt.Sprintf("failed to parse tool input: %v", err), true, nil
	}

	if schema, ok := c.schemas[name]; ok {
		if err := schema.Validate(raw); err != nil {
			return fmt.Sprintf("input failed schema validation: %v", err), true, nil
		}
	}

	switch name {
	case "bash":
		return c.callBash(ctx, raw)
	case "text_editor":
		return c.callTextEditor(ctx, raw)
	default:
		return fmt.Sprintf("tool %s not available", name), true, nil
	}
}

func (c *Client) callBash(ctx context.Context, input map[string]any) (string, bool, error) {
	command, ok := input["command"].(string)
	if !ok {
		return `the "command" argument is required and must be a string`, true, nil
	}

	resp, err := c.rpc.RunBash(ctx, &toolrunnerpb.BashRequest{Input: command})
	if err != nil {
		return handleRPCError(err)
	}
	return strings.TrimSpace(resp.GetOutput()), false, nil
}

func (c *Client) callTextEditor(ctx context.Context, input map[string]any) (string, bool, error) {
	command, _ := input["command"].(string)
	path, ok := input["path"].(string)
	if !ok {
		return `the "path" argument is required and must be a string`, true, nil
	}

	switch command {
	case "view":
		return c.callView(ctx, path, input["view_range"])
	case "create":
		return c.callCreate(ctx, path, input["file_text"])
	case "str_replace":
		return c.callStringReplace(ctx, path, input["old_str"], input["new_str"])
	case "insert":
		return c.callInsert(ctx, path, input["insert_line"], input["new_str"])
	case "undo_edit":
		return c.callUndoEdit(ctx, path)
	default:
		return fmt.Sprintf("%v is an invalid text_editor command", command), true, nil
	}
}

func (c *Client) callView(ctx context.Context, path string, rawRange any) (string, bool, error) {
	viewRange, errMsg := parseViewRange(rawRange)
	if errMsg != "" {
		return errMsg, true, nil
	}

	snippet, err := c.rpc.View(ctx, &toolrunnerpb.ViewRequest{Path: path, ViewRange: viewRange})
	if err != nil {
		return handleRPCError(err)
	}
	return fmt.Sprintf("Here's %s with each line numbered:\n%s", path, numberedLines(snippet)), false, nil
}

// parseViewRange mirrors client.rs's acceptance of a two-element [start, end]
// array where end=-1 means "through the last line".
func parseViewRange(raw any) (*toolrunnerpb.ViewRange, string) {
	if raw == nil {
		return nil, ""
	}
	arr, ok := raw.([]any)
	if !ok || len(arr) != 2 {
		return nil, "view_range must have two positive entries"
	}
	startF, ok1 := arr[0].(float64)
	endF, ok2 := arr[1].(float64)
	if !ok1 || !ok2 {
		return nil, "view_range must have two positive entries"
	}
	start, end := int64(startF), int64(endF)
	if end == -1 && start > 0 {
		return &toolrunnerpb.ViewRange{Start: uint32(start), End: -1}, ""
	}
	if start > 0 || end > 0 {
		return &toolrunnerpb.ViewRange{Start: uint32(start), End: end}, ""
	}
	return nil, "view_range must have two positive entries"
}

func (c *Client) callCreate(ctx context.Context, path string, rawText any) (string, bool, error) {
	text, ok := rawText.(string)
	if !ok {
		return "file_text is required with the create command", true, nil
	}

	if _, err := c.rpc.Create(ctx, &toolrunnerpb.CreateRequest{Path: path, FileText: text}); err != nil {
		return handleRPCError(err)
	}
	return fmt.Sprintf("Successfully created %s.", path), false, nil
}

func (c *Client) callStringReplace(ctx context.Context, path string, rawOld, rawNew any) (string, bool, error) {
	old, ok := rawOld.(string)
	if !ok {
		return "old_str is required with the str_replace command", true, nil
	}
	newStr, _ := rawNew.(string) // absent means "replace with nothing", per spec

	snippet, err := c.rpc.StringReplace(ctx, &toolrunnerpb.StringReplaceRequest{
		Path: path, ToReplace: old, Replacement: newStr,
	})
	if err != nil {
		return handleRPCError(err)
	}
	return fmt.Sprintf("Review the changes and make sure it's as expected, edit again if not:\n%s",
		numberedLines(snippet)), false, nil
}

func (c *Client) callInsert(ctx context.Context, path string, rawLineNumber, rawLine any) (string, bool, error) {
	lineNumberF, ok := rawLineNumber.(float64)
	if !ok {
		return "insert_line is required with the insert command", true, nil
	}
	line, ok := rawLine.(string)
	if !ok {
		return "new_str is required with the insert command", true, nil
	}

	snippet, err := c.rpc.Insert(ctx, &toolrunnerpb.InsertRequest{
		Path: path, LineNumber: uint32(lineNumberF), Line: line,
	})
	if err != nil {
		return handleRPCError(err)
	}
	return fmt.Sprintf("Review the change and make sure it's as expected (correct indentation, no "+
		"duplicate lines, etc). Edit the file if not.:\n%s", numberedLines(snippet)), false, nil
}

func (c *Client) callUndoEdit(ctx context.Context, path string) (string, bool, error) {
	snippet, err := c.rpc.UndoEdit(ctx, &toolrunnerpb.UndoEditRequest{Path: path})
	if err != nil {
		return handleRPCError(err)
	}
	return fmt.Sprintf("Last edit to %s undone successfully. Please review:\n%s",
		path, numberedLines(snippet)), false, nil
}

func numberedLines(s *toolrunnerpb.Snippet) string {
	lines := make([]string, len(s.GetLines()))
	for i, line := range s.GetLines() {
		lines[i] = fmt.Sprintf("%d: %s", int(s.GetStart())+i, line)
	}
	return strings.Join(lines, "\n")
}

// handleRPCError implements spec 7's split: Unknown-coded RPC failures are
// tool-use errors fed back to the model; everything else escalates.
func handleRPCError(err error) (string, bool, error) {
	st, ok := status.FromError(err)
	if !ok {
		return "", false, &agent.ExecutionError{Method: "rpc", Cause: err}
	}
	if st.Code() == codes.Unknown {
		return st.Message(), true, nil
	}
	return "", false, &agent.ExecutionError{Method: "rpc", Cause: err}
}
