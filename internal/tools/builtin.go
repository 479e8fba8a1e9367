package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Rorical/roricalc/internal/core"
	"github.com/Rorical/roricalc/internal/engine"
)

// RegisterBuiltinTools registers the calculator tools for one session
func RegisterBuiltinTools(r *Registry, session *core.Session) {
	r.Register(NewPressTool(session))
	r.Register(NewExecuteTool())
	r.Register(NewDisplayTool(session))
	r.Register(NewResetTool(session))
}

// PressTool feeds keys to the shared session
type PressTool struct {
	session *core.Session
}

func NewPressTool(session *core.Session) *PressTool {
	return &PressTool{session: session}
}

func (t *PressTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPress,
		mcp.WithDescription("Press calculator keys in order and return the display. "+
			"Keys: 0-9 . + - * / = 1/x sq sqrt pi % neg clear back"),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Space-separated keys, e.g. \"2 5 + 1 0 =\"")),
	)
}

func (t *PressTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := mcp.ParseString(req, "keys", "")
	if keys == "" {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	display, err := t.session.PressAll([]string{keys})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := t.session.LastError(); err != nil {
		return mcp.NewToolResultError(display), nil
	}
	return mcp.NewToolResultText(display), nil
}

// ExecuteTool applies a single operation without touching the session
type ExecuteTool struct{}

func NewExecuteTool() *ExecuteTool {
	return &ExecuteTool{}
}

func (t *ExecuteTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolExecute,
		mcp.WithDescription("Apply one operation to its operands and return the formatted result"),
		mcp.WithString("op", mcp.Required(), mcp.Description("Operation symbol: + - * / % 1/x x² √ π ±")),
		mcp.WithNumber("x", mcp.Required(), mcp.Description("First operand")),
		mcp.WithNumber("y", mcp.Description("Second operand for binary operations")),
	)
}

func (t *ExecuteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	op := mcp.ParseString(req, "op", "")
	if op == "" {
		return mcp.NewToolResultError("op parameter is required"), nil
	}
	x := mcp.ParseFloat64(req, "x", 0)

	var y []float64
	if raw := mcp.ParseString(req, "y", ""); raw != "" {
		v, err := engine.Parse(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid y: %s", raw)), nil
		}
		y = append(y, v)
	}

	result, err := engine.Execute(engine.Op(op), x, y...)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(engine.Format(result)), nil
}

// DisplayTool reports the session display and pending operation
type DisplayTool struct {
	session *core.Session
}

func NewDisplayTool(session *core.Session) *DisplayTool {
	return &DisplayTool{session: session}
}

func (t *DisplayTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolDisplay,
		mcp.WithDescription("Show the calculator display and any pending operation"),
	)
}

func (t *DisplayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := t.session.Display()
	if pending := t.session.Pending(); pending != "" {
		text = fmt.Sprintf("%s (pending %s)", text, pending)
	}
	return mcp.NewToolResultText(text), nil
}

// ResetTool clears the session
type ResetTool struct {
	session *core.Session
}

func NewResetTool(session *core.Session) *ResetTool {
	return &ResetTool{session: session}
}

func (t *ResetTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolReset,
		mcp.WithDescription("Clear the calculator and its tape"),
	)
}

func (t *ResetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.session.Reset()
	return mcp.NewToolResultText(t.session.Display()), nil
}
