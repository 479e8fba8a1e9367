package tools

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/roricalc/internal/core"
)

func call(t *testing.T, tool Tool, arguments map[string]interface{}) (string, bool) {
	t.Helper()
	request := mcp.CallToolRequest{}
	request.Params.Name = tool.GetTool().Name
	request.Params.Arguments = arguments

	result, err := tool.Handle(context.Background(), request)
	require.NoError(t, err)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, result.IsError
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltinTools(r, core.NewSession())

	var names []string
	for _, tool := range r.ListTools() {
		names = append(names, tool.GetTool().Name)
	}
	assert.Equal(t, []string{ToolDisplay, ToolExecute, ToolPress, ToolReset}, names)

	_, ok := r.GetTool(ToolPress)
	assert.True(t, ok)
	_, ok = r.GetTool("calculator.unknown")
	assert.False(t, ok)
}

func TestPressTool(t *testing.T) {
	session := core.NewSession()
	tool := NewPressTool(session)

	tests := []struct {
		name    string
		args    map[string]interface{}
		want    string
		isError bool
	}{
		{"scenario", map[string]interface{}{"keys": "2 5 + 1 0 ="}, "35", false},
		{"continues session", map[string]interface{}{"keys": "* 2 ="}, "70", false},
		{"engine error", map[string]interface{}{"keys": "/ 0 ="}, "Error: Division by zero", true},
		{"unknown key", map[string]interface{}{"keys": "5 sin"}, "failed to parse keys: unknown key \"sin\"", true},
		{"missing keys", map[string]interface{}{}, "keys parameter is required", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isError := call(t, tool, tt.args)
			assert.Equal(t, tt.want, text)
			assert.Equal(t, tt.isError, isError)
		})
	}
}

func TestExecuteTool(t *testing.T) {
	tool := NewExecuteTool()

	tests := []struct {
		name    string
		args    map[string]interface{}
		want    string
		isError bool
	}{
		{"add", map[string]interface{}{"op": "+", "x": float64(25), "y": float64(10)}, "35", false},
		{"percent of", map[string]interface{}{"op": "%", "x": float64(50), "y": float64(200)}, "100", false},
		{"percent alone", map[string]interface{}{"op": "%", "x": float64(25)}, "0.25", false},
		{"reciprocal", map[string]interface{}{"op": "1/x", "x": float64(8)}, "0.125", false},
		{"divide by zero", map[string]interface{}{"op": "/", "x": float64(5), "y": float64(0)}, "Error: Division by zero", true},
		{"missing y", map[string]interface{}{"op": "*", "x": float64(5)}, "Error: Second operand not set", true},
		{"unsupported", map[string]interface{}{"op": "^", "x": float64(2)}, "Error: Unsupported operation: ^", true},
		{"missing op", map[string]interface{}{"x": float64(2)}, "op parameter is required", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isError := call(t, tool, tt.args)
			assert.Equal(t, tt.want, text)
			assert.Equal(t, tt.isError, isError)
		})
	}
}

func TestDisplayAndResetTools(t *testing.T) {
	session := core.NewSession()
	_, err := session.PressAll([]string{"1 2 +"})
	require.NoError(t, err)

	text, _ := call(t, NewDisplayTool(session), nil)
	assert.Equal(t, "12 (pending +)", text)

	text, _ = call(t, NewResetTool(session), nil)
	assert.Equal(t, "0", text)
	assert.Empty(t, session.Tape())

	text, _ = call(t, NewDisplayTool(session), nil)
	assert.Equal(t, "0", text)
}
