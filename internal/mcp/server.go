package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"templeescape/internal/debug"
	"templeescape/internal/game"
	"templeescape/internal/session"
)

type directionArgs struct {
	Direction string `json:"direction" jsonschema:"compass direction to move: north, east, south or west"`
}

type itemArgs struct {
	Item string `json:"item" jsonschema:"name of the item, for example 'golden idol' or 'idol'"`
}

type noArgs struct{}

// State is the snapshot returned by the state tool.
type State struct {
	SessionID string   `json:"session_id"`
	Room      string   `json:"room"`
	Inventory []string `json:"inventory"`
	Status    string   `json:"status"`
}

// NewServer exposes sess as MCP tools. Every tool call is one game turn.
func NewServer(sess *session.Session, logger *debug.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "temple-escape",
		Version: "v1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "look",
		Description: "Describe the current room, its exits and the items in it",
	}, turnTool(sess, logger, func(noArgs) string { return "look" }))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "go",
		Description: "Move the explorer through an exit of the current room",
	}, turnTool(sess, logger, func(a directionArgs) string { return "go " + a.Direction }))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "take",
		Description: "Pick up an item lying in the current room",
	}, turnTool(sess, logger, func(a itemArgs) string { return "take " + a.Item }))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "use",
		Description: "Use an item from the inventory in the current room",
	}, turnTool(sess, logger, func(a itemArgs) string { return "use " + a.Item }))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inventory",
		Description: "List the items the explorer is carrying",
	}, turnTool(sess, logger, func(noArgs) string { return "inventory" }))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "help",
		Description: "Show the command reference",
	}, turnTool(sess, logger, func(noArgs) string { return "help" }))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "quit",
		Description: "Give up and end the game",
	}, turnTool(sess, logger, func(noArgs) string { return "quit" }))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "state",
		Description: "Return the current room, inventory and game status as JSON",
	}, stateTool(sess))

	return server
}

func turnTool[In any](sess *session.Session, logger *debug.Logger, line func(In) string) func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[In]) (*mcp.CallToolResultFor[any], error) {
	return func(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[In]) (*mcp.CallToolResultFor[any], error) {
		input := strings.TrimSpace(line(params.Arguments))
		turn := sess.Turn(ctx, input)
		logger.DebugContext(ctx, "mcp tool call", "tool", params.Name, "input", input, "condition", game.Condition(turn.Err))

		return &mcp.CallToolResultFor[any]{
			Content: []mcp.Content{&mcp.TextContent{Text: turn.Text}},
			IsError: errors.Is(turn.Err, game.ErrGameOver),
		}, nil
	}
}

func stateTool(sess *session.Session) func(context.Context, *mcp.ServerSession, *mcp.CallToolParamsFor[noArgs]) (*mcp.CallToolResultFor[any], error) {
	return func(ctx context.Context, _ *mcp.ServerSession, _ *mcp.CallToolParamsFor[noArgs]) (*mcp.CallToolResultFor[any], error) {
		state := State{
			SessionID: sess.ID().String(),
			Room:      sess.Room(),
			Inventory: sess.Inventory(),
			Status:    sess.Status().String(),
		}
		data, err := json.Marshal(state)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal state: %w", err)
		}
		return &mcp.CallToolResultFor[any]{
			Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		}, nil
	}
}

// Serve runs the server on stdin/stdout until the client disconnects.
func Serve(ctx context.Context, server *mcp.Server) error {
	if err := server.Run(ctx, mcp.NewStdioTransport()); err != nil {
		return fmt.Errorf("failed to serve MCP: %w", err)
	}
	return nil
}
