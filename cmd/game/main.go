// Escape the Forgotten Temple, a turn-based text adventure.
// Plays on stdin/stdout by default; "tui" runs it in a Bubble Tea terminal
// UI and "mcp" serves it to an MCP client over stdio.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"templeescape/cmd/game/ui"
	"templeescape/internal/config"
	"templeescape/internal/mcp"
)

const usage = `Usage: game [command]

Commands:
  play          play in the terminal, one command per line (default)
  tui           play in a full-screen terminal UI
  mcp           serve the game as MCP tools over stdio
  review [n]    show the n most recent logged turns (needs TURN_LOG_DB)
  help          show this message
`

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	mode := "play"
	if len(args) > 0 {
		mode = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	switch mode {
	case "play", "tui", "mcp":
	case "review":
		return runReview(ctx, cfg, args[1:], out, errOut)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return 0
	default:
		fmt.Fprintf(errOut, "Unknown command %q\n\n%s", mode, usage)
		return 2
	}

	a, err := createApp(ctx, cfg)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	defer a.close()

	switch mode {
	case "tui":
		p := tea.NewProgram(ui.NewModel(ctx, a.session), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return 1
		}
	case "mcp":
		if err := mcp.Serve(ctx, mcp.NewServer(a.session, a.logger)); err != nil {
			a.logger.Error("mcp server stopped", "error", err)
			return 1
		}
	default:
		if err := a.session.Run(ctx, in, out); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}
