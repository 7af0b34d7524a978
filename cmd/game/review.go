package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"templeescape/internal/config"
	"templeescape/internal/logging"
)

const defaultReviewLimit = 10

func runReview(ctx context.Context, cfg *config.Config, args []string, out, errOut io.Writer) int {
	if cfg.TurnLogPath == "" {
		fmt.Fprintln(errOut, "Turn log is disabled. Set TURN_LOG_DB to a sqlite path and play a game first.")
		return 1
	}

	limit := defaultReviewLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintf(errOut, "Invalid limit: %q\n", args[0])
			return 2
		}
		limit = n
	}

	logger, err := logging.NewTurnLogger(cfg.TurnLogPath)
	if err != nil {
		fmt.Fprintf(errOut, "Failed to open turn log: %v\n", err)
		return 1
	}
	defer logger.Close()

	turns, err := logger.RecentTurns(ctx, limit)
	if err != nil {
		fmt.Fprintf(errOut, "Failed to get turns: %v\n", err)
		return 1
	}

	if len(turns) == 0 {
		fmt.Fprintln(out, "No turns found. Play the game first to generate data!")
		return 0
	}

	fmt.Fprintf(out, "Recent turns (%d):\n\n", len(turns))
	for _, turn := range turns {
		fmt.Fprintf(out, "[%d] %s | %s | turn %d | %s\n",
			turn.ID,
			turn.Timestamp.Format("2006-01-02 15:04:05"),
			shortID(turn.SessionID),
			turn.Turn,
			turn.Input)
		fmt.Fprintf(out, "Room: %s | Condition: %s | Status: %s\n", turn.Room, turn.Condition, turn.Status)
		fmt.Fprintf(out, "Output: %s\n", firstLine(turn.Output))
		fmt.Fprintln(out, strings.Repeat("-", 50))
	}
	return 0
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}
