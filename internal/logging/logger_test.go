package logging

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *TurnLogger {
	t.Helper()
	logger, err := NewTurnLogger(filepath.Join(t.TempDir(), "turns.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger
}

func TestTurnLogger_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger(t)

	turns := []TurnRecord{
		{SessionID: "s1", Turn: 1, Input: "go north", Output: "[ Ceremonial Antechamber ]", Room: "Ceremonial Antechamber", Condition: "ok", Status: "playing"},
		{SessionID: "s1", Turn: 2, Input: "take idol", Output: "There is no idol here.", Room: "Ceremonial Antechamber", Condition: "item_not_here", Status: "playing"},
		{SessionID: "s1", Turn: 3, Input: "quit", Output: "Thanks for playing! Goodbye.", Room: "Ceremonial Antechamber", Condition: "ok", Status: "quit"},
	}
	for _, rec := range turns {
		require.NoError(t, logger.RecordTurn(ctx, rec))
	}

	recent, err := logger.RecentTurns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 3, recent[0].Turn)
	assert.Equal(t, "quit", recent[0].Status)
	assert.Equal(t, "item_not_here", recent[1].Condition)
	assert.Equal(t, "s1", recent[1].SessionID)
	assert.False(t, recent[1].Timestamp.IsZero())
}

func TestTurnLogger_Empty(t *testing.T) {
	recent, err := newTestLogger(t).RecentTurns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestTurnLogger_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "turns.db")

	first, err := NewTurnLogger(path)
	require.NoError(t, err)
	require.NoError(t, first.RecordTurn(ctx, TurnRecord{SessionID: "a", Turn: 1, Input: "look", Output: "...", Room: "Entrance Hall", Condition: "ok", Status: "playing"}))
	require.NoError(t, first.Close())

	second, err := NewTurnLogger(path)
	require.NoError(t, err)
	defer second.Close()
	recent, err := second.RecentTurns(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}
