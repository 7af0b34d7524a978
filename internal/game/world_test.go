package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemple_Layout(t *testing.T) {
	w := NewTemple()

	tests := []struct {
		from RoomID
		dir  Direction
		to   RoomID
	}{
		{EntranceHall, North, CeremonialAntechamber},
		{EntranceHall, East, AncientCrypt},
		{CeremonialAntechamber, South, EntranceHall},
		{CeremonialAntechamber, East, TreasureRoom},
		{CeremonialAntechamber, West, GuardianChamber},
		{TreasureRoom, West, CeremonialAntechamber},
		{TreasureRoom, North, TempleExit},
		{GuardianChamber, East, CeremonialAntechamber},
		{AncientCrypt, West, EntranceHall},
		{TempleExit, South, TreasureRoom},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+" "+tt.dir.String(), func(t *testing.T) {
			dest, ok := w.Neighbor(tt.from, tt.dir)
			require.True(t, ok)
			assert.Equal(t, tt.to, dest)
		})
	}

	_, ok := w.Neighbor(EntranceHall, West)
	assert.False(t, ok, "entrance hall has no west exit")
	assert.Equal(t, EntranceHall, w.Start)
	assert.Equal(t, TempleExit, w.Exit)
	assert.Equal(t, GoldenIdol, w.ExitItem)
}

func TestNewTemple_EveryRoomReachable(t *testing.T) {
	w := NewTemple()
	seen := map[RoomID]bool{w.Start: true}
	queue := []RoomID{w.Start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, d := range w.ExitsFrom(id) {
			dest, _ := w.Neighbor(id, d)
			if !seen[dest] {
				seen[dest] = true
				queue = append(queue, dest)
			}
		}
	}
	assert.Len(t, seen, len(w.RoomIDs()))
}

func TestNewTemple_ItemsPlacedOnce(t *testing.T) {
	w := NewTemple()
	count := map[ItemID]int{}
	for _, id := range w.RoomIDs() {
		for _, item := range w.Room(id).Items() {
			count[item]++
		}
	}
	for _, item := range w.ItemIDs() {
		assert.Equal(t, 1, count[item], w.Item(item).Name)
	}
	assert.True(t, w.Room(GuardianChamber).Has(GoldenIdol))
	assert.True(t, w.Room(AncientCrypt).Has(Torch))
	assert.True(t, w.Room(EntranceHall).Has(AncientMap))
	assert.True(t, w.Room(CeremonialAntechamber).Has(CeremonialDagger))
}

func TestWorld_ExitsFromOrder(t *testing.T) {
	w := NewTemple()
	assert.Equal(t, []Direction{North, East}, w.ExitsFrom(EntranceHall))
	assert.Equal(t, []Direction{East, South, West}, w.ExitsFrom(CeremonialAntechamber))
}

func TestWorld_FindAndRemoveItem(t *testing.T) {
	w := NewTemple()

	id, ok := w.FindItem(GuardianChamber, "IDOL")
	require.True(t, ok)
	assert.Equal(t, GoldenIdol, id)

	_, ok = w.FindItem(EntranceHall, "idol")
	assert.False(t, ok)

	assert.True(t, w.RemoveItem(GuardianChamber, GoldenIdol))
	assert.False(t, w.RemoveItem(GuardianChamber, GoldenIdol))
	assert.Empty(t, w.Room(GuardianChamber).Items())
}

func TestItem_Matches(t *testing.T) {
	idol := NewTemple().Item(GoldenIdol)
	assert.True(t, idol.Matches("golden idol"))
	assert.True(t, idol.Matches("Golden Idol"))
	assert.True(t, idol.Matches("idol"))
	assert.False(t, idol.Matches("golden"))
	assert.False(t, idol.Matches("torch"))
}

func TestRoomID_String(t *testing.T) {
	assert.Equal(t, "Temple Exit", TempleExit.String())
	assert.Equal(t, "unknown", RoomID(42).String())
	assert.Equal(t, "west", West.String())
	assert.Equal(t, "unknown", Direction(9).String())
}

func TestRoomID_StringMatchesRoomName(t *testing.T) {
	w := NewTemple()
	for _, id := range w.RoomIDs() {
		assert.Equal(t, w.Room(id).Name, id.String())
	}
}
