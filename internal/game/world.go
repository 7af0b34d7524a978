package game

import "golang.org/x/text/cases"

// RoomID identifies one of the fixed temple rooms.
type RoomID int

const (
	EntranceHall RoomID = iota
	CeremonialAntechamber
	TreasureRoom
	GuardianChamber
	AncientCrypt
	TempleExit

	roomCount
)

// Direction is a compass direction a player can move in.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"north", "east", "south", "west"}

// Directions lists every direction in the order exits are displayed.
var Directions = []Direction{North, East, South, West}

func (d Direction) String() string {
	if d < North || d > West {
		return "unknown"
	}
	return directionNames[d]
}

// ItemID identifies one of the collectible items.
type ItemID int

const (
	GoldenIdol ItemID = iota
	AncientMap
	CeremonialDagger
	Torch

	itemCount
)

// Item is immutable item data. Only its location changes during play.
type Item struct {
	ID      ItemID
	Name    string
	Aliases []string
	// Usage holds flavour text shown when the item is used in a given room.
	Usage map[RoomID]string
}

// Matches reports whether name refers to this item.
func (it Item) Matches(name string) bool {
	fold := cases.Fold()
	name = fold.String(name)
	if fold.String(it.Name) == name {
		return true
	}
	for _, alias := range it.Aliases {
		if fold.String(alias) == name {
			return true
		}
	}
	return false
}

// Room is a node in the temple graph. Only its item set changes after setup.
type Room struct {
	ID          RoomID
	Name        string
	Description string
	Exits       map[Direction]RoomID
	items       []ItemID
}

// Items returns the items currently lying in the room.
func (r *Room) Items() []ItemID {
	out := make([]ItemID, len(r.items))
	copy(out, r.items)
	return out
}

// Has reports whether item lies in the room.
func (r *Room) Has(item ItemID) bool {
	for _, id := range r.items {
		if id == item {
			return true
		}
	}
	return false
}

// World is the room graph plus the item catalogue.
type World struct {
	rooms    [roomCount]*Room
	items    [itemCount]Item
	Start    RoomID
	Exit     RoomID
	ExitItem ItemID
}

// Room returns the room with the given id.
func (w *World) Room(id RoomID) *Room {
	return w.rooms[id]
}

// Item returns the catalogue entry for id.
func (w *World) Item(id ItemID) Item {
	return w.items[id]
}

// ItemIDs lists every item in the catalogue.
func (w *World) ItemIDs() []ItemID {
	ids := make([]ItemID, 0, itemCount)
	for id := ItemID(0); id < itemCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// RoomIDs lists every room in the graph.
func (w *World) RoomIDs() []RoomID {
	ids := make([]RoomID, 0, roomCount)
	for id := RoomID(0); id < roomCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Neighbor returns the room reached by going dir from id.
func (w *World) Neighbor(id RoomID, dir Direction) (RoomID, bool) {
	dest, ok := w.rooms[id].Exits[dir]
	return dest, ok
}

// ExitsFrom lists the open directions from id in display order.
func (w *World) ExitsFrom(id RoomID) []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if _, ok := w.rooms[id].Exits[d]; ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// FindItem resolves name to an item lying in room id.
func (w *World) FindItem(id RoomID, name string) (ItemID, bool) {
	for _, item := range w.rooms[id].items {
		if w.items[item].Matches(name) {
			return item, true
		}
	}
	return 0, false
}

// RemoveItem takes item out of room id. It reports false if it was not there.
func (w *World) RemoveItem(id RoomID, item ItemID) bool {
	room := w.rooms[id]
	for i, it := range room.items {
		if it == item {
			room.items = append(room.items[:i], room.items[i+1:]...)
			return true
		}
	}
	return false
}

// NewTemple builds the forgotten temple in its starting layout.
func NewTemple() *World {
	w := &World{
		Start:    EntranceHall,
		Exit:     TempleExit,
		ExitItem: GoldenIdol,
	}

	w.items[GoldenIdol] = Item{
		ID:      GoldenIdol,
		Name:    "golden idol",
		Aliases: []string{"idol"},
	}
	w.items[AncientMap] = Item{
		ID:      AncientMap,
		Name:    "ancient map",
		Aliases: []string{"map"},
		Usage: map[RoomID]string{
			EntranceHall: "You examine the ancient map. It shows the layout of the temple, confirming " +
				"your suspicions about the locations of the rooms. The exit appears to be " +
				"north of the Treasure Room.",
		},
	}
	w.items[CeremonialDagger] = Item{
		ID:      CeremonialDagger,
		Name:    "ceremonial dagger",
		Aliases: []string{"dagger"},
		Usage: map[RoomID]string{
			CeremonialAntechamber: "You place the ceremonial dagger on the altar. Nothing happens, but you feel " +
				"a sense of respect for the ancient rituals once performed here.",
		},
	}
	w.items[Torch] = Item{
		ID:   Torch,
		Name: "torch",
		Usage: map[RoomID]string{
			AncientCrypt: "You light the torch. The crypt is now illuminated, revealing ancient inscriptions " +
				"on the walls that were previously hidden in darkness.",
		},
	}

	w.rooms[EntranceHall] = &Room{
		ID:   EntranceHall,
		Name: EntranceHall.String(),
		Description: "You stand in the grand entrance hall of the forgotten temple. " +
			"Ancient symbols cover the walls, and dust particles dance in the beams of light " +
			"from cracks in the ceiling. The air is thick with the scent of ages past.",
		Exits: map[Direction]RoomID{North: CeremonialAntechamber, East: AncientCrypt},
		items: []ItemID{AncientMap},
	}
	w.rooms[CeremonialAntechamber] = &Room{
		ID:   CeremonialAntechamber,
		Name: CeremonialAntechamber.String(),
		Description: "This room seems to have been used for pre-ritual preparations. " +
			"Stone benches line the walls, and faded murals depict priests donning ceremonial garb. " +
			"A stone altar stands in the center, its surface stained dark from ancient offerings.",
		Exits: map[Direction]RoomID{South: EntranceHall, East: TreasureRoom, West: GuardianChamber},
		items: []ItemID{CeremonialDagger},
	}
	w.rooms[TreasureRoom] = &Room{
		ID:   TreasureRoom,
		Name: TreasureRoom.String(),
		Description: "Glinting gold and artifacts fill this small chamber. " +
			"Ceremonial masks, jeweled daggers, and strange artifacts cover every surface. " +
			"Despite the wealth displayed here, an ornate stone pedestal in the center stands empty, " +
			"with a small inscription that reads 'Place the sacred idol to reveal the path.'",
		Exits: map[Direction]RoomID{West: CeremonialAntechamber, North: TempleExit},
	}
	w.rooms[GuardianChamber] = &Room{
		ID:   GuardianChamber,
		Name: GuardianChamber.String(),
		Description: "This circular chamber is dominated by a massive stone statue of a seated deity with many arms. " +
			"Its hollow eyes seem to follow your movement. At its feet lies a small golden idol, " +
			"gleaming despite the layer of dust covering it.",
		Exits: map[Direction]RoomID{East: CeremonialAntechamber},
		items: []ItemID{GoldenIdol},
	}
	w.rooms[AncientCrypt] = &Room{
		ID:   AncientCrypt,
		Name: AncientCrypt.String(),
		Description: "The air is stale in this dark crypt. Stone sarcophagi line the walls, " +
			"their carved lids depicting the deceased in repose. " +
			"A faded tapestry on the far wall shows a map of the stars.",
		Exits: map[Direction]RoomID{West: EntranceHall},
		items: []ItemID{Torch},
	}
	w.rooms[TempleExit] = &Room{
		ID:   TempleExit,
		Name: TempleExit.String(),
		Description: "Sunlight streams through a crack in the stone wall, illuminating a narrow passage. " +
			"This appears to be an exit from the temple, but heavy stone doors block the way. " +
			"There's a keyhole shaped like an idol in the center of the doors.",
		Exits: map[Direction]RoomID{South: TreasureRoom},
	}

	return w
}

var roomNames = [...]string{
	"Entrance Hall",
	"Ceremonial Antechamber",
	"Treasure Room",
	"Guardian Chamber",
	"Ancient Crypt",
	"Temple Exit",
}

func (id RoomID) String() string {
	if id < 0 || id >= roomCount {
		return "unknown"
	}
	return roomNames[id]
}
