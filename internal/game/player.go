package game

// Status is the game's state machine position.
type Status int

const (
	Playing Status = iota
	Won
	Quit
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further turns may change the game.
func (s Status) Terminal() bool {
	return s == Won || s == Quit
}

// Player holds the location, inventory and status of the explorer.
// It does no validation; Game only calls it for legal transitions.
type Player struct {
	location  RoomID
	inventory []ItemID
	status    Status
}

func NewPlayer(start RoomID) *Player {
	return &Player{location: start, status: Playing}
}

func (p *Player) Location() RoomID {
	return p.location
}

func (p *Player) MoveTo(room RoomID) {
	p.location = room
}

func (p *Player) AddItem(item ItemID) {
	p.inventory = append(p.inventory, item)
}

func (p *Player) HasItem(item ItemID) bool {
	for _, id := range p.inventory {
		if id == item {
			return true
		}
	}
	return false
}

// Inventory returns the held items in pickup order.
func (p *Player) Inventory() []ItemID {
	out := make([]ItemID, len(p.inventory))
	copy(out, p.inventory)
	return out
}

func (p *Player) Status() Status {
	return p.status
}

func (p *Player) finish(status Status) {
	p.status = status
}
