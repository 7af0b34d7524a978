package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoExit         = errors.New("no exit")
	ErrItemNotHere    = errors.New("item not here")
	ErrItemNotHeld    = errors.New("item not held")
	ErrUnknownCommand = errors.New("unknown command")
	ErrGameOver       = errors.New("game over")
)

const HelpText = "Available commands:\n" +
	"- go [direction]: Move in the specified direction (north, east, south, west)\n" +
	"- take [item]: Pick up an item\n" +
	"- use [item]: Use an item from your inventory\n" +
	"- look: Look around the current room\n" +
	"- inventory: Check your inventory\n" +
	"- help: Display this help text\n" +
	"- quit: Exit the game"

const victoryText = "You place the golden idol in the keyhole. With a rumble, the stone doors slowly open, " +
	"revealing the path to freedom. Sunlight streams in, blinding you momentarily.\n\n" +
	"Congratulations! You have escaped the forgotten temple!"

const farewellText = "Thanks for playing! Goodbye."

// Response is the outcome of one command. Err is nil on success, otherwise it
// wraps one of the package's condition errors. Text is always set.
type Response struct {
	Text string
	Err  error
}

// Game owns the world and the player. It is the only place that moves items
// between rooms and the inventory.
type Game struct {
	world  *World
	player *Player
}

func New() *Game {
	world := NewTemple()
	return &Game{
		world:  world,
		player: NewPlayer(world.Start),
	}
}

func (g *Game) World() *World {
	return g.world
}

func (g *Game) Player() *Player {
	return g.player
}

func (g *Game) Status() Status {
	return g.player.Status()
}

// Execute applies cmd to the game state.
func (g *Game) Execute(cmd Command) Response {
	if g.player.Status().Terminal() {
		return Response{Text: "The game is over.", Err: ErrGameOver}
	}

	switch c := cmd.(type) {
	case GoCommand:
		return g.move(c.Direction)
	case TakeCommand:
		return g.take(c.Item)
	case UseCommand:
		return g.use(c.Item)
	case InventoryCommand:
		return Response{Text: g.DescribeInventory()}
	case LookCommand:
		return Response{Text: g.Look()}
	case HelpCommand:
		return Response{Text: HelpText}
	case QuitCommand:
		g.player.finish(Quit)
		return Response{Text: farewellText}
	case UnknownCommand:
		return Response{
			Text: fmt.Sprintf("I don't understand '%s'.\nType 'help' for a list of commands.", c.Raw),
			Err:  ErrUnknownCommand,
		}
	default:
		return Response{
			Text: "I don't understand that.\nType 'help' for a list of commands.",
			Err:  fmt.Errorf("%w: %T", ErrUnknownCommand, cmd),
		}
	}
}

func (g *Game) move(dir Direction) Response {
	dest, ok := g.world.Neighbor(g.player.Location(), dir)
	if !ok {
		return Response{Text: fmt.Sprintf("You can't go %s from here.", dir), Err: ErrNoExit}
	}
	g.player.MoveTo(dest)
	return Response{Text: g.Look()}
}

func (g *Game) take(name string) Response {
	here := g.player.Location()
	item, ok := g.world.FindItem(here, name)
	if !ok {
		return Response{Text: fmt.Sprintf("There is no %s here.", name), Err: ErrItemNotHere}
	}
	g.world.RemoveItem(here, item)
	g.player.AddItem(item)
	return Response{Text: fmt.Sprintf("You take the %s.", g.world.Item(item).Name)}
}

func (g *Game) use(name string) Response {
	item, ok := g.heldItem(name)
	if !ok {
		return Response{Text: fmt.Sprintf("You don't have a %s.", name), Err: ErrItemNotHeld}
	}

	here := g.player.Location()
	if item == g.world.ExitItem && here == g.world.Exit {
		g.player.finish(Won)
		return Response{Text: victoryText}
	}

	it := g.world.Item(item)
	if text, ok := it.Usage[here]; ok {
		return Response{Text: text}
	}
	return Response{Text: fmt.Sprintf("You can't use the %s here. Nothing happens.", it.Name)}
}

func (g *Game) heldItem(name string) (ItemID, bool) {
	for _, id := range g.player.Inventory() {
		if g.world.Item(id).Matches(name) {
			return id, true
		}
	}
	return 0, false
}

// Look describes the current room, its exits and visible items.
func (g *Game) Look() string {
	room := g.world.Room(g.player.Location())

	var b strings.Builder
	fmt.Fprintf(&b, "[ %s ]\n\n%s\n", room.Name, room.Description)

	if exits := g.world.ExitsFrom(room.ID); len(exits) > 0 {
		b.WriteString("\nExits:")
		for _, d := range exits {
			b.WriteString(" " + d.String())
		}
	}

	if items := room.Items(); len(items) > 0 {
		b.WriteString("\n\nYou see:")
		for _, id := range items {
			b.WriteString("\n- " + g.world.Item(id).Name)
		}
	}

	if hint := g.exitHint(); hint != "" {
		b.WriteString("\n\n" + hint)
	}

	return b.String()
}

func (g *Game) exitHint() string {
	if g.player.Location() != g.world.Exit {
		return ""
	}
	required := g.world.Item(g.world.ExitItem).Name
	if g.player.HasItem(g.world.ExitItem) {
		return fmt.Sprintf("You've reached the exit with the %s! Use the item to escape.", required)
	}
	return fmt.Sprintf("This appears to be an exit, but it's blocked. You need a %s to proceed.", required)
}

// DescribeInventory lists held items, or says the inventory is empty.
func (g *Game) DescribeInventory() string {
	items := g.player.Inventory()
	if len(items) == 0 {
		return "Your inventory is empty."
	}
	var b strings.Builder
	b.WriteString("You are carrying:")
	for _, id := range items {
		b.WriteString("\n- " + g.world.Item(id).Name)
	}
	return b.String()
}

// InventoryNames returns the display names of held items.
func (g *Game) InventoryNames() []string {
	items := g.player.Inventory()
	names := make([]string, 0, len(items))
	for _, id := range items {
		names = append(names, g.world.Item(id).Name)
	}
	return names
}

// Condition names the outcome class of err for logs and traces.
func Condition(err error) string {
	var perr *ParseError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &perr):
		return "parse_failure"
	case errors.Is(err, ErrNoExit):
		return "no_exit"
	case errors.Is(err, ErrItemNotHere):
		return "item_not_here"
	case errors.Is(err, ErrItemNotHeld):
		return "item_not_held"
	case errors.Is(err, ErrUnknownCommand):
		return "unknown_command"
	case errors.Is(err, ErrGameOver):
		return "game_over"
	default:
		return "error"
	}
}
