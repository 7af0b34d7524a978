package game

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Command is one parsed player instruction. The concrete types below are the
// only implementations.
type Command interface {
	Verb() Verb
}

type GoCommand struct{ Direction Direction }
type TakeCommand struct{ Item string }
type UseCommand struct{ Item string }
type InventoryCommand struct{}
type LookCommand struct{}
type HelpCommand struct{}
type QuitCommand struct{}

// UnknownCommand carries input whose first word is not a known verb.
type UnknownCommand struct{ Raw string }

func (GoCommand) Verb() Verb        { return VerbGo }
func (TakeCommand) Verb() Verb      { return VerbTake }
func (UseCommand) Verb() Verb       { return VerbUse }
func (InventoryCommand) Verb() Verb { return VerbInventory }
func (LookCommand) Verb() Verb      { return VerbLook }
func (HelpCommand) Verb() Verb      { return VerbHelp }
func (QuitCommand) Verb() Verb      { return VerbQuit }
func (UnknownCommand) Verb() Verb   { return VerbUnknown }

// Verb is the canonical action a command word maps to.
type Verb string

const (
	VerbGo        Verb = "go"
	VerbTake      Verb = "take"
	VerbUse       Verb = "use"
	VerbInventory Verb = "inventory"
	VerbLook      Verb = "look"
	VerbHelp      Verb = "help"
	VerbQuit      Verb = "quit"
	VerbUnknown   Verb = "unknown"
)

var (
	ErrEmptyInput       = errors.New("empty input")
	ErrMissingArgument  = errors.New("missing argument")
	ErrInvalidDirection = errors.New("invalid direction")
)

// ParseError is returned for input the parser cannot turn into a command.
// Message is the guidance shown to the player.
type ParseError struct {
	Input   string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Vocabulary maps input words to canonical verbs and directions.
// Adding a synonym means adding a table entry.
type Vocabulary struct {
	Verbs      map[string]Verb
	Directions map[string]Direction
}

func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Verbs: map[string]Verb{
			"go":        VerbGo,
			"move":      VerbGo,
			"take":      VerbTake,
			"get":       VerbTake,
			"pickup":    VerbTake,
			"use":       VerbUse,
			"inventory": VerbInventory,
			"inv":       VerbInventory,
			"i":         VerbInventory,
			"look":      VerbLook,
			"l":         VerbLook,
			"help":      VerbHelp,
			"h":         VerbHelp,
			"quit":      VerbQuit,
			"exit":      VerbQuit,
			"q":         VerbQuit,
		},
		Directions: map[string]Direction{
			"north": North,
			"n":     North,
			"east":  East,
			"e":     East,
			"south": South,
			"s":     South,
			"west":  West,
			"w":     West,
		},
	}
}

type Parser struct {
	vocab Vocabulary
}

func NewParser(vocab Vocabulary) *Parser {
	return &Parser{vocab: vocab}
}

// Parse turns a raw input line into a Command. A nil error is returned for
// unknown verbs; the engine answers those itself.
func (p *Parser) Parse(line string) (Command, error) {
	words := strings.Fields(cases.Fold().String(line))
	if len(words) == 0 {
		return nil, &ParseError{Input: line, Message: "Please enter a command.", Err: ErrEmptyInput}
	}

	verb, ok := p.vocab.Verbs[words[0]]
	if !ok {
		return UnknownCommand{Raw: strings.Join(words, " ")}, nil
	}
	args := words[1:]

	switch verb {
	case VerbGo:
		if len(args) == 0 {
			return nil, &ParseError{
				Input:   line,
				Message: "Go where? Try 'go north', 'go east', 'go south', or 'go west'.",
				Err:     ErrMissingArgument,
			}
		}
		dir, ok := p.vocab.Directions[args[0]]
		if !ok {
			return nil, &ParseError{
				Input:   line,
				Message: fmt.Sprintf("'%s' is not a valid direction. Try 'north', 'east', 'south', or 'west'.", args[0]),
				Err:     ErrInvalidDirection,
			}
		}
		return GoCommand{Direction: dir}, nil
	case VerbTake:
		if len(args) == 0 {
			return nil, &ParseError{Input: line, Message: "Take what? Please specify an item.", Err: ErrMissingArgument}
		}
		return TakeCommand{Item: strings.Join(args, " ")}, nil
	case VerbUse:
		if len(args) == 0 {
			return nil, &ParseError{Input: line, Message: "Use what? Please specify an item.", Err: ErrMissingArgument}
		}
		return UseCommand{Item: strings.Join(args, " ")}, nil
	case VerbInventory:
		return InventoryCommand{}, nil
	case VerbLook:
		return LookCommand{}, nil
	case VerbHelp:
		return HelpCommand{}, nil
	case VerbQuit:
		return QuitCommand{}, nil
	}
	return UnknownCommand{Raw: strings.Join(words, " ")}, nil
}
