package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"templeescape/internal/debug"
	"templeescape/internal/game"
	"templeescape/internal/logging"
	"templeescape/internal/observability"
)

const Banner = `=============================================
|                                           |
|         ESCAPE THE FORGOTTEN TEMPLE       |
|             A Text Adventure              |
|                                           |
=============================================

You are an explorer who has ventured deep into a newly discovered ancient temple.
While examining the inner chambers, a sudden tremor shakes the ground,
causing a cave-in that blocks the entrance behind you.
You must find another way out of this forgotten temple before it becomes your tomb.

Type 'help' for a list of commands.`

const endOfInput = "<end of input>"

// Recorder receives every completed turn.
type Recorder interface {
	RecordTurn(ctx context.Context, rec logging.TurnRecord) error
}

type Options struct {
	Logger      *debug.Logger
	Tracer      trace.Tracer
	Recorder    Recorder
	WrapWidth   int
	HistorySize int
}

// Turn is the result of one read-parse-apply cycle.
type Turn struct {
	Number int
	Input  string
	Text   string
	Err    error
	Status game.Status
	Room   game.RoomID
}

// Session owns one game and serializes every turn played against it.
type Session struct {
	mu       sync.Mutex
	id       uuid.UUID
	game     *game.Game
	parser   *game.Parser
	history  *History
	log      *debug.Logger
	tracer   trace.Tracer
	recorder Recorder
	wrap     int
	turns    int
}

func New(opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = debug.Discard()
	}
	if opts.Tracer == nil {
		opts.Tracer = noop.NewTracerProvider().Tracer("session")
	}
	if opts.HistorySize <= 0 {
		opts.HistorySize = 200
	}

	id := uuid.New()
	return &Session{
		id:       id,
		game:     game.New(),
		parser:   game.NewParser(game.DefaultVocabulary()),
		history:  NewHistory(opts.HistorySize),
		log:      opts.Logger.With("session_id", id.String()),
		tracer:   opts.Tracer,
		recorder: opts.Recorder,
		wrap:     opts.WrapWidth,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Opening returns the opening description of the starting room.
func (s *Session) Opening() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	look := s.game.Look()
	s.history.AddResponse(look)
	return look
}

// Turn parses line and applies it to the game.
func (s *Session) Turn(ctx context.Context, line string) Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd, err := s.parser.Parse(line)
	if err != nil {
		if !s.game.Status().Terminal() {
			return s.reject(ctx, line, err)
		}
		// The engine answers every command with ErrGameOver from here on.
		cmd = game.UnknownCommand{Raw: line}
	}
	return s.apply(ctx, line, cmd)
}

// EndInput treats closed input as a quit. It is a no-op once the game ended.
func (s *Session) EndInput(ctx context.Context) (Turn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.Status().Terminal() {
		return Turn{Status: s.game.Status(), Room: s.game.Player().Location()}, false
	}
	return s.apply(ctx, endOfInput, game.QuitCommand{}), true
}

func (s *Session) apply(ctx context.Context, line string, cmd game.Command) Turn {
	ctx, span := s.startTurn(ctx, line, cmd.Verb())
	defer span.End()

	resp := s.game.Execute(cmd)
	turn := s.finishTurn(ctx, span, line, resp.Text, resp.Err)

	if line != endOfInput {
		s.history.AddPlayerInput(line)
	}
	s.history.AddResponse(resp.Text)
	return turn
}

func (s *Session) reject(ctx context.Context, line string, err error) Turn {
	ctx, span := s.startTurn(ctx, line, "")
	defer span.End()

	text := err.Error()
	var perr *game.ParseError
	if errors.As(err, &perr) {
		text = perr.Message
	}
	turn := s.finishTurn(ctx, span, line, text, err)

	s.history.AddPlayerInput(line)
	s.history.AddGuidance(text)
	return turn
}

func (s *Session) startTurn(ctx context.Context, line string, verb game.Verb) (context.Context, trace.Span) {
	s.turns++
	ctx = observability.WithSessionID(ctx, s.id.String())
	return s.tracer.Start(ctx, "session.turn", trace.WithAttributes(
		attribute.Int("turn.number", s.turns),
		attribute.String("turn.input", line),
		attribute.String("turn.verb", string(verb)),
	))
}

func (s *Session) finishTurn(ctx context.Context, span trace.Span, line, text string, err error) Turn {
	turn := Turn{
		Number: s.turns,
		Input:  line,
		Text:   text,
		Err:    err,
		Status: s.game.Status(),
		Room:   s.game.Player().Location(),
	}
	condition := game.Condition(err)

	span.SetAttributes(
		attribute.String("turn.condition", condition),
		attribute.String("player.room", turn.Room.String()),
		attribute.String("game.status", turn.Status.String()),
	)
	if errors.Is(err, game.ErrGameOver) {
		span.SetStatus(codes.Error, err.Error())
	}

	s.log.DebugContext(ctx, "turn",
		"turn", turn.Number,
		"input", line,
		"condition", condition,
		"room", turn.Room.String(),
		"status", turn.Status.String(),
	)

	if s.recorder != nil {
		rec := logging.TurnRecord{
			SessionID: s.id.String(),
			Turn:      turn.Number,
			Input:     line,
			Output:    text,
			Room:      turn.Room.String(),
			Condition: condition,
			Status:    turn.Status.String(),
		}
		if err := s.recorder.RecordTurn(ctx, rec); err != nil {
			s.log.WarnContext(ctx, "failed to record turn", "error", err)
			span.RecordError(err)
		}
	}

	return turn
}

func (s *Session) Status() game.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Status()
}

// Room returns the display name of the player's room.
func (s *Session) Room() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.World().Room(s.game.Player().Location()).Name
}

func (s *Session) Inventory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.InventoryNames()
}

func (s *Session) History() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

// Run plays the session on a line-oriented reader and writer until the game
// is won or quit. End of input counts as quitting.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, Banner)
	fmt.Fprintln(out)
	s.print(out, s.Opening())

	reader := bufio.NewReader(in)
	for !s.Status().Terminal() {
		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if !errors.Is(err, io.EOF) {
				s.log.WarnContext(ctx, "failed to read input", "error", err)
			}
			fmt.Fprintln(out)
			if turn, ok := s.EndInput(ctx); ok {
				s.print(out, turn.Text)
			}
			return nil
		}
		s.print(out, s.Turn(ctx, strings.TrimRight(line, "\r\n")).Text)
	}
	return nil
}

func (s *Session) print(out io.Writer, text string) {
	fmt.Fprintln(out, Wrap(text, s.wrap))
	fmt.Fprintln(out)
}

// Wrap word-wraps text at width. A width of zero leaves text untouched.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}
