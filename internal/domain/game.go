package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Engine replays one game a move at a time. It owns the board, the column
// tracker and the turn counters for the lifetime of the game.
type Engine struct {
	geo      Geometry
	board    *Board
	tracker  ColumnTracker
	nextRow  []int
	player   PlayerID
	winner   PlayerID
	turns    int
	filled   int
	done     bool
	outcome  Outcome
	observer func(Turn, *Board)
}

type Option func(*Engine)

// WithObserver registers fn to be called after every accepted move.
func WithObserver(fn func(Turn, *Board)) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// NewEngine starts an empty game. The geometry must already be validated.
func NewEngine(g Geometry, opts ...Option) *Engine {
	e := &Engine{
		geo:     g,
		board:   NewBoard(g.Width, g.Height),
		tracker: NewColumnTracker(g.Width),
		nextRow: make([]int, g.Width),
		player:  Player1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Turns() int       { return e.turns }
func (e *Engine) Winner() PlayerID { return e.winner }

// Play consumes one raw move line. Once it reports true the outcome is final
// and further calls return the same outcome.
func (e *Engine) Play(token string) (Outcome, bool) {
	if e.done {
		return e.outcome, true
	}
	if err := e.play(token); err != nil {
		return e.terminate(OutcomeOf(err))
	}
	if e.winner == Empty && e.geo.Full(e.filled) {
		return e.terminate(OutcomeDraw)
	}
	e.player = e.player.Opponent()
	return "", false
}

// Finish is called when the move source is exhausted.
func (e *Engine) Finish() Outcome {
	if e.done {
		return e.outcome
	}
	if e.winner != Empty {
		o, _ := e.terminate(WinFor(e.winner))
		return o
	}
	o, _ := e.terminate(OutcomeIncomplete)
	return o
}

func (e *Engine) terminate(o Outcome) (Outcome, bool) {
	e.done = true
	e.outcome = o
	return o, true
}

func (e *Engine) play(token string) error {
	// a win on an earlier turn makes any further move illegal
	if e.winner != Empty {
		return ErrIllegalContinue
	}

	column, err := parseColumn(token)
	if err != nil {
		return err
	}
	if column < 0 || column >= e.geo.Width {
		return fmt.Errorf("column %d outside 1..%d: %w", column+1, e.geo.Width, ErrIllegalColumn)
	}

	row := e.nextRow[column]
	if err := e.board.EnsureRow(row); err != nil {
		return fmt.Errorf("column %d is full: %w", column+1, err)
	}

	e.board.Place(row, column, e.player)
	e.tracker.Push(column, e.player)
	e.nextRow[column]++
	e.filled++

	won := e.scan(row, column)
	if won {
		e.winner = e.player
	}
	e.turns++

	if e.observer != nil {
		e.observer(Turn{Number: e.turns, Player: e.player, Column: column, Row: row, Won: won}, e.board)
	}
	return nil
}

// scan runs the line checks once a line of Connect counters is reachable. The
// mover's Connect-th counter lands on zero-based turn 2z-2 at the earliest,
// and vertical or diagonal lines also need Connect materialized rows.
func (e *Engine) scan(row, column int) bool {
	z := e.geo.Connect
	if e.turns/2 < z-1 {
		return false
	}
	if ScanRow(e.board, row, column, e.player, z) {
		return true
	}
	if e.board.Rows() < z {
		return false
	}
	return ScanColumn(e.tracker, column, e.player, z) ||
		ScanRisingDiagonal(e.board, row, column, e.player, z) ||
		ScanFallingDiagonal(e.board, row, column, e.player, z)
}

// parseColumn decodes a 1-based column token into a zero-based index.
func parseColumn(token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		// well-formed but unrepresentable columns are simply off the board
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("column %q: %w", token, ErrIllegalColumn)
		}
		return 0, fmt.Errorf("move %q: %w", token, ErrInvalidInput)
	}
	return n - 1, nil
}

// Result is what a full replay produced.
type Result struct {
	Outcome  Outcome  `json:"outcome"`
	Geometry Geometry `json:"geometry"`
	Moves    int      `json:"moves"`
	Winner   PlayerID `json:"winner"`
}

// Replay pulls the header and then every move from src until the game reaches
// a terminal outcome.
func Replay(src MoveSource, opts ...Option) Result {
	line, fetch, err := src.Next()
	if err != nil {
		return Result{Outcome: OutcomeOf(err)}
	}
	if fetch == EndOfInput {
		return Result{Outcome: OutcomeInvalidInput}
	}

	geo, err := ParseGeometry(line)
	if err != nil {
		return Result{Outcome: OutcomeOf(err)}
	}

	e := NewEngine(geo, opts...)
	result := func(o Outcome) Result {
		return Result{Outcome: o, Geometry: geo, Moves: e.Turns(), Winner: e.Winner()}
	}

	for {
		line, fetch, err := src.Next()
		if err != nil {
			return result(OutcomeOf(err))
		}
		if fetch == EndOfInput {
			return result(e.Finish())
		}
		if o, done := e.Play(line); done {
			return result(o)
		}
	}
}
