package domain

import "errors"

// Outcome is the single terminal classification of a replay.
type Outcome string

const (
	OutcomeDraw             Outcome = "draw"
	OutcomeWinPlayer1       Outcome = "win p1"
	OutcomeWinPlayer2       Outcome = "win p2"
	OutcomeIncomplete       Outcome = "incomplete"
	OutcomeIllegalContinue  Outcome = "illegal continue"
	OutcomeIllegalRow       Outcome = "illegal row"
	OutcomeIllegalColumn    Outcome = "illegal column"
	OutcomeIllegalGame      Outcome = "illegal game"
	OutcomeInvalidInput     Outcome = "invalid file"
	OutcomeInputUnavailable Outcome = "file error"
)

var outcomeCodes = map[Outcome]string{
	OutcomeDraw:             "0",
	OutcomeWinPlayer1:       "1",
	OutcomeWinPlayer2:       "2",
	OutcomeIncomplete:       "3",
	OutcomeIllegalContinue:  "4",
	OutcomeIllegalRow:       "5",
	OutcomeIllegalColumn:    "6",
	OutcomeIllegalGame:      "7",
	OutcomeInvalidInput:     "8",
	OutcomeInputUnavailable: "9",
}

// Code returns the external numeral for the outcome, or "" for an unknown kind.
func (o Outcome) Code() string {
	return outcomeCodes[o]
}

// WinFor returns the win outcome for a player.
func WinFor(p PlayerID) Outcome {
	if p == Player2 {
		return OutcomeWinPlayer2
	}
	return OutcomeWinPlayer1
}

var errorOutcomes = []struct {
	err     Error
	outcome Outcome
}{
	{ErrInputUnavailable, OutcomeInputUnavailable},
	{ErrInvalidInput, OutcomeInvalidInput},
	{ErrIllegalGame, OutcomeIllegalGame},
	{ErrIllegalContinue, OutcomeIllegalContinue},
	{ErrIllegalColumn, OutcomeIllegalColumn},
	{ErrIllegalRow, OutcomeIllegalRow},
}

// OutcomeOf classifies an error raised while replaying. Errors that carry no
// domain sentinel are treated as an unreadable input.
func OutcomeOf(err error) Outcome {
	for _, eo := range errorOutcomes {
		if errors.Is(err, eo.err) {
			return eo.outcome
		}
	}
	return OutcomeInputUnavailable
}
