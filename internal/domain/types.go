package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other player. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

// smallest legal width, height and connect length
const MinDimension = 2

// Fetch tags what a MoveSource produced on a pull.
type Fetch int

const (
	NextLine Fetch = iota
	EndOfInput
)

// MoveSource is the lazy line producer the engine pulls from. A non-nil error
// means the underlying resource failed, which is distinct from EndOfInput.
type MoveSource interface {
	Next() (string, Fetch, error)
}

// Turn describes one accepted move, handed to observers after scanning.
type Turn struct {
	Number int      `json:"turn"`
	Player PlayerID `json:"player"`
	Column int      `json:"column"`
	Row    int      `json:"row"`
	Won    bool     `json:"won"`
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidInput     Error = "invalid input"
	ErrInputUnavailable Error = "input unavailable"
	ErrIllegalGame      Error = "illegal game"
	ErrIllegalContinue  Error = "illegal continue"
	ErrIllegalColumn    Error = "illegal column"
	ErrIllegalRow       Error = "illegal row"
)
