package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Geometry is the declared board: Width (x) columns, Height (y) rows and the
// Connect (z) length a line needs to win.
type Geometry struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	Connect int `json:"connect"`
}

// ParseGeometry reads the header line "x y z". Tokens are separated by single
// spaces; each token may carry surrounding whitespace.
func ParseGeometry(line string) (Geometry, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) != 3 {
		return Geometry{}, fmt.Errorf("header has %d tokens, want 3: %w", len(tokens), ErrInvalidInput)
	}

	var params [3]int
	for i, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			if !errors.Is(err, strconv.ErrRange) {
				return Geometry{}, fmt.Errorf("header token %q: %w", tok, ErrInvalidInput)
			}
			// Atoi saturates at math.MaxInt. Rows grow lazily so a saturated
			// height or connect goes through the usual rules; a width cannot.
			if i == 0 || n < 0 {
				return Geometry{}, fmt.Errorf("header token %q out of range: %w", tok, ErrIllegalGame)
			}
		}
		params[i] = n
	}

	g := Geometry{Width: params[0], Height: params[1], Connect: params[2]}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

// Validate reports ErrIllegalGame when no line of Connect counters can ever fit.
func (g Geometry) Validate() error {
	if g.Width < MinDimension || g.Height < MinDimension || g.Connect < MinDimension {
		return fmt.Errorf("geometry %dx%d connect %d below minimum %d: %w",
			g.Width, g.Height, g.Connect, MinDimension, ErrIllegalGame)
	}
	if g.Connect > max(g.Width, g.Height) {
		return fmt.Errorf("connect %d exceeds board %dx%d: %w", g.Connect, g.Width, g.Height, ErrIllegalGame)
	}
	return nil
}

// Full reports whether filled counters occupy every cell. It divides rather
// than multiplies so tall boards cannot overflow.
func (g Geometry) Full(filled int) bool {
	return filled/g.Width >= g.Height
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d connect %d", g.Width, g.Height, g.Connect)
}
