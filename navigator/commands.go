package navigator

import (
	"fmt"

	"github.com/dasdy/datanav/model"
)

type Command string

const (
	Up     Command = "up"
	Down   Command = "down"
	Left   Command = "left"
	Right  Command = "right"
	DiagNE Command = "diag-ne"
	DiagNW Command = "diag-nw"
	DiagSE Command = "diag-se"
	DiagSW Command = "diag-sw"
)

const (
	upSign    = -1
	downSign  = 1
	leftSign  = -1
	rightSign = 1
)

// Commands lists every command in the order the controls are laid out.
var Commands = []Command{DiagNW, Up, DiagNE, Left, Right, DiagSW, Down, DiagSE}

// Move is one (direction, sign) pair handed to Step.
type Move struct {
	Direction model.Direction
	Sign      int
}

// Moves returns the steps a command issues. Diagonals move vertically first.
func (c Command) Moves() []Move {
	up := Move{model.Vertical, upSign}
	down := Move{model.Vertical, downSign}
	left := Move{model.Horizontal, leftSign}
	right := Move{model.Horizontal, rightSign}

	switch c {
	case Up:
		return []Move{up}
	case Down:
		return []Move{down}
	case Left:
		return []Move{left}
	case Right:
		return []Move{right}
	case DiagNE:
		return []Move{up, right}
	case DiagNW:
		return []Move{up, left}
	case DiagSE:
		return []Move{down, right}
	case DiagSW:
		return []Move{down, left}
	default:
		return nil
	}
}

func (c Command) IsDiagonal() bool {
	return len(c.Moves()) == 2
}

// Enabled reports whether the settings allow the command at all.
func (c Command) Enabled(s model.Settings) bool {
	moves := c.Moves()

	switch len(moves) {
	case 1:
		if moves[0].Direction == model.Horizontal {
			return s.Horizontal
		}

		return s.Vertical
	case 2:
		return s.Diagonal && s.Horizontal && s.Vertical
	default:
		return false
	}
}

// Label is the arrow glyph shown on the control.
func (c Command) Label() string {
	switch c {
	case Up:
		return "↑"
	case Down:
		return "↓"
	case Left:
		return "←"
	case Right:
		return "→"
	case DiagNE:
		return "↗"
	case DiagNW:
		return "↖"
	case DiagSE:
		return "↘"
	case DiagSW:
		return "↙"
	default:
		return "?"
	}
}

func ParseCommand(s string) (Command, error) {
	c := Command(s)
	if c.Moves() == nil {
		return "", fmt.Errorf("unknown navigation command %q", s)
	}

	return c, nil
}
