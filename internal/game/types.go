package game

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Size is the width and height of every board.
const Size = 8

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("unknown color %q", text)
	}
	return nil
}

type GameType string

const (
	Chess    GameType = "chess"
	Checkers GameType = "checkers"
)

func ParseGameType(s string) (GameType, error) {
	switch GameType(strings.ToLower(strings.TrimSpace(s))) {
	case Chess:
		return Chess, nil
	case Checkers:
		return Checkers, nil
	default:
		return "", fmt.Errorf("unknown game type %q", s)
	}
}

// Position is a (row, column) pair. Row 0 is black's back rank.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// PositionSet is an unordered set of board positions.
type PositionSet map[Position]struct{}

func NewPositionSet(ps ...Position) PositionSet {
	s := make(PositionSet, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

func (s PositionSet) Add(p Position) {
	s[p] = struct{}{}
}

func (s PositionSet) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

func (s PositionSet) Union(other PositionSet) {
	for p := range other {
		s[p] = struct{}{}
	}
}

// Sorted returns the positions in row-major order.
func (s PositionSet) Sorted() []Position {
	out := maps.Keys(s)
	slices.SortFunc(out, func(a, b Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}
