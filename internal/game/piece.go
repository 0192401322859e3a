package game

import (
	"fmt"
	"strings"
)

type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
	Checker
	Lancer
	Assassin
	Fortress
)

func (k Kind) String() string {
	switch k {
	case NoKind:
		return "none"
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Checker:
		return "checker"
	case Lancer:
		return "lancer"
	case Assassin:
		return "assassin"
	case Fortress:
		return "fortress"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if k > Fortress {
		return nil, fmt.Errorf("unknown piece kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for c := NoKind; c <= Fortress; c++ {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown piece kind %q", text)
}

// Piece is a value; the zero Piece is an empty cell. A promoted checker is a
// different Piece value, never an in-place change.
type Piece struct {
	Kind  Kind  `json:"kind"`
	Color Color `json:"color"`
	Queen bool  `json:"queen,omitempty"`
}

func NewPiece(kind Kind, color Color) Piece {
	return Piece{Kind: kind, Color: color}
}

func NewChecker(color Color, queen bool) Piece {
	return Piece{Kind: Checker, Color: color, Queen: queen}
}

func (p Piece) IsZero() bool {
	return p.Kind == NoKind
}

// Promoted returns the queen form of a checker.
func (p Piece) Promoted() Piece {
	return Piece{Kind: Checker, Color: p.Color, Queen: true}
}

// Direction is the row delta of a forward step for pawns, lancers and checkers.
func (p Piece) Direction() int {
	if p.Color == White {
		return -1
	}
	return 1
}

var letters = map[Kind]string{
	Pawn:     "P",
	Rook:     "R",
	Knight:   "N",
	Bishop:   "B",
	Queen:    "Q",
	King:     "K",
	Lancer:   "L",
	Assassin: "A",
	Fortress: "F",
}

func (p Piece) Symbol() string {
	switch p.Kind {
	case NoKind:
		return ""
	case Checker:
		s := "B"
		if p.Color == White {
			s = "W"
		}
		if p.Queen {
			s += "Q"
		}
		return s
	}
	l := letters[p.Kind]
	if p.Color == Black {
		return strings.ToLower(l)
	}
	return l
}

func (p Piece) String() string {
	return p.Symbol()
}

// PromotionRow is the row on which a checker of the given colour is crowned.
func PromotionRow(c Color) int {
	if c == White {
		return 0
	}
	return Size - 1
}
