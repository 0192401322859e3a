// Package render draws a board as text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/justinabrahms/boardgames/internal/game"
)

const (
	MarkCheck      = "#"
	MarkThreatened = "?"
	MarkMove       = "*"
	MarkJump       = "!"
	MarkEmpty      = "."
)

// View is the derived state shown on top of the pieces. Nil sets mark nothing.
type View struct {
	MoveCount   int
	Current     game.Color
	Moves       game.PositionSet
	Jumps       game.PositionSet
	Threatened  game.PositionSet
	KingInCheck bool
}

const files = "   a  b  c  d  e  f  g  h"

// Render writes the board with rank labels on both sides and a material line.
func Render(w io.Writer, b *game.Board, v View) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Move %d\n", v.MoveCount)
	sb.WriteString(files + "\n")
	for row := 0; row < game.Size; row++ {
		rank := game.Size - row
		fmt.Fprintf(&sb, "%d  ", rank)
		for col := 0; col < game.Size; col++ {
			fmt.Fprintf(&sb, "%-3s", cell(b, game.Pos(row, col), v))
		}
		fmt.Fprintf(&sb, "%d\n", rank)
	}
	sb.WriteString(files + "\n")

	m := b.Material()
	fmt.Fprintf(&sb, "Material: white %d, black %d\n", m.White, m.Black)

	_, err := io.WriteString(w, sb.String())
	return err
}

func cell(b *game.Board, p game.Position, v View) string {
	pc, ok := b.PieceAt(p)
	switch {
	case v.KingInCheck && ok && pc.Kind == game.King && pc.Color == v.Current:
		return MarkCheck
	case v.Threatened.Has(p):
		return MarkThreatened
	case v.Moves.Has(p):
		return MarkMove
	case v.Jumps.Has(p):
		return MarkJump
	case !ok:
		return MarkEmpty
	default:
		return pc.Symbol()
	}
}
