// Package notation converts between board positions and the file-rank
// squares players type ("e2"), and exports standard chess boards as FEN.
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/justinabrahms/boardgames/internal/game"
)

var ErrInvalidSquare = errors.New("invalid square notation")

// UndoCommand is the word that takes moves back: "undo" or "undo N".
const UndoCommand = "undo"

// ParseSquare reads a square such as "a2". Rank 8 is row 0.
func ParseSquare(sq string) (game.Position, error) {
	sq = strings.ToLower(strings.TrimSpace(sq))
	if len(sq) != 2 {
		return game.Position{}, fmt.Errorf("%w: %q", ErrInvalidSquare, sq)
	}

	file := int(sq[0]) - 'a'
	rank := int(sq[1]) - '1'

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return game.Position{}, fmt.Errorf("%w: %q", ErrInvalidSquare, sq)
	}

	return game.Pos(game.Size-1-rank, file), nil
}

func Square(p game.Position) string {
	if !p.InBounds() {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, game.Size-p.Row)
}

// ParseUndo recognises "undo" and "undo N". ok is false when the input is not
// an undo command at all; err is set when it is one but N is malformed.
func ParseUndo(input string) (n int, ok bool, err error) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 || fields[0] != UndoCommand {
		return 0, false, nil
	}
	switch len(fields) {
	case 1:
		return 1, true, nil
	case 2:
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return 0, true, fmt.Errorf("undo count must be a positive integer, got %q", fields[1])
		}
		return n, true, nil
	default:
		return 0, true, fmt.Errorf("usage: %s [N]", UndoCommand)
	}
}

var fenLetters = map[game.Kind]bool{
	game.Pawn:   true,
	game.Rook:   true,
	game.Knight: true,
	game.Bishop: true,
	game.Queen:  true,
	game.King:   true,
}

// FEN encodes a chess board containing only standard pieces. ply is the
// session move count (1 before white's first move). Castling and en-passant
// are not part of these games and are always "-".
func FEN(b *game.Board, turn game.Color, ply int) (string, error) {
	if b.GameType() != game.Chess {
		return "", fmt.Errorf("FEN is only defined for chess, got %s", b.GameType())
	}

	var sb strings.Builder
	for row := 0; row < game.Size; row++ {
		empty := 0
		for col := 0; col < game.Size; col++ {
			pc, ok := b.PieceAt(game.Pos(row, col))
			if !ok {
				empty++
				continue
			}
			if !fenLetters[pc.Kind] {
				return "", fmt.Errorf("%s on %s has no FEN letter", pc.Kind, Square(game.Pos(row, col)))
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.Symbol())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < game.Size-1 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if turn == game.Black {
		side = "b"
	}
	fullmove := (ply + 1) / 2
	if fullmove < 1 {
		fullmove = 1
	}
	fmt.Fprintf(&sb, " %s - - 0 %d", side, fullmove)
	return sb.String(), nil
}
