package game

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

// boardWith builds a position from a map of placements.
func boardWith(gameType GameType, pieces map[Position]Piece) *Board {
	b := NewEmptyBoard(gameType)
	for p, pc := range pieces {
		b.Place(p, pc)
	}
	return b
}

func TestRookStopsAtFirstOpposingPiece(t *testing.T) {
	b := boardWith(Chess, map[Position]Piece{
		Pos(7, 0): NewPiece(Rook, White),
		Pos(7, 3): NewPiece(Knight, Black),
	})

	moves := PossibleMoves(b, Pos(7, 0))

	for _, p := range []Position{Pos(7, 1), Pos(7, 2), Pos(7, 3)} {
		assert.True(t, moves.Has(p), "expected %s", p)
	}
	for col := 4; col < Size; col++ {
		assert.False(t, moves.Has(Pos(7, col)), "ray continued past capture to (7,%d)", col)
	}
	// 3 along the rank, 7 up the file
	assert.Len(t, moves, 10)
}

func TestSlidingPieceBlockedByOwnPiece(t *testing.T) {
	b := boardWith(Chess, map[Position]Piece{
		Pos(4, 4): NewPiece(Bishop, White),
		Pos(2, 2): NewPiece(Pawn, White),
		Pos(6, 6): NewPiece(Pawn, Black),
	})

	moves := PossibleMoves(b, Pos(4, 4))

	assert.True(t, moves.Has(Pos(3, 3)))
	assert.False(t, moves.Has(Pos(2, 2)), "own piece must block without inclusion")
	assert.False(t, moves.Has(Pos(1, 1)))
	assert.True(t, moves.Has(Pos(5, 5)))
	assert.True(t, moves.Has(Pos(6, 6)), "opposing piece is included")
	assert.False(t, moves.Has(Pos(7, 7)))
}

func TestPawnDoubleStepGating(t *testing.T) {
	tests := []struct {
		name     string
		blockers map[Position]Piece
		want     []Position
	}{
		{
			name: "both cells empty",
			want: []Position{Pos(5, 4), Pos(4, 4)},
		},
		{
			name:     "first cell occupied",
			blockers: map[Position]Piece{Pos(5, 4): NewPiece(Knight, Black)},
			want:     nil,
		},
		{
			name:     "second cell occupied",
			blockers: map[Position]Piece{Pos(4, 4): NewPiece(Knight, White)},
			want:     []Position{Pos(5, 4)},
		},
		{
			name: "diagonal captures only onto opposing pieces",
			blockers: map[Position]Piece{
				Pos(5, 3): NewPiece(Knight, Black),
				Pos(5, 5): NewPiece(Knight, White),
			},
			want: []Position{Pos(5, 3), Pos(5, 4), Pos(4, 4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(Chess, tt.blockers)
			b.Place(Pos(6, 4), NewPiece(Pawn, White))

			moves := PossibleMoves(b, Pos(6, 4))
			assert.ElementsMatch(t, tt.want, moves.Sorted())
		})
	}
}

func TestPawnSingleStepAwayFromStartingRow(t *testing.T) {
	b := boardWith(Chess, map[Position]Piece{
		Pos(3, 2): NewPiece(Pawn, Black),
	})

	assert.Equal(t, []Position{Pos(4, 2)}, PossibleMoves(b, Pos(3, 2)).Sorted())
}

func TestQueenIsRookUnionBishop(t *testing.T) {
	pieces := map[Position]Piece{
		Pos(2, 3): NewPiece(Pawn, Black),
		Pos(5, 6): NewPiece(Knight, White),
		Pos(3, 0): NewPiece(Rook, Black),
	}

	at := Pos(3, 3)
	expected := PositionSet{}
	for _, kind := range []Kind{Rook, Bishop} {
		b := boardWith(Chess, pieces)
		b.Place(at, NewPiece(kind, White))
		expected.Union(PossibleMoves(b, at))
	}

	b := boardWith(Chess, pieces)
	b.Place(at, NewPiece(Queen, White))

	assert.Equal(t, expected, PossibleMoves(b, at))
}

func TestQueenOnEmptyBoard(t *testing.T) {
	b := boardWith(Chess, map[Position]Piece{Pos(3, 3): NewPiece(Queen, Black)})
	assert.Len(t, PossibleMoves(b, Pos(3, 3)), 27)
}

func TestKnightAndAssassinShareMoveSet(t *testing.T) {
	for _, at := range []Position{Pos(0, 0), Pos(3, 4), Pos(7, 6)} {
		kb := boardWith(Chess, map[Position]Piece{at: NewPiece(Knight, White), Pos(1, 2): NewPiece(Pawn, White)})
		ab := boardWith(Chess, map[Position]Piece{at: NewPiece(Assassin, White), Pos(1, 2): NewPiece(Pawn, White)})
		assert.Equal(t, PossibleMoves(kb, at), PossibleMoves(ab, at), "at %s", at)
	}

	b := boardWith(Chess, map[Position]Piece{Pos(0, 0): NewPiece(Assassin, Black)})
	assert.ElementsMatch(t, []Position{Pos(1, 2), Pos(2, 1)}, PossibleMoves(b, Pos(0, 0)).Sorted())
}

func TestKingSteps(t *testing.T) {
	b := boardWith(Chess, map[Position]Piece{
		Pos(0, 0): NewPiece(King, Black),
		Pos(0, 1): NewPiece(Rook, Black),
		Pos(1, 1): NewPiece(Pawn, White),
	})

	assert.ElementsMatch(t, []Position{Pos(1, 0), Pos(1, 1)}, PossibleMoves(b, Pos(0, 0)).Sorted())
}

func TestLancerMovesForwardOnly(t *testing.T) {
	b := boardWith(Chess, map[Position]Piece{
		Pos(6, 1): NewPiece(Lancer, White),
		Pos(2, 1): NewPiece(Pawn, Black),
		Pos(1, 5): NewPiece(Lancer, Black),
		Pos(5, 5): NewPiece(Pawn, Black),
	})

	assert.ElementsMatch(t,
		[]Position{Pos(5, 1), Pos(4, 1), Pos(3, 1), Pos(2, 1)},
		PossibleMoves(b, Pos(6, 1)).Sorted())
	assert.ElementsMatch(t,
		[]Position{Pos(2, 5), Pos(3, 5), Pos(4, 5)},
		PossibleMoves(b, Pos(1, 5)).Sorted())
}

func TestFortressReachesEveryEmptyCell(t *testing.T) {
	b := boardWith(Chess, map[Position]Piece{
		Pos(4, 4): NewPiece(Fortress, White),
		Pos(4, 5): NewPiece(Pawn, White),
		Pos(3, 4): NewPiece(Pawn, Black),
	})

	moves := PossibleMoves(b, Pos(4, 4))

	assert.True(t, moves.Has(Pos(3, 4)), "adjacent opposing piece is capturable")
	assert.False(t, moves.Has(Pos(4, 5)), "own piece is not a destination")
	assert.False(t, moves.Has(Pos(4, 4)))
	assert.True(t, moves.Has(Pos(0, 0)), "distant empty cell is reachable")
	assert.Len(t, moves, 62)
}

func TestCheckerMoves(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
		at    Position
		want  []Position
	}{
		{"white steps up", NewChecker(White, false), Pos(5, 2), []Position{Pos(4, 1), Pos(4, 3)}},
		{"black steps down", NewChecker(Black, false), Pos(2, 1), []Position{Pos(3, 0), Pos(3, 2)}},
		{"edge column", NewChecker(White, false), Pos(5, 0), []Position{Pos(4, 1)}},
		{"queen moves both ways", NewChecker(White, true), Pos(5, 2), []Position{Pos(4, 1), Pos(4, 3), Pos(6, 1), Pos(6, 3)}},
		{"last row has no forward move", NewChecker(Black, false), Pos(7, 2), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(Checkers, map[Position]Piece{tt.at: tt.piece})
			assert.ElementsMatch(t, tt.want, PossibleMoves(b, tt.at).Sorted())
		})
	}
}

func TestCheckerDoesNotStepOntoOccupiedCell(t *testing.T) {
	b := boardWith(Checkers, map[Position]Piece{
		Pos(5, 2): NewChecker(White, false),
		Pos(4, 1): NewChecker(White, false),
		Pos(4, 3): NewChecker(Black, false),
	})

	assert.Empty(t, PossibleMoves(b, Pos(5, 2)))
}

func TestCaptureMovesJumpGeometry(t *testing.T) {
	b := boardWith(Checkers, map[Position]Piece{
		Pos(5, 2): NewChecker(White, false),
		Pos(4, 3): NewChecker(Black, false),
	})

	jumps := CaptureMoves(b, Pos(5, 2))

	require.Len(t, jumps, 1)
	assert.Equal(t, Jump{Landing: Pos(3, 4), Over: Pos(4, 3)}, jumps[0])
	assert.Equal(t, NewPositionSet(Pos(3, 4)), jumps.Landings())
}

func TestCaptureMovesRejections(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[Position]Piece
		at     Position
	}{
		{
			name: "own piece in the way",
			pieces: map[Position]Piece{
				Pos(5, 2): NewChecker(White, false),
				Pos(4, 3): NewChecker(White, false),
			},
			at: Pos(5, 2),
		},
		{
			name: "landing occupied",
			pieces: map[Position]Piece{
				Pos(5, 2): NewChecker(White, false),
				Pos(4, 3): NewChecker(Black, false),
				Pos(3, 4): NewChecker(Black, false),
			},
			at: Pos(5, 2),
		},
		{
			name: "landing off the board",
			pieces: map[Position]Piece{
				Pos(1, 1): NewChecker(White, false),
				Pos(0, 2): NewChecker(Black, false),
			},
			at: Pos(1, 1),
		},
		{
			name: "plain checker cannot jump backwards",
			pieces: map[Position]Piece{
				Pos(3, 2): NewChecker(White, false),
				Pos(4, 3): NewChecker(Black, false),
			},
			at: Pos(3, 2),
		},
		{
			name:   "not a checker",
			pieces: map[Position]Piece{Pos(3, 2): NewPiece(Rook, White), Pos(2, 3): NewPiece(Rook, Black)},
			at:     Pos(3, 2),
		},
		{
			name: "empty cell",
			at:   Pos(3, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(Checkers, tt.pieces)
			assert.Empty(t, CaptureMoves(b, tt.at))
		})
	}
}

func TestQueenCheckerJumpsBackwards(t *testing.T) {
	b := boardWith(Checkers, map[Position]Piece{
		Pos(3, 2): NewChecker(White, true),
		Pos(4, 3): NewChecker(Black, false),
	})

	jumps := CaptureMoves(b, Pos(3, 2))
	require.Len(t, jumps, 1)
	assert.Equal(t, Jump{Landing: Pos(5, 4), Over: Pos(4, 3)}, jumps[0])
}

func TestPossibleMovesEmptyCell(t *testing.T) {
	assert.Empty(t, PossibleMoves(NewEmptyBoard(Chess), Pos(3, 3)))
}

func TestPossibleMovesStayInBounds(t *testing.T) {
	kinds := []Kind{Pawn, Rook, Knight, Bishop, Queen, King, Checker, Lancer, Assassin, Fortress}
	crowded := NewBoard(Chess, true)

	for _, kind := range kinds {
		for _, color := range []Color{White, Black} {
			for _, queen := range []bool{false, true} {
				if queen && kind != Checker {
					continue
				}
				pc := Piece{Kind: kind, Color: color, Queen: queen}
				for row := 0; row < Size; row++ {
					for col := 0; col < Size; col++ {
						at := Pos(row, col)
						for _, base := range []*Board{NewEmptyBoard(Chess), crowded} {
							b := base.Clone()
							b.Place(at, pc)
							for p := range PossibleMoves(b, at) {
								if !p.InBounds() {
									t.Fatalf("%s %s at %s produced out-of-bounds %s", color, kind, at, p)
								}
							}
							for _, j := range CaptureMoves(b, at) {
								if !j.Landing.InBounds() || !j.Over.InBounds() {
									t.Fatalf("%s %s at %s produced out-of-bounds jump %+v", color, kind, at, j)
								}
							}
						}
					}
				}
			}
		}
	}
}

func TestPossibleMovesDoesNotMutateBoard(t *testing.T) {
	b := NewBoard(Chess, true)
	before := b.Clone()

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			PossibleMoves(b, Pos(row, col))
			CaptureMoves(b, Pos(row, col))
		}
	}

	assert.True(t, before.Equal(b))
}
