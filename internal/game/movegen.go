package game

type offset struct{ dr, dc int }

var (
	orthogonal = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonal   = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	adjacent   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	lShape     = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// PossibleMoves returns the destinations of the piece standing on at. It
// never mutates b. An empty cell has no moves.
func PossibleMoves(b *Board, at Position) PositionSet {
	moves := PositionSet{}
	pc, ok := b.PieceAt(at)
	if !ok {
		return moves
	}

	switch pc.Kind {
	case Pawn:
		pawnMoves(b, pc, at, moves)
	case Rook:
		slide(b, pc.Color, at, orthogonal, moves)
	case Bishop:
		slide(b, pc.Color, at, diagonal, moves)
	case Queen:
		slide(b, pc.Color, at, orthogonal, moves)
		slide(b, pc.Color, at, diagonal, moves)
	case Knight, Assassin:
		step(b, pc.Color, at, lShape, moves)
	case King:
		step(b, pc.Color, at, adjacent, moves)
	case Lancer:
		slide(b, pc.Color, at, []offset{{pc.Direction(), 0}}, moves)
	case Fortress:
		step(b, pc.Color, at, orthogonal, moves)
		// Any empty square on the board is reachable.
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				if p := Pos(row, col); b.empty(p) {
					moves.Add(p)
				}
			}
		}
	case Checker:
		for _, dr := range checkerRows(pc) {
			for _, dc := range []int{-1, 1} {
				if p := at.Add(dr, dc); p.InBounds() && b.empty(p) {
					moves.Add(p)
				}
			}
		}
	}
	return moves
}

// CaptureMoves returns the jumps available to a checker on at. Other pieces
// and empty cells have none.
func CaptureMoves(b *Board, at Position) Jumps {
	pc, ok := b.PieceAt(at)
	if !ok || pc.Kind != Checker {
		return nil
	}

	var jumps Jumps
	for _, dr := range checkerRows(pc) {
		for _, dc := range []int{-1, 1} {
			over := at.Add(dr, dc)
			landing := at.Add(2*dr, 2*dc)
			if !over.InBounds() || !landing.InBounds() {
				continue
			}
			victim := b.at(over)
			if victim.IsZero() || victim.Color == pc.Color || !b.empty(landing) {
				continue
			}
			jumps = append(jumps, Jump{Landing: landing, Over: over})
		}
	}
	return jumps
}

func checkerRows(pc Piece) []int {
	if pc.Queen {
		return []int{-1, 1}
	}
	return []int{pc.Direction()}
}

// slide casts a ray along each direction. The first occupied square stops the
// ray and is included only when it holds an opposing piece.
func slide(b *Board, color Color, from Position, dirs []offset, moves PositionSet) {
	for _, d := range dirs {
		p := from.Add(d.dr, d.dc)
		for p.InBounds() {
			if occ := b.at(p); !occ.IsZero() {
				if occ.Color != color {
					moves.Add(p)
				}
				break
			}
			moves.Add(p)
			p = p.Add(d.dr, d.dc)
		}
	}
}

func step(b *Board, color Color, from Position, offsets []offset, moves PositionSet) {
	for _, o := range offsets {
		p := from.Add(o.dr, o.dc)
		if !p.InBounds() {
			continue
		}
		if occ := b.at(p); occ.IsZero() || occ.Color != color {
			moves.Add(p)
		}
	}
}

func pawnMoves(b *Board, pc Piece, at Position, moves PositionSet) {
	dir := pc.Direction()

	one := at.Add(dir, 0)
	if one.InBounds() && b.empty(one) {
		moves.Add(one)
		startRow := 6
		if pc.Color == Black {
			startRow = 1
		}
		if two := at.Add(2*dir, 0); at.Row == startRow && b.empty(two) {
			moves.Add(two)
		}
	}

	for _, dc := range []int{-1, 1} {
		p := at.Add(dir, dc)
		if !p.InBounds() {
			continue
		}
		if occ := b.at(p); !occ.IsZero() && occ.Color != pc.Color {
			moves.Add(p)
		}
	}
}
