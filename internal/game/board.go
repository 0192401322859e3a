package game

// Board is the 8×8 grid. It performs no legality checking of its own; the
// Session validates moves before calling MovePiece.
type Board struct {
	cells    [Size][Size]Piece
	gameType GameType
	modified bool
}

var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// modifiedPawnRow maps the columns that lose their pawn in modified chess.
var modifiedPawnRow = map[int]Kind{
	1: Lancer,
	4: Assassin,
	6: Fortress,
}

func NewBoard(gameType GameType, modified bool) *Board {
	b := &Board{gameType: gameType, modified: modified}
	b.setup()
	return b
}

// NewEmptyBoard returns a board with no pieces, for building custom positions.
func NewEmptyBoard(gameType GameType) *Board {
	return &Board{gameType: gameType}
}

func (b *Board) setup() {
	switch b.gameType {
	case Chess:
		for col, kind := range backRank {
			b.cells[7][col] = NewPiece(kind, White)
			b.cells[0][col] = NewPiece(kind, Black)
		}
		for col := 0; col < Size; col++ {
			kind := Pawn
			if b.modified {
				if k, ok := modifiedPawnRow[col]; ok {
					kind = k
				}
			}
			b.cells[6][col] = NewPiece(kind, White)
			b.cells[1][col] = NewPiece(kind, Black)
		}
	case Checkers:
		for row := 0; row < Size; row++ {
			var color Color
			switch {
			case row <= 2:
				color = Black
			case row >= 5:
				color = White
			default:
				continue
			}
			for col := 0; col < Size; col++ {
				if (row+col)%2 != 0 {
					b.cells[row][col] = NewChecker(color, false)
				}
			}
		}
	}
}

func (b *Board) GameType() GameType { return b.gameType }

func (b *Board) Modified() bool { return b.modified }

func (b *Board) PieceAt(p Position) (Piece, bool) {
	if !p.InBounds() {
		return Piece{}, false
	}
	pc := b.cells[p.Row][p.Col]
	return pc, !pc.IsZero()
}

func (b *Board) at(p Position) Piece {
	return b.cells[p.Row][p.Col]
}

func (b *Board) empty(p Position) bool {
	return b.cells[p.Row][p.Col].IsZero()
}

// Place puts pc on p, replacing any occupant.
func (b *Board) Place(p Position, pc Piece) {
	if !p.InBounds() {
		return
	}
	b.cells[p.Row][p.Col] = pc
}

func (b *Board) Clear(p Position) {
	b.Place(p, Piece{})
}

// MovePiece relocates whatever occupies from to to and returns the previous
// occupant of to (zero Piece if it was empty). If jumped is non-nil that cell
// is cleared as well.
func (b *Board) MovePiece(from, to Position, jumped *Position) Piece {
	pc := b.at(from)
	captured := b.at(to)

	b.cells[to.Row][to.Col] = pc
	b.cells[from.Row][from.Col] = Piece{}

	if jumped != nil {
		b.cells[jumped.Row][jumped.Col] = Piece{}
	}
	return captured
}

// UndoMove reverses m. A jumped checker is rebuilt as a plain checker of the
// mover's opponent: Move does not record whether it had been crowned.
func (b *Board) UndoMove(m Move) {
	b.cells[m.From.Row][m.From.Col] = m.Piece
	b.cells[m.To.Row][m.To.Col] = m.Captured

	if m.HasJump && b.gameType == Checkers {
		b.cells[m.Jumped.Row][m.Jumped.Col] = NewChecker(m.Piece.Color.Opposite(), false)
	}

	if m.Promoted {
		b.cells[m.From.Row][m.From.Col] = NewChecker(m.Piece.Color, false)
		b.cells[m.To.Row][m.To.Col] = Piece{}
	}
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	b.each(func(Position, Piece) { n++ })
	return n
}

// Find returns the first position, in row-major order, holding kind of color.
func (b *Board) Find(kind Kind, color Color) (Position, bool) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pc := b.cells[row][col]
			if pc.Kind == kind && pc.Color == color {
				return Pos(row, col), true
			}
		}
	}
	return Position{}, false
}

// each calls fn for every occupied cell in row-major order.
func (b *Board) each(fn func(Position, Piece)) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if pc := b.cells[row][col]; !pc.IsZero() {
				fn(Pos(row, col), pc)
			}
		}
	}
}

func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return *b == *other
}
