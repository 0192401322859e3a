package game

// MaterialCount represents the material count for both sides
type MaterialCount struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// Balance is white's material minus black's.
func (m MaterialCount) Balance() int {
	return m.White - m.Black
}

// PieceValues maps piece kinds to their material values. Kings count zero.
var PieceValues = map[Kind]int{
	Pawn:     1,
	Knight:   3,
	Bishop:   3,
	Rook:     5,
	Queen:    9,
	King:     0,
	Lancer:   3,
	Assassin: 3,
	Fortress: 4,
	Checker:  1,
}

func (p Piece) Value() int {
	if p.Kind == Checker && p.Queen {
		return 2
	}
	return PieceValues[p.Kind]
}

func (b *Board) Material() MaterialCount {
	var m MaterialCount
	b.each(func(_ Position, pc Piece) {
		if pc.Color == White {
			m.White += pc.Value()
		} else {
			m.Black += pc.Value()
		}
	})
	return m
}
