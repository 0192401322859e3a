package game

// Move records one committed move with enough detail for Board.UndoMove to
// reverse it. Piece is the mover as it stood on From, before any promotion.
type Move struct {
	From     Position `json:"from"`
	To       Position `json:"to"`
	Piece    Piece    `json:"piece"`
	Captured Piece    `json:"captured"`
	Jumped   Position `json:"jumped"`
	HasJump  bool     `json:"hasJump"`
	Promoted bool     `json:"promoted"`
}

// Jump is a checkers capture: the checker lands on Landing after passing
// over the opposing piece on Over.
type Jump struct {
	Landing Position `json:"landing"`
	Over    Position `json:"over"`
}

type Jumps []Jump

func (js Jumps) Landings() PositionSet {
	s := make(PositionSet, len(js))
	for _, j := range js {
		s.Add(j.Landing)
	}
	return s
}

// To returns the jump that lands on p, if any.
func (js Jumps) To(p Position) (Jump, bool) {
	for _, j := range js {
		if j.Landing == p {
			return j, true
		}
	}
	return Jump{}, false
}
