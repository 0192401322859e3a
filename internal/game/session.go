package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Session arbitrates one game: turn order, move validation, commit and undo.
// It exclusively owns its board and history; it is not safe for concurrent use.
type Session struct {
	id        string
	board     *Board
	current   Color
	moveCount int
	history   []Move
	logger    zerolog.Logger
}

type Destinations struct {
	Moves PositionSet `json:"moves"`
	Jumps Jumps       `json:"jumps"`
}

type MoveResult struct {
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Piece     Piece     `json:"piece"`
	Captured  Piece     `json:"captured"`
	Jumped    *Position `json:"jumped,omitempty"`
	Promoted  bool      `json:"promoted"`
	Check     bool      `json:"check"`
	MoveCount int       `json:"moveCount"`
}

func NewSession(gameType GameType, modified bool) *Session {
	return NewSessionFromBoard(NewBoard(gameType, modified))
}

// NewSessionFromBoard starts a session on an existing position with white to
// move. The session takes ownership of b.
func NewSessionFromBoard(b *Board) *Session {
	id := uuid.NewString()
	s := &Session{
		id:        id,
		board:     b,
		current:   White,
		moveCount: 1,
		logger: log.With().
			Str("session", id).
			Str("game", string(b.gameType)).
			Logger(),
	}
	s.logger.Info().Bool("modified", b.modified).Msg("Session started")
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) GameType() GameType { return s.board.gameType }

func (s *Session) CurrentPlayer() Color { return s.current }

func (s *Session) MoveCount() int { return s.moveCount }

// Board returns a copy of the current position.
func (s *Session) Board() *Board { return s.board.Clone() }

func (s *Session) PieceAt(p Position) (Piece, bool) { return s.board.PieceAt(p) }

// History returns the committed moves, oldest first.
func (s *Session) History() []Move {
	return append([]Move(nil), s.history...)
}

func (s *Session) LegalDestinations(at Position) (Destinations, error) {
	if !at.InBounds() {
		return Destinations{}, fmt.Errorf("%w: %s", ErrOutOfBounds, at)
	}
	pc, ok := s.board.PieceAt(at)
	if !ok {
		return Destinations{}, fmt.Errorf("%w: %s", ErrEmptyCell, at)
	}
	if pc.Color != s.current {
		return Destinations{}, fmt.Errorf("%w: %s belongs to %s", ErrNotYourPiece, at, pc.Color)
	}

	dest := Destinations{Moves: PossibleMoves(s.board, at)}
	if s.board.gameType == Checkers && pc.Kind == Checker {
		dest.Jumps = CaptureMoves(s.board, at)
	}
	return dest, nil
}

// AttemptMove validates and commits a move for the current player. Checkers
// jumps are accepted alongside simple moves; captures are not mandatory. On
// error nothing changes.
func (s *Session) AttemptMove(from, to Position) (*MoveResult, error) {
	if !to.InBounds() {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, to)
	}
	dest, err := s.LegalDestinations(from)
	if err != nil {
		return nil, err
	}

	pc := s.board.at(from)
	jump, isJump := dest.Jumps.To(to)
	if !isJump && !dest.Moves.Has(to) {
		return nil, fmt.Errorf("%w: %s to %s", ErrIllegalDestination, from, to)
	}

	promoted := s.board.gameType == Checkers && pc.Kind == Checker && !pc.Queen &&
		to.Row == PromotionRow(pc.Color)

	result := &MoveResult{From: from, To: to, Piece: pc, Promoted: promoted}

	var jumped *Position
	if isJump {
		over := jump.Over
		jumped = &over
		result.Jumped = jumped
		result.Captured = s.board.at(over)
	}

	if promoted {
		s.board.Place(from, pc.Promoted())
	}
	captured := s.board.MovePiece(from, to, jumped)
	if !isJump {
		result.Captured = captured
	}

	m := Move{
		From:     from,
		To:       to,
		Piece:    pc,
		Captured: captured,
		HasJump:  isJump,
		Promoted: promoted,
	}
	if isJump {
		m.Jumped = jump.Over
	}
	s.history = append(s.history, m)
	s.current = s.current.Opposite()
	s.moveCount++

	result.Check = s.KingInCheck()
	result.MoveCount = s.moveCount

	ev := s.logger.Debug().
		Str("piece", pc.Kind.String()).
		Str("color", pc.Color.String()).
		Stringer("from", from).
		Stringer("to", to).
		Int("moveCount", s.moveCount)
	if !result.Captured.IsZero() {
		ev = ev.Str("captured", result.Captured.Kind.String())
	}
	ev.Bool("promoted", promoted).Msg("Move committed")

	return result, nil
}

// ThreatenedPieces returns the current player's non-king pieces that some
// opposing piece could move onto.
func (s *Session) ThreatenedPieces() PositionSet {
	attacked := s.attackedBy(s.current.Opposite())
	threatened := PositionSet{}
	s.board.each(func(p Position, pc Piece) {
		if pc.Color == s.current && pc.Kind != King && attacked.Has(p) {
			threatened.Add(p)
		}
	})
	return threatened
}

// KingInCheck reports whether the current player's king is attacked. It is
// false when that player has no king, as in checkers.
func (s *Session) KingInCheck() bool {
	king, ok := s.board.Find(King, s.current)
	if !ok {
		return false
	}
	return s.attackedBy(s.current.Opposite()).Has(king)
}

func (s *Session) attackedBy(c Color) PositionSet {
	attacked := PositionSet{}
	s.board.each(func(p Position, pc Piece) {
		if pc.Color == c {
			attacked.Union(PossibleMoves(s.board, p))
		}
	})
	return attacked
}

func (s *Session) UndoOne() error {
	if len(s.history) == 0 {
		return ErrEmptyHistory
	}
	last := len(s.history) - 1
	m := s.history[last]
	s.history = s.history[:last]

	s.board.UndoMove(m)
	s.current = s.current.Opposite()
	s.moveCount--

	s.logger.Debug().
		Stringer("from", m.From).
		Stringer("to", m.To).
		Int("moveCount", s.moveCount).
		Msg("Move undone")
	return nil
}

// UndoMany undoes up to n moves and returns how many were undone. It stops
// with ErrEmptyHistory if the history runs out first. A count below one
// undoes nothing.
func (s *Session) UndoMany(n int) (int, error) {
	if n < 1 {
		return 0, nil
	}
	for i := 0; i < n; i++ {
		if err := s.UndoOne(); err != nil {
			return i, err
		}
	}
	return n, nil
}
