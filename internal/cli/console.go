// Package cli runs a game interactively over a line-oriented reader and
// writer, feeding parsed squares to a game.Session.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/justinabrahms/boardgames/internal/game"
	"github.com/justinabrahms/boardgames/internal/notation"
	"github.com/justinabrahms/boardgames/internal/render"
)

const (
	cmdQuit   = "quit"
	cmdCancel = "cancel"
)

var errQuit = errors.New("quit")

type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// prompt prints msg and reads one trimmed line. It returns errQuit on EOF or
// when the player types quit.
func (c *Console) prompt(msg string) (string, error) {
	fmt.Fprint(c.out, msg)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errQuit
	}
	line := strings.TrimSpace(c.in.Text())
	if strings.EqualFold(line, cmdQuit) {
		return "", errQuit
	}
	return line, nil
}

func (c *Console) say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// ChooseGame asks which game to play and, for chess when askModified is set,
// whether to use the new pieces. ok is false if the player quit.
func (c *Console) ChooseGame(askModified bool) (gt game.GameType, modified bool, ok bool, err error) {
	for {
		line, err := c.prompt("Choose a game (chess or checkers): ")
		if errors.Is(err, errQuit) {
			return "", false, false, nil
		}
		if err != nil {
			return "", false, false, err
		}
		gt, err = game.ParseGameType(line)
		if err == nil {
			break
		}
		c.say("Unknown game.")
	}

	if gt == game.Chess && askModified {
		line, err := c.prompt("Play with the new pieces? (y/n): ")
		if errors.Is(err, errQuit) {
			return "", false, false, nil
		}
		if err != nil {
			return "", false, false, err
		}
		modified = strings.EqualFold(line, "y")
	}
	return gt, modified, true, nil
}

// Run plays s until the input ends, the player quits or ctx is cancelled.
func (c *Console) Run(ctx context.Context, s *game.Session) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := c.turn(s)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) view(s *game.Session, dest *game.Destinations) render.View {
	v := render.View{
		MoveCount:   s.MoveCount(),
		Current:     s.CurrentPlayer(),
		Threatened:  s.ThreatenedPieces(),
		KingInCheck: s.KingInCheck(),
	}
	if dest != nil {
		v.Moves = dest.Moves
		v.Jumps = dest.Jumps.Landings()
	}
	return v
}

func (c *Console) draw(s *game.Session, dest *game.Destinations) error {
	return render.Render(c.out, s.Board(), c.view(s, dest))
}

// turn handles one selection and destination exchange. An undo command or a
// cancelled selection ends the turn without a move.
func (c *Console) turn(s *game.Session) error {
	if err := c.draw(s, nil); err != nil {
		return err
	}
	c.say("Move %d. %s to play.", s.MoveCount(), s.CurrentPlayer())
	c.say("Type '%s' or '%s N' to take moves back, '%s' to leave. Select a piece by its square (e.g. a2).",
		notation.UndoCommand, notation.UndoCommand, cmdQuit)

	from, dest, done, err := c.selectPiece(s)
	if err != nil || done {
		return err
	}
	if err := c.draw(s, &dest); err != nil {
		return err
	}
	return c.chooseDestination(s, from, dest)
}

func (c *Console) selectPiece(s *game.Session) (game.Position, game.Destinations, bool, error) {
	for {
		line, err := c.prompt("Select a piece: ")
		if err != nil {
			return game.Position{}, game.Destinations{}, false, err
		}

		if n, isUndo, err := notation.ParseUndo(line); isUndo {
			if err != nil {
				c.say("Invalid undo command: %v", err)
				continue
			}
			c.undo(s, n)
			return game.Position{}, game.Destinations{}, true, nil
		}

		from, err := notation.ParseSquare(line)
		if err != nil {
			log.Debug().Err(err).Str("input", line).Msg("Rejected square")
			c.say("Invalid square. Example: a2")
			continue
		}

		dest, err := s.LegalDestinations(from)
		switch {
		case errors.Is(err, game.ErrEmptyCell):
			c.say("There is no piece on that square.")
			continue
		case errors.Is(err, game.ErrNotYourPiece):
			c.say("That is not your piece.")
			continue
		case err != nil:
			return game.Position{}, game.Destinations{}, false, err
		}

		if s.GameType() == game.Chess && len(dest.Moves) == 0 && len(dest.Jumps) == 0 {
			c.say("That piece has no moves. Choose another piece.")
			continue
		}
		return from, dest, false, nil
	}
}

func (c *Console) chooseDestination(s *game.Session, from game.Position, dest game.Destinations) error {
	for {
		line, err := c.prompt(fmt.Sprintf("Enter destination (or '%s'): ", cmdCancel))
		if err != nil {
			return err
		}
		if strings.EqualFold(line, cmdCancel) {
			return nil
		}

		to, err := notation.ParseSquare(line)
		if err != nil {
			c.say("Invalid square. Example: a2")
			continue
		}

		result, err := s.AttemptMove(from, to)
		if errors.Is(err, game.ErrIllegalDestination) {
			log.Debug().Err(err).Msg("Rejected move")
			c.say("Illegal move.")
			if err := c.draw(s, &dest); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		c.report(result)
		return nil
	}
}

func (c *Console) report(r *game.MoveResult) {
	msg := fmt.Sprintf("%s %s-%s", r.Piece.Kind, notation.Square(r.From), notation.Square(r.To))
	if !r.Captured.IsZero() {
		msg += fmt.Sprintf(", captured %s %s", r.Captured.Color, r.Captured.Kind)
	}
	if r.Promoted {
		msg += ", crowned"
	}
	if r.Check {
		msg += ", check"
	}
	c.say("%s.", msg)
}

func (c *Console) undo(s *game.Session, n int) {
	undone, err := s.UndoMany(n)
	if undone > 0 {
		c.say("Undid %d move(s).", undone)
	}
	if errors.Is(err, game.ErrEmptyHistory) {
		c.say("Move history is empty.")
	}
}
