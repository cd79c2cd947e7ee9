package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/nelhage/knights/i18n"
	"github.com/nelhage/knights/knights"
)

const clearScreen = "\033[H\033[2J"

// CLI runs a game between two people sharing one terminal. All rule
// decisions are left to Game; CLI only asks, draws and re-asks.
type CLI struct {
	Game    *knights.Game
	In      *bufio.Reader
	Out     io.Writer
	Printer *message.Printer
	Log     *slog.Logger

	// Clear wipes the terminal before the board is drawn.
	Clear bool
}

// Play takes the game from board sizing through to the end and
// returns the winner. It only fails if input runs out.
func (c *CLI) Play() (*knights.Player, error) {
	if c.Game.Phase() == knights.SizingBoard {
		if err := c.sizeBoard(); err != nil {
			return nil, err
		}
	}
	for c.Game.Phase() == knights.CreatingPlayers {
		if err := c.createPlayer(); err != nil {
			return nil, err
		}
		c.clear()
	}
	for {
		c.clear()
		c.render()
		if over, winner := c.Game.GameOver(); over {
			fmt.Fprintln(c.Out)
			c.say(i18n.TurnToMove, c.Game.Active().Name())
			c.say(i18n.TurnNoMoves)
			fmt.Fprintln(c.Out)
			c.say(i18n.ResultStuck, c.Game.Active().Name())
			c.say(i18n.ResultWinner, winner.Name())
			c.log().Info("game over",
				"winner", winner.Name(),
				"plies", c.Game.Ply())
			return winner, nil
		}
		if err := c.takeTurn(); err != nil {
			return nil, err
		}
	}
}

func (c *CLI) sizeBoard() error {
	for {
		line, err := c.ask(i18n.BoardSizePrompt)
		if err != nil {
			return err
		}
		size := knights.ParseCoord(line)
		if !size.Valid {
			c.say(i18n.CoordsFormat)
			fmt.Fprintln(c.Out)
			continue
		}
		switch err := c.Game.SizeBoard(size.Y, size.X); err {
		case nil:
			c.say(i18n.BoardSizeDone, size.Y, size.X)
			fmt.Fprintln(c.Out)
			c.log().Debug("board sized", "height", size.Y, "width", size.X)
			return nil
		case knights.ErrHeightTooSmall:
			c.say(i18n.BoardSizeHeight, knights.MinSize)
		case knights.ErrWidthTooSmall:
			c.say(i18n.BoardSizeWidth, knights.MinSize)
		default:
			return err
		}
		fmt.Fprintln(c.Out)
	}
}

func (c *CLI) createPlayer() error {
	n := c.Game.Creating() + 1
	name, err := c.ask(i18n.PlayerNamePrompt, n)
	if err != nil {
		return err
	}
	if err := c.Game.SetName(strings.TrimSpace(name)); err != nil {
		return err
	}

	c.say(i18n.PlayerGlyphIntro)
	c.say(i18n.PlayerGlyphList)
	for _, g := range c.Game.AvailableGlyphs() {
		c.say(i18n.PlayerGlyphItem, g.Index+1, g.Glyph)
	}
	if err := c.chooseGlyph(); err != nil {
		return err
	}

	c.clear()
	c.render()
	fmt.Fprintln(c.Out)
	c.say(i18n.PlayerPlaceIntro)
	for {
		line, err := c.ask(i18n.PlayerPlacePrompt)
		if err != nil {
			return err
		}
		at := knights.ParseCoord(line)
		switch err := c.Game.Place(at); err {
		case nil:
			p := c.Game.Player(n - 1)
			c.log().Debug("player created",
				"number", n,
				"name", p.Name(),
				"glyph", string(p.Glyph()),
				"at", at.String())
			return nil
		case knights.ErrInvalidCoord:
			c.say(i18n.CoordsFormat)
		case knights.ErrOffBoard:
			c.say(i18n.CoordsOffBoard)
		case knights.ErrOccupied:
			c.say(i18n.PlayerPlaceOccupied)
		default:
			return err
		}
	}
}

func (c *CLI) chooseGlyph() error {
	for {
		line, err := c.ask(i18n.PlayerGlyphPrompt)
		if err != nil {
			return err
		}
		i, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.say(i18n.PlayerGlyphBad)
			continue
		}
		switch err := c.Game.ChooseGlyph(i - 1); err {
		case nil:
			return nil
		case knights.ErrGlyphIndex:
			c.say(i18n.PlayerGlyphBad)
		case knights.ErrGlyphTaken:
			c.say(i18n.PlayerGlyphTaken)
		default:
			return err
		}
	}
}

func (c *CLI) takeTurn() error {
	fmt.Fprintln(c.Out)
	c.say(i18n.TurnMoves)
	ListMoves(c.Printer, c.Out, c.Game.LegalMoves())

	n := c.Game.ActiveIndex() + 1
	p := c.Game.Active()
	for {
		line, err := c.ask(i18n.TurnPrompt, n, p.Name())
		if err != nil {
			return err
		}
		to := knights.ParseCoord(line)
		from := p.Position()
		switch err := c.Game.Move(to); err {
		case nil:
			c.log().Debug("move",
				"player", p.Name(),
				"from", from.String(),
				"to", to.String())
			return nil
		case knights.ErrInvalidCoord:
			c.say(i18n.CoordsFormat)
		case knights.ErrOffBoard:
			c.say(i18n.CoordsOffBoard)
		case knights.ErrIllegalMove:
			c.say(i18n.TurnIllegal)
		default:
			return err
		}
	}
}

func (c *CLI) say(key string, args ...interface{}) {
	c.Printer.Fprintf(c.Out, key, args...)
	fmt.Fprintln(c.Out)
}

// ask prints a prompt and reads one line of the answer.
func (c *CLI) ask(key string, args ...interface{}) (string, error) {
	c.Printer.Fprintf(c.Out, key, args...)
	line, err := c.In.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

func (c *CLI) clear() {
	if c.Clear {
		fmt.Fprint(c.Out, clearScreen)
	}
}

func (c *CLI) render() {
	RenderBoard(c.Out, c.Game.Board())
}

func (c *CLI) log() *slog.Logger {
	if c.Log == nil {
		return slog.Default()
	}
	return c.Log
}

func RenderBoard(out io.Writer, b *knights.Board) {
	fmt.Fprint(out, b.Render())
}

// ListMoves prints moves numbered from 1, in the order given.
func ListMoves(p *message.Printer, out io.Writer, moves []knights.Coord) {
	for i, m := range moves {
		p.Fprintf(out, i18n.TurnMoveItem, i+1, m.Y, m.X)
		fmt.Fprintln(out)
	}
}
