// Package notation reads and writes a compact text form of a game in
// progress, modelled on Tak's TPS.
//
// A position is "<rows> <to-move>". Rows run from row 0 to the last
// row, separated by '/'. Each row is a comma-separated list of
// squares: "x" for a free square, "#" for a vacated one, "1" and "2"
// for the players' pieces. "x" and "#" take an optional repeat count,
// so "x3" is three free squares.
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/knights/knights"
)

var (
	ErrWords   = errors.New("bad position: wrong number of words")
	ErrPlayers = errors.New("bad position: each player needs exactly one piece")
)

// PlayerName returns the name given to player i (0 or 1) in a parsed
// position.
func PlayerName(i int) string {
	return fmt.Sprintf("player%d", i+1)
}

// ParsePosition builds a game from its text form. Player 1 takes the
// first palette glyph and player 2 the second.
func ParsePosition(text string, cfg knights.Config) (*knights.Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	words := strings.Split(strings.TrimSpace(text), " ")
	if len(words) != 2 {
		return nil, ErrWords
	}
	var active int
	switch words[1] {
	case "1":
		active = 0
	case "2":
		active = 1
	default:
		return nil, fmt.Errorf("bad turn: %s", words[1])
	}

	var rows [][]byte
	for _, r := range strings.Split(words[0], "/") {
		row, err := parseRow(r)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if len(rows) < knights.MinSize {
		return nil, fmt.Errorf("bad board height: %d", len(rows))
	}
	width := len(rows[0])
	if width < knights.MinSize {
		return nil, fmt.Errorf("bad board width: %d", width)
	}
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("row %d bad length: %d", i, len(r))
		}
	}

	b := knights.NewBoard(len(rows), width, cfg.Border)
	var players [2]*knights.Player
	for y, r := range rows {
		for x, sq := range r {
			c := knights.At(y, x)
			switch sq {
			case 'x':
			case '#':
				b.Set(c, knights.Vacated)
			case '1', '2':
				i := int(sq - '1')
				if players[i] != nil {
					return nil, ErrPlayers
				}
				glyph := cfg.Palette[i]
				players[i] = knights.NewPlayer(PlayerName(i), glyph, c)
				b.Set(c, knights.Cell(glyph))
			}
		}
	}
	if players[0] == nil || players[1] == nil {
		return nil, ErrPlayers
	}
	return knights.Restore(cfg, b, players, active, nil)
}

func parseRow(r string) ([]byte, error) {
	var out []byte
	for _, sq := range strings.Split(r, ",") {
		if sq == "" {
			return nil, errors.New("empty square")
		}
		switch sq[0] {
		case 'x', '#':
			n := 1
			if len(sq) > 1 {
				var err error
				n, err = strconv.Atoi(sq[1:])
				if err != nil || n < 1 {
					return nil, fmt.Errorf("bad run: %q", sq)
				}
			}
			for i := 0; i < n; i++ {
				out = append(out, sq[0])
			}
		case '1', '2':
			if len(sq) != 1 {
				return nil, fmt.Errorf("bad square: %q", sq)
			}
			out = append(out, sq[0])
		default:
			return nil, fmt.Errorf("bad square: %q", sq)
		}
	}
	return out, nil
}

// FormatPosition writes g in the form ParsePosition reads. g must have
// both players on the board.
func FormatPosition(g *knights.Game) string {
	b := g.Board()
	var rows []string
	for y := 0; y < b.Height(); y++ {
		rows = append(rows, formatRow(g, y))
	}
	return fmt.Sprintf("%s %d", strings.Join(rows, "/"), g.ActiveIndex()+1)
}

func formatRow(g *knights.Game, y int) string {
	b := g.Board()
	var bits []string
	for x := 0; x < b.Width(); {
		sq := square(g, knights.At(y, x))
		n := 1
		if sq == "x" || sq == "#" {
			for x+n < b.Width() && square(g, knights.At(y, x+n)) == sq {
				n++
			}
		}
		if n > 1 {
			bits = append(bits, fmt.Sprintf("%s%d", sq, n))
		} else {
			bits = append(bits, sq)
		}
		x += n
	}
	return strings.Join(bits, ",")
}

func square(g *knights.Game, c knights.Coord) string {
	for i := 0; i < 2; i++ {
		if p := g.Player(i); p != nil && p.Position().Equal(c) {
			return strconv.Itoa(i + 1)
		}
	}
	cell := g.Board().At(c)
	switch {
	case cell.IsFree():
		return "x"
	case cell.IsVacated():
		return "#"
	default:
		panic(fmt.Sprintf("bad cell %q at %v", rune(cell), c))
	}
}
