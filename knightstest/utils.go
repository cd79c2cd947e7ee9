package knightstest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/knights/knights"
	"github.com/nelhage/knights/notation"
)

// Coords parses a space-separated list of "y,x" pairs, the form
// knights.FormatCoords writes.
func Coords(s string) []knights.Coord {
	if s == "" {
		return nil
	}
	var out []knights.Coord
	for _, b := range strings.Split(s, " ") {
		parts := strings.Split(b, ",")
		if len(parts) != 2 {
			panic(fmt.Sprintf("bad coord: %q", b))
		}
		y, e := strconv.Atoi(parts[0])
		if e != nil {
			panic(e)
		}
		x, e := strconv.Atoi(parts[1])
		if e != nil {
			panic(e)
		}
		out = append(out, knights.At(y, x))
	}
	return out
}

// Position parses pos with the default config and plays moves on it.
func Position(pos string, moves string) *knights.Game {
	g, e := notation.ParsePosition(pos, knights.DefaultConfig)
	if e != nil {
		panic(e)
	}
	for _, m := range Coords(moves) {
		legal := g.LegalMoves()
		if e := g.Move(m); e != nil {
			panic(fmt.Sprintf("move %v: %v (legal: %s)", m, e, knights.FormatCoords(legal)))
		}
	}
	return g
}
