package knightstest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nelhage/knights/knights"
	"github.com/nelhage/knights/notation"
)

func TestCoords(t *testing.T) {
	assert.Nil(t, Coords(""))
	assert.Equal(t, []knights.Coord{knights.At(1, 2), knights.At(-2, 0)}, Coords("1,2 -2,0"))
	assert.Panics(t, func() { Coords("1;2") })

	cs := []knights.Coord{knights.At(0, 0), knights.At(12, -3)}
	assert.Equal(t, cs, Coords(knights.FormatCoords(cs)))
}

func TestPosition(t *testing.T) {
	g := Position("1,x2/x3/x2,2 1", "1,2 0,1 2,0")
	over, winner := g.GameOver()
	assert.True(t, over)
	assert.Equal(t, notation.PlayerName(0), winner.Name())
	assert.PanicsWithValue(t, "move 1 1: illegal move (legal: 1,2 2,1)", func() {
		Position("1,x2/x3/x2,2 1", "1,1")
	})
}
