package knights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCoord(t *testing.T) {
	cases := []struct {
		in  string
		out Coord
	}{
		{"1 2", At(1, 2)},
		{"  3    4  ", At(3, 4)},
		{"3\t\t4", At(3, 4)},
		{"-1 -2", At(-1, -2)},
		{"go to 5 6 please", At(5, 6)},
		{"1 2 3 4", At(1, 2)},
		{"10 0", At(10, 0)},
		{"1-2 3", At(-2, 3)},
		{"", Coord{}},
		{"7", Coord{}},
		{"a b", Coord{}},
		{"1,2", Coord{}},
		{"99999999999999999999 1", Coord{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.out, ParseCoord(tc.in), "ParseCoord(%q)", tc.in)
	}
}

func TestParseCoordNormalized(t *testing.T) {
	for _, in := range []string{"0 0", "4 -3", "12 7"} {
		c := ParseCoord(in)
		assert.True(t, c.Valid, in)
		assert.Equal(t, in, c.String())
		assert.Equal(t, c, ParseCoord(c.String()))
	}
}

func TestOffset(t *testing.T) {
	c := At(0, 0).Offset(-2, 1)
	assert.Equal(t, At(-2, 1), c)
	assert.True(t, c.Valid)

	c = Coord{}.Offset(1, 1)
	assert.True(t, c.Valid)
}

func TestCoordEqual(t *testing.T) {
	assert.True(t, At(1, 2).Equal(At(1, 2)))
	assert.False(t, At(1, 2).Equal(At(2, 1)))
	assert.False(t, Coord{}.Equal(Coord{}))
}

func TestFormatCoords(t *testing.T) {
	assert.Equal(t, "1,2 2,1", FormatCoords([]Coord{At(1, 2), At(2, 1)}))
	assert.Equal(t, "", FormatCoords(nil))
}
