package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/knights/knights"
)

func TestParsePosition(t *testing.T) {
	g, err := ParsePosition("1,x2/x,#,x/x2,2 2", knights.DefaultConfig)
	require.NoError(t, err)

	b := g.Board()
	assert.Equal(t, 3, b.Height())
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, knights.Cell(','), b.At(knights.At(0, 0)))
	assert.Equal(t, knights.Vacated, b.At(knights.At(1, 1)))
	assert.Equal(t, knights.Cell('.'), b.At(knights.At(2, 2)))
	assert.Equal(t, knights.Free, b.At(knights.At(0, 1)))

	assert.Equal(t, 1, g.ActiveIndex())
	assert.Equal(t, "player2", g.Active().Name())
	assert.Equal(t, knights.At(0, 0), g.Player(0).Position())
	assert.Equal(t, knights.Playing, g.Phase())
}

func TestParsePositionFinished(t *testing.T) {
	g, err := ParsePosition("1,x2/x2,2/x,#,x 1", knights.DefaultConfig)
	require.NoError(t, err)
	over, winner := g.GameOver()
	require.True(t, over)
	assert.Equal(t, "player2", winner.Name())
}

func TestParsePositionErrors(t *testing.T) {
	cases := []string{
		"",
		"1,x2/x3/x2,2",
		"1,x2/x3/x2,2 3",
		"1,x2/x3 1",
		"1,x/x3/x2,2 1",
		"1,x2/x3/x3 1",
		"1,x2/x,1,x/x2,2 1",
		"1,x2/x3/x2,y 1",
		"1,x0,x2/x3/x2,2 1",
		"1,x2/x3/x2,22 1",
		"1,,x/x3/x2,2 1",
	}
	for _, in := range cases {
		_, err := ParsePosition(in, knights.DefaultConfig)
		assert.Error(t, err, "ParsePosition(%q)", in)
	}
}

func TestFormatPosition(t *testing.T) {
	cases := []string{
		"1,x2/x3/x2,2 1",
		"1,x2/x,#,x/x2,2 2",
		"#3,1/x4/2,x,#2 1",
		"x5/x,1,x3/#5/x3,2,x 2",
	}
	for _, in := range cases {
		g, err := ParsePosition(in, knights.DefaultConfig)
		require.NoError(t, err, in)
		assert.Equal(t, in, FormatPosition(g))
	}
}

func TestFormatAfterMove(t *testing.T) {
	g, err := ParsePosition("1,x2/x3/x2,2 1", knights.DefaultConfig)
	require.NoError(t, err)
	require.NoError(t, g.Move(knights.At(1, 2)))
	assert.Equal(t, "#,x2/x2,1/x2,2 2", FormatPosition(g))
}
