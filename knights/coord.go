package knights

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Coord is a row/column pair on a board. A Coord with Valid unset
// came from unparseable input and carries no location.
type Coord struct {
	Y, X  int
	Valid bool
}

func At(y, x int) Coord {
	return Coord{Y: y, X: x, Valid: true}
}

var (
	spaceRE = regexp.MustCompile(`\s+`)
	coordRE = regexp.MustCompile(`(-?\d+) (-?\d+)`)
)

// ParseCoord extracts the first "row column" integer pair found
// anywhere in text.
func ParseCoord(text string) Coord {
	groups := coordRE.FindStringSubmatch(spaceRE.ReplaceAllString(text, " "))
	if groups == nil {
		return Coord{}
	}
	y, err := strconv.Atoi(groups[1])
	if err != nil {
		return Coord{}
	}
	x, err := strconv.Atoi(groups[2])
	if err != nil {
		return Coord{}
	}
	return At(y, x)
}

func (c Coord) Offset(dy, dx int) Coord {
	return At(c.Y+dy, c.X+dx)
}

func (c Coord) Equal(rhs Coord) bool {
	return c.Valid && rhs.Valid && c.Y == rhs.Y && c.X == rhs.X
}

func (c Coord) String() string {
	if !c.Valid {
		return "invalid"
	}
	return fmt.Sprintf("%d %d", c.Y, c.X)
}

// FormatCoords renders cs as a space-separated list of "y,x" pairs.
func FormatCoords(cs []Coord) string {
	bits := make([]string, len(cs))
	for i, c := range cs {
		bits[i] = fmt.Sprintf("%d,%d", c.Y, c.X)
	}
	return strings.Join(bits, " ")
}
