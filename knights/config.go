package knights

import (
	"errors"
	"fmt"
)

// MinSize is the smallest height or width a session board may have.
const MinSize = 3

type Config struct {
	// Border frames the rendered board.
	Border rune
	// Palette holds the glyphs players choose their piece from.
	Palette []rune
}

var DefaultConfig = Config{
	Border:  '*',
	Palette: []rune{',', '.'},
}

var ErrShortPalette = errors.New("palette needs at least two glyphs")

func (c Config) Validate() error {
	if c.Border == 0 {
		return errors.New("border glyph is required")
	}
	if len(c.Palette) < 2 {
		return ErrShortPalette
	}
	seen := make(map[rune]bool, len(c.Palette))
	for _, g := range c.Palette {
		switch Cell(g) {
		case Free, Vacated, OffBoard:
			return fmt.Errorf("glyph %q is reserved", g)
		}
		if g == c.Border {
			return fmt.Errorf("glyph %q collides with the border", g)
		}
		if seen[g] {
			return fmt.Errorf("duplicate glyph %q", g)
		}
		seen[g] = true
	}
	return nil
}
