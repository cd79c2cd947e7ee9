package knights

// Player is a named piece on the board. Position is only ever changed
// by Game, after it has validated the destination.
type Player struct {
	name  string
	glyph rune
	pos   Coord
}

func NewPlayer(name string, glyph rune, pos Coord) *Player {
	return &Player{name: name, glyph: glyph, pos: pos}
}

func (p *Player) Name() string    { return p.name }
func (p *Player) Glyph() rune     { return p.glyph }
func (p *Player) Position() Coord { return p.pos }

func (p *Player) SetPosition(c Coord) {
	p.pos = c
}

func (p *Player) Clone() *Player {
	out := *p
	return &out
}
