package knights

import (
	"errors"
	"fmt"
)

type Phase int

const (
	SizingBoard Phase = iota
	CreatingPlayers
	Playing
	Finished
)

func (p Phase) String() string {
	switch p {
	case SizingBoard:
		return "sizing board"
	case CreatingPlayers:
		return "creating players"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

var (
	ErrWrongPhase     = errors.New("not allowed at this point of the game")
	ErrHeightTooSmall = errors.New("board height is below the minimum")
	ErrWidthTooSmall  = errors.New("board width is below the minimum")
	ErrNoName         = errors.New("player has no name yet")
	ErrNoGlyph        = errors.New("player has no glyph yet")
	ErrGlyphIndex     = errors.New("no glyph with that number")
	ErrGlyphTaken     = errors.New("glyph is already taken")
	ErrInvalidCoord   = errors.New("coordinates are malformed")
	ErrOffBoard       = errors.New("coordinates are off the board")
	ErrOccupied       = errors.New("position is occupied")
	ErrIllegalMove    = errors.New("illegal move")
	ErrGameOver       = errors.New("game is over")
	ErrStrayPiece     = errors.New("occupied cell does not belong to a player")
)

// GlyphChoice is an unclaimed palette entry.
type GlyphChoice struct {
	Index int
	Glyph rune
}

type draft struct {
	name  string
	named bool
	glyph int
}

// Game is a single session. It owns the board and both players and is
// the only thing that mutates them. Every command either succeeds or
// returns an error and leaves the game exactly as it was.
type Game struct {
	cfg   Config
	phase Phase
	board *Board

	players [2]*Player
	claimed []bool
	draft   draft

	active  int
	winner  int
	history []Move
}

func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette := make([]rune, len(cfg.Palette))
	copy(palette, cfg.Palette)
	cfg.Palette = palette
	return &Game{
		cfg:     cfg,
		phase:   SizingBoard,
		claimed: make([]bool, len(palette)),
		draft:   draft{glyph: -1},
		winner:  -1,
	}, nil
}

// Restore builds a game in progress from a board with both players
// already standing on it. Player i must be on a cell marked with its
// glyph, and no other cell may be occupied. active is the index of the
// player to move. The game keeps its own copies of b and players.
func Restore(cfg Config, b *Board, players [2]*Player, active int, history []Move) (*Game, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if active != 0 && active != 1 {
		return nil, errors.New("active player must be 0 or 1")
	}
	for i, p := range players {
		if p == nil {
			return nil, errors.New("both players are required")
		}
		idx := g.paletteIndex(p.Glyph())
		if idx < 0 {
			return nil, errors.New("player glyph is not in the palette")
		}
		if g.claimed[idx] {
			return nil, ErrGlyphTaken
		}
		if !b.InBounds(p.Position()) {
			return nil, ErrOffBoard
		}
		if b.At(p.Position()) != Cell(p.Glyph()) {
			return nil, errors.New("player is not on its cell")
		}
		g.claimed[idx] = true
		g.players[i] = p.Clone()
	}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			c := At(y, x)
			if !b.At(c).IsOccupied() {
				continue
			}
			if !c.Equal(players[0].Position()) && !c.Equal(players[1].Position()) {
				return nil, ErrStrayPiece
			}
		}
	}
	g.board = b.Clone()
	g.active = active
	g.history = append(g.history, history...)
	g.phase = Playing
	g.checkOver()
	return g, nil
}

func (g *Game) paletteIndex(glyph rune) int {
	for i, r := range g.cfg.Palette {
		if r == glyph {
			return i
		}
	}
	return -1
}

func (g *Game) Config() Config { return g.cfg }
func (g *Game) Phase() Phase   { return g.phase }

// Board returns the session board, or nil before it has been sized.
// Callers must treat it as read-only.
func (g *Game) Board() *Board { return g.board }

// Player returns player i (0 or 1), or nil if not yet created or i is
// out of range.
func (g *Game) Player(i int) *Player {
	if i < 0 || i >= len(g.players) {
		return nil
	}
	return g.players[i]
}

// Creating returns the index of the player currently being set up.
func (g *Game) Creating() int {
	if g.players[0] == nil {
		return 0
	}
	return 1
}

func (g *Game) ActiveIndex() int { return g.active }

func (g *Game) Active() *Player {
	return g.players[g.active]
}

func (g *Game) Opponent() *Player {
	return g.players[1-g.active]
}

// GameOver reports whether the game has finished and, if so, who won.
func (g *Game) GameOver() (over bool, winner *Player) {
	if g.phase != Finished {
		return false, nil
	}
	return true, g.players[g.winner]
}

func (g *Game) WinnerIndex() int { return g.winner }

// Ply is the number of moves played so far.
func (g *Game) Ply() int { return len(g.history) }

func (g *Game) History() []Move {
	out := make([]Move, len(g.history))
	copy(out, g.history)
	return out
}

func (g *Game) SizeBoard(height, width int) error {
	if g.phase != SizingBoard {
		return ErrWrongPhase
	}
	if height < MinSize {
		return ErrHeightTooSmall
	}
	if width < MinSize {
		return ErrWidthTooSmall
	}
	g.board = NewBoard(height, width, g.cfg.Border)
	g.phase = CreatingPlayers
	return nil
}

func (g *Game) SetName(name string) error {
	if g.phase != CreatingPlayers {
		return ErrWrongPhase
	}
	g.draft.name = name
	g.draft.named = true
	return nil
}

func (g *Game) AvailableGlyphs() []GlyphChoice {
	var out []GlyphChoice
	for i, r := range g.cfg.Palette {
		if !g.claimed[i] {
			out = append(out, GlyphChoice{Index: i, Glyph: r})
		}
	}
	return out
}

// ChooseGlyph picks palette entry index for the player being created.
func (g *Game) ChooseGlyph(index int) error {
	if g.phase != CreatingPlayers {
		return ErrWrongPhase
	}
	if !g.draft.named {
		return ErrNoName
	}
	if index < 0 || index >= len(g.cfg.Palette) {
		return ErrGlyphIndex
	}
	if g.claimed[index] {
		return ErrGlyphTaken
	}
	g.draft.glyph = index
	return nil
}

// PendingGlyph returns the glyph chosen for the player being created.
func (g *Game) PendingGlyph() (rune, bool) {
	if g.phase != CreatingPlayers || g.draft.glyph < 0 {
		return 0, false
	}
	return g.cfg.Palette[g.draft.glyph], true
}

// Place puts the player being created on its starting square and
// finishes creating it.
func (g *Game) Place(c Coord) error {
	if g.phase != CreatingPlayers {
		return ErrWrongPhase
	}
	if !g.draft.named {
		return ErrNoName
	}
	if g.draft.glyph < 0 {
		return ErrNoGlyph
	}
	if err := g.checkTarget(c); err != nil {
		return err
	}
	if !g.board.At(c).IsFree() {
		return ErrOccupied
	}

	glyph := g.cfg.Palette[g.draft.glyph]
	g.claimed[g.draft.glyph] = true
	g.players[g.Creating()] = NewPlayer(g.draft.name, glyph, c)
	g.board.Set(c, Cell(glyph))
	g.draft = draft{glyph: -1}

	if g.players[1] != nil {
		g.phase = Playing
		g.active = 0
		g.checkOver()
	}
	return nil
}

func (g *Game) checkTarget(c Coord) error {
	if !c.Valid {
		return ErrInvalidCoord
	}
	if !g.board.InBounds(c) {
		return ErrOffBoard
	}
	return nil
}

// LegalMoves returns the destinations open to the active player, or
// nil outside of play.
func (g *Game) LegalMoves() []Coord {
	if g.phase != Playing {
		return nil
	}
	return LegalMoves(g.board, g.Active(), g.Opponent(), nil)
}

// Move jumps the active player to c and passes the turn.
func (g *Game) Move(c Coord) error {
	switch g.phase {
	case Finished:
		return ErrGameOver
	case Playing:
	default:
		return ErrWrongPhase
	}
	if err := g.checkTarget(c); err != nil {
		return err
	}
	legal := false
	for _, m := range g.LegalMoves() {
		if m.Equal(c) {
			legal = true
			break
		}
	}
	if !legal {
		return ErrIllegalMove
	}

	p := g.Active()
	from := p.Position()
	g.board.Set(from, Vacated)
	p.SetPosition(c)
	g.board.Set(c, Cell(p.Glyph()))
	g.history = append(g.history, Move{Player: g.active, From: from, To: c})
	g.active = 1 - g.active
	g.checkOver()
	return nil
}

func (g *Game) checkOver() {
	if len(LegalMoves(g.board, g.Active(), g.Opponent(), nil)) == 0 {
		g.phase = Finished
		g.winner = 1 - g.active
	}
}

// Clone returns a deep copy that shares no mutable state with g.
func (g *Game) Clone() *Game {
	out := *g
	if g.board != nil {
		out.board = g.board.Clone()
	}
	for i, p := range g.players {
		if p != nil {
			out.players[i] = p.Clone()
		}
	}
	out.claimed = append([]bool(nil), g.claimed...)
	out.history = append([]Move(nil), g.history...)
	return &out
}
