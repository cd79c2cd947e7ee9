// Package i18n holds the console text of the game in every supported
// language and hands out printers for it.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. Each is registered for every supported language.
const (
	BoardSizePrompt = "board.size.prompt"
	BoardSizeHeight = "board.size.height"
	BoardSizeWidth  = "board.size.width"
	BoardSizeDone   = "board.size.done"

	PlayerNamePrompt    = "player.name.prompt"
	PlayerGlyphIntro    = "player.glyph.intro"
	PlayerGlyphList     = "player.glyph.list"
	PlayerGlyphItem     = "player.glyph.item"
	PlayerGlyphPrompt   = "player.glyph.prompt"
	PlayerGlyphBad      = "player.glyph.bad"
	PlayerGlyphTaken    = "player.glyph.taken"
	PlayerPlaceIntro    = "player.place.intro"
	PlayerPlacePrompt   = "player.place.prompt"
	PlayerPlaceOccupied = "player.place.occupied"

	CoordsFormat   = "coords.format"
	CoordsOffBoard = "coords.offboard"

	TurnMoves    = "turn.moves"
	TurnMoveItem = "turn.move.item"
	TurnPrompt   = "turn.prompt"
	TurnIllegal  = "turn.illegal"
	TurnToMove   = "turn.to_move"
	TurnNoMoves  = "turn.no_moves"

	ResultStuck  = "result.stuck"
	ResultWinner = "result.winner"
)

// Keys lists every message key.
var Keys = []string{
	BoardSizePrompt, BoardSizeHeight, BoardSizeWidth, BoardSizeDone,
	PlayerNamePrompt, PlayerGlyphIntro, PlayerGlyphList, PlayerGlyphItem,
	PlayerGlyphPrompt, PlayerGlyphBad, PlayerGlyphTaken,
	PlayerPlaceIntro, PlayerPlacePrompt, PlayerPlaceOccupied,
	CoordsFormat, CoordsOffBoard,
	TurnMoves, TurnMoveItem, TurnPrompt, TurnIllegal, TurnToMove, TurnNoMoves,
	ResultStuck, ResultWinner,
}

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

// Supported returns the languages with a full catalog. The first is
// the default.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

func Default() language.Tag {
	return supported[0]
}

// Resolve picks the supported language closest to locale, a BCP 47
// tag such as "ru" or "en-GB". Unknown or malformed locales resolve to
// the default.
func Resolve(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return Default()
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default()
	}
	return supported[idx]
}

// Printer returns a message printer for the supported language closest
// to tag.
func Printer(tag language.Tag) *message.Printer {
	_, idx, _ := matcher.Match(tag)
	return message.NewPrinter(supported[idx])
}
