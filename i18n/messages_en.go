package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Board setup
	message.SetString(lang, BoardSizePrompt, "Enter the height and width of the map, separated by a space: ")
	message.SetString(lang, BoardSizeHeight, "The height must be at least %d!")
	message.SetString(lang, BoardSizeWidth, "The width must be at least %d!")
	message.SetString(lang, BoardSizeDone, "Map size (Height: %d | Width: %d)")

	// Player setup
	message.SetString(lang, PlayerNamePrompt, "What do we call the player with the number %d?: ")
	message.SetString(lang, PlayerGlyphIntro, "Now it's time to pick a horse!")
	message.SetString(lang, PlayerGlyphList, "List of available horses:")
	message.SetString(lang, PlayerGlyphItem, "    %d - '%c'")
	message.SetString(lang, PlayerGlyphPrompt, "Enter the horse's number from the list: ")
	message.SetString(lang, PlayerGlyphBad, "You entered the wrong horse number!")
	message.SetString(lang, PlayerGlyphTaken, "The horse under that number is already taken!")
	message.SetString(lang, PlayerPlaceIntro, "All right! Time to pick a starting position for the horse!")
	message.SetString(lang, PlayerPlacePrompt, "Enter the position of the horse in the format (Number Number): ")
	message.SetString(lang, PlayerPlaceOccupied, "This point is occupied by another player!")

	// Coordinates
	message.SetString(lang, CoordsFormat, "Coordinates must be in the format (Number Number)!")
	message.SetString(lang, CoordsOffBoard, "The coordinates are off the map!")

	// Turns
	message.SetString(lang, TurnMoves, "You can move to these squares:")
	message.SetString(lang, TurnMoveItem, "    %d - %d %d")
	message.SetString(lang, TurnPrompt, "Player number %d with name %s, walk your horse! Enter the coordinates: ")
	message.SetString(lang, TurnIllegal, "Your coordinates do not comply with the rules of the game!")
	message.SetString(lang, TurnToMove, "%s to move")
	message.SetString(lang, TurnNoMoves, "No moves left.")

	// Result
	message.SetString(lang, ResultStuck, "-- %s has no steps left!!! --")
	message.SetString(lang, ResultWinner, "-- %s HAS WON!!! --")
}
