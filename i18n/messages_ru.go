package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Russian

	message.SetString(lang, BoardSizePrompt, "Введите высоту и ширину карты через пробел: ")
	message.SetString(lang, BoardSizeHeight, "Высота должна быть не меньше %d!")
	message.SetString(lang, BoardSizeWidth, "Ширина должна быть не меньше %d!")
	message.SetString(lang, BoardSizeDone, "Размер карты (Высота: %d | Ширина: %d)")

	message.SetString(lang, PlayerNamePrompt, "Как будем звать игрока под номером %d?: ")
	message.SetString(lang, PlayerGlyphIntro, "Теперь время выбрать коня!")
	message.SetString(lang, PlayerGlyphList, "Вот список доступных коней:")
	message.SetString(lang, PlayerGlyphItem, "    %d - '%c'")
	message.SetString(lang, PlayerGlyphPrompt, "Введи номер коня из списка: ")
	message.SetString(lang, PlayerGlyphBad, "Вы ввели неправильный номер коня!")
	message.SetString(lang, PlayerGlyphTaken, "Конь под этим номером уже занят!")
	message.SetString(lang, PlayerPlaceIntro, "Отлично! Время выбрать начальную позицию коня!")
	message.SetString(lang, PlayerPlacePrompt, "Введи позицию коня в формате (Число Число): ")
	message.SetString(lang, PlayerPlaceOccupied, "Эта точка занята другим игроком!")

	message.SetString(lang, CoordsFormat, "Координаты должны быть в формате (Число Число)!")
	message.SetString(lang, CoordsOffBoard, "Координаты вышли за границы карты!")

	message.SetString(lang, TurnMoves, "Вам доступны вот такие шаги:")
	message.SetString(lang, TurnMoveItem, "    %d - %d %d")
	message.SetString(lang, TurnPrompt, "Игрок под номером %d с именем %s, ходи своим конём! Введи координаты: ")
	message.SetString(lang, TurnIllegal, "Ваши координаты не соответствуют правилам игры!")
	message.SetString(lang, TurnToMove, "Ходит %s")
	message.SetString(lang, TurnNoMoves, "Ходов не осталось.")

	message.SetString(lang, ResultStuck, "-- У %s не осталось шагов!!! --")
	message.SetString(lang, ResultWinner, "-- %s ВЫГРАЛ!!! --")
}
