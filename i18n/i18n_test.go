package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestEveryKeyTranslated(t *testing.T) {
	for _, tag := range Supported() {
		p := Printer(tag)
		for _, key := range Keys {
			assert.NotEqual(t, key, p.Sprintf(key), "%s missing %s", tag, key)
		}
	}
}

func TestPrinterFormats(t *testing.T) {
	en := Printer(language.English)
	assert.Equal(t, "-- ann HAS WON!!! --", en.Sprintf(ResultWinner, "ann"))
	assert.Equal(t, "    2 - '.'", en.Sprintf(PlayerGlyphItem, 2, '.'))
	assert.Equal(t, "    1 - 1 2", en.Sprintf(TurnMoveItem, 1, 1, 2))

	ru := Printer(language.Russian)
	assert.Equal(t, "-- ann ВЫГРАЛ!!! --", ru.Sprintf(ResultWinner, "ann"))
	assert.Equal(t, "Размер карты (Высота: 3 | Ширина: 4)", ru.Sprintf(BoardSizeDone, 3, 4))
}

func TestResolve(t *testing.T) {
	cases := []struct {
		in  string
		out language.Tag
	}{
		{"en", language.English},
		{"en-GB", language.English},
		{"ru", language.Russian},
		{"ru-RU", language.Russian},
		{"", language.English},
		{"not a locale", language.English},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.out, Resolve(tc.in), "Resolve(%q)", tc.in)
	}
}

func TestPrinterFallback(t *testing.T) {
	p := Printer(language.Japanese)
	assert.Equal(t, "-- ann HAS WON!!! --", p.Sprintf(ResultWinner, "ann"))
}
