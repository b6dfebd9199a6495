package retext

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// smallCaps maps lower-case Latin letters to their small-capital forms.
// Unicode has no small capital X, so x maps to itself.
var smallCaps = map[rune]rune{
	'a': 'ᴀ', 'b': 'ʙ', 'c': 'ᴄ', 'd': 'ᴅ', 'e': 'ᴇ', 'f': 'ꜰ', 'g': 'ɢ',
	'h': 'ʜ', 'i': 'ɪ', 'j': 'ᴊ', 'k': 'ᴋ', 'l': 'ʟ', 'm': 'ᴍ', 'n': 'ɴ',
	'o': 'ᴏ', 'p': 'ᴘ', 'q': 'ǫ', 'r': 'ʀ', 's': 'ꜱ', 't': 'ᴛ', 'u': 'ᴜ',
	'v': 'ᴠ', 'w': 'ᴡ', 'x': 'x', 'y': 'ʏ', 'z': 'ᴢ',
}

// ToSmallCaps lower-cases text and replaces each Latin letter with its
// small-capital form. Other runes are kept.
func ToSmallCaps(text string) string {
	lower := cases.Lower(language.Und).String(text)
	return strings.Map(func(r rune) rune {
		if sc, ok := smallCaps[r]; ok {
			return sc
		}
		return r
	}, lower)
}
