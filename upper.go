package retext

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToUpper returns text with full Unicode upper-case mapping applied,
// so "ß" becomes "SS".
func ToUpper(text string) string {
	return cases.Upper(language.Und).String(text)
}
