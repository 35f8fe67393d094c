package utils

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Чистые функции деривации метаданных ресурса: slug из заголовка,
// plain-text из HTML, количество слов и время чтения.

var stripPolicy = bluemonday.StrictPolicy()

// NFD-разложение + удаление комбинируемых знаков: "Résumé" -> "Resume".
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify приводит заголовок к URL-безопасному slug: нижний регистр,
// без диакритики, всё вне [a-z0-9] схлопывается в одиночные дефисы.
// Идемпотентна: Slugify(Slugify(t)) == Slugify(t).
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}
	var b strings.Builder
	hyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		default:
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// PlainText убирает всю разметку, раскрывает HTML-сущности и схлопывает
// пробельные последовательности в одиночные пробелы.
func PlainText(rawHTML string) string {
	text := html.UnescapeString(stripPolicy.Sanitize(rawHTML))
	return strings.Join(strings.Fields(text), " ")
}

// WordCount считает слова, разделённые пробельными символами.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ReadTimeMinutes — ceil(words/200), минимум 1 минута.
func ReadTimeMinutes(wordCount int) int {
	if wordCount <= 0 {
		return 1
	}
	return (wordCount + 199) / 200
}
