// Пакет slug формирует якоря заголовков документа: знаки пунктуации и символы удаляются,
// текст транслитерируется в ASCII, приводится к нижнему регистру, пробелы заменяются дефисами.
package slug

import (
	"fmt"
	"unicode"

	gosimple "github.com/gosimple/slug"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Удаляет пунктуацию и символы («», —, эмодзи и т.п.), дефис и подчеркивание остаются
var stripPunct = runes.Remove(runes.Predicate(func(r rune) bool {
	if r == '-' || r == '_' {
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}))

// Мягкий и твердый знаки транслитерируются в апостроф, в якоре они не нужны
var ruSub = map[rune]string{
	'ь': "", 'Ь': "", 'ъ': "", 'Ъ': "",
}

// Slugify преобразует текст в якорь, пригодный для ссылки внутри документа.
func Slugify(text string) string {
	cleaned, _, err := transform.String(transform.Chain(norm.NFC, stripPunct), text)
	if err != nil {
		cleaned = text
	}
	cleaned = gosimple.SubstituteRune(cleaned, ruSub)
	return gosimple.MakeLang(cleaned, "ru")
}

// HeadingToSlug возвращает якорь заголовка. При index > 0 добавляется суффикс -index,
// чтобы различать заголовки с одинаковым текстом.
func HeadingToSlug(text string, index int) string {
	s := Slugify(text)
	if index == 0 {
		return s
	}
	return fmt.Sprintf("%s-%d", s, index)
}
