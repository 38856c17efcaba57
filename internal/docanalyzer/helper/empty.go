package helper

import (
	"strings"

	"github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
)

// IsEmpty - документ отсутствует или его текст состоит только из пробельных символов.
// Используется встроенная конкатенация текста дерева, без сериализаторов схемы.
func IsEmpty(doc *prosemirror.Node) bool {
	if doc == nil || doc.Type() == nil {
		return true
	}
	return strings.TrimSpace(doc.TextContent()) == ""
}
