package helper

import (
	"strings"

	"github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
)

// GetEmptyDocument возвращает пустой документ: doc с одним пустым параграфом.
func GetEmptyDocument(schema *prosemirror.Schema) *prosemirror.Node {
	paragraph := schema.MustNode(prosemirror.ParagraphNodeName, nil)
	return schema.MustNode(prosemirror.DocNodeName, nil, paragraph)
}

// Trim удаляет пустые блоки верхнего уровня в начале и в конце документа и возвращает новый документ.
// Документ из одного блока возвращается без изменений. Если пусты все блоки, возвращается пустой документ.
func Trim(doc *prosemirror.Node) *prosemirror.Node {
	if doc == nil || doc.Type() == nil || doc.ChildCount() <= 1 {
		return doc
	}
	schema := doc.Type().Schema()

	start := 0
	for i := 0; i < doc.ChildCount(); i++ {
		child := doc.Child(i)
		if !isBlank(child, schema) {
			break
		}
		start += child.NodeSize()
	}

	end := doc.Content().Size()
	for i := doc.ChildCount() - 1; i >= 0; i-- {
		child := doc.Child(i)
		if !isBlank(child, schema) {
			break
		}
		end -= child.NodeSize()
	}

	if start >= end {
		return GetEmptyDocument(schema)
	}
	return doc.Cut(start, end)
}

func isBlank(node *prosemirror.Node, schema *prosemirror.Schema) bool {
	return strings.TrimSpace(ToPlainText(node, schema)) == ""
}
