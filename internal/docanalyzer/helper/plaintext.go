package helper

import (
	"strings"

	"github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
)

const blockSeparator = "\n"

// ToPlainText возвращает видимый текст поддерева в порядке документа. Для нод, у которых в схеме
// есть собственный сериализатор, используется он, и потомки такой ноды не обходятся.
// Текстовые блоки разделяются переводом строки. Если schema не задана, берется схема ноды.
func ToPlainText(root *prosemirror.Node, schema *prosemirror.Schema) string {
	if root == nil || root.Type() == nil {
		return ""
	}
	if schema == nil {
		schema = root.Type().Schema()
	}
	serializers := schema.PlainTextSerializers()

	// Корень не входит в обходимый диапазон, текстовую ноду и ноду с сериализатором обрабатываем сами
	if toPlainText := serializers[root.TypeName()]; toPlainText != nil {
		return toPlainText(root)
	}
	if root.IsText() {
		return root.Text()
	}
	return textBetween(root, 0, root.Content().Size(), serializers)
}

func textBetween(root *prosemirror.Node, from, to int, serializers map[string]func(*prosemirror.Node) string) string {
	var sb strings.Builder
	first := true

	root.NodesBetween(from, to, func(node *prosemirror.Node, pos int, _ *prosemirror.Node, _ int) bool {
		toPlainText := serializers[node.TypeName()]

		var nodeText string
		if toPlainText != nil {
			nodeText = toPlainText(node)
		} else if node.IsText() {
			nodeText = node.TextSlice(max(from, pos)-pos, to-pos)
		}

		if node.IsBlock() && ((node.IsLeaf() && nodeText != "") || node.IsTextblock()) {
			if first {
				first = false
			} else {
				sb.WriteString(blockSeparator)
			}
		}
		sb.WriteString(nodeText)

		return toPlainText == nil
	}, 0)

	return sb.String()
}
