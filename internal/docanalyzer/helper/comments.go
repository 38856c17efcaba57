package helper

import "github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"

// GetComments возвращает все комментарии документа в порядке обхода.
// Каждое вхождение марки дает отдельную запись, дубликаты по id не схлопываются.
func GetComments(doc *prosemirror.Node) []CommentMark {
	comments := make([]CommentMark, 0)
	if doc == nil || doc.Type() == nil {
		return comments
	}

	doc.Descendants(func(node *prosemirror.Node, _ int, _ *prosemirror.Node, _ int) bool {
		for _, mark := range node.Marks() {
			if mark.TypeName() != prosemirror.CommentMarkName {
				continue
			}
			attrs := mark.Attrs()
			comments = append(comments, CommentMark{
				ID:     attrs.GetString("id"),
				UserID: attrs.GetString("userId"),
				Text:   node.TextContent(),
			})
		}
		return true
	})
	return comments
}
