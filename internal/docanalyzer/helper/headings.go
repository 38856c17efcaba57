package helper

import (
	"github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
	"github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/slug"
)

// GetHeadings возвращает заголовки верхнего уровня документа с уникальными якорями.
// Заголовки с одинаковым текстом получают суффиксы -1, -2 и т.д. в порядке появления.
func GetHeadings(doc *prosemirror.Node) []Heading {
	headings := make([]Heading, 0)
	if doc == nil || doc.Type() == nil {
		return headings
	}

	ids := newHeadingIDs()
	doc.ForEach(func(node *prosemirror.Node, _ int, _ int) {
		if node.TypeName() != prosemirror.HeadingNodeName {
			return
		}
		title := node.TextContent()
		headings = append(headings, Heading{
			Title: title,
			Level: node.Attrs().GetInt("level"),
			ID:    ids.next(title),
		})
	})
	return headings
}

// headingIDs выдает якоря в пределах одного документа.
type headingIDs struct {
	// количество заголовков с данным базовым якорем
	seen map[string]int
	// уже выданные якоря
	used map[string]struct{}
}

func newHeadingIDs() *headingIDs {
	return &headingIDs{
		seen: make(map[string]int),
		used: make(map[string]struct{}),
	}
}

func (h *headingIDs) next(title string) string {
	base := slug.HeadingToSlug(title, 0)

	k := h.seen[base]
	id := slug.HeadingToSlug(title, k)
	// текст заголовка может совпасть с уже выданным якорем вида intro-1
	for h.isUsed(id) {
		k++
		id = slug.HeadingToSlug(title, k)
	}

	h.seen[base]++
	h.used[id] = struct{}{}
	return id
}

func (h *headingIDs) isUsed(id string) bool {
	_, ok := h.used[id]
	return ok
}
