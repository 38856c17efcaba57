package helper

import (
	"testing"

	pm "github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
	"github.com/stretchr/testify/assert"
)

func TestToPlainText(t *testing.T) {
	t.Run("blocks separated by newline", func(t *testing.T) {
		d := doc(
			h(1, "Title"),
			p("Hello ", mention("ivan"), "!"),
			schema.MustNode(pm.BulletListNodeName, nil,
				schema.MustNode(pm.ListItemNodeName, nil, p("one")),
				schema.MustNode(pm.ListItemNodeName, nil, p("two")),
			),
		)
		assert.Equal(t, "Title\nHello @ivan!\none\ntwo", ToPlainText(d, schema))
	})

	t.Run("hard break", func(t *testing.T) {
		d := doc(p("a", schema.MustNode(pm.HardBreakNodeName, nil), "b"))
		assert.Equal(t, "a\nb", ToPlainText(d, schema))
	})

	t.Run("empty paragraphs keep separators", func(t *testing.T) {
		assert.Equal(t, "a\n\nb", ToPlainText(doc(p("a"), p(), p("b")), schema))
	})

	t.Run("schema taken from node", func(t *testing.T) {
		assert.Equal(t, "@ivan", ToPlainText(doc(p(mention("ivan"))), nil))
	})

	t.Run("subtree root", func(t *testing.T) {
		assert.Equal(t, "hello", ToPlainText(schema.MustText("hello"), schema))
		assert.Equal(t, "@ivan", ToPlainText(mention("ivan"), schema))
		assert.Equal(t, "one", ToPlainText(p("one"), schema))
	})

	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, "", ToPlainText(nil, schema))
		assert.Equal(t, "", ToPlainText(&pm.Node{}, schema))
	})
}

func TestToPlainTextSerializerStopsDescent(t *testing.T) {
	nodes := pm.DefaultNodes()
	spoiler := nodes[pm.SpoilerNodeName]
	spoiler.ToPlainText = func(n *pm.Node) string {
		return "[" + n.Attrs().GetString("title") + "]"
	}
	nodes[pm.SpoilerNodeName] = spoiler
	s := pm.MustNewSchema(nodes, pm.DefaultMarks())

	d := s.MustNode(pm.DocNodeName, nil,
		s.MustNode(pm.ParagraphNodeName, nil, s.MustText("a")),
		s.MustNode(pm.SpoilerNodeName, pm.Attrs{"title": "скрыто"},
			s.MustNode(pm.ParagraphNodeName, nil, s.MustText("secret")),
		),
		s.MustNode(pm.ParagraphNodeName, nil, s.MustText("b")),
	)

	text := ToPlainText(d, s)
	assert.Equal(t, "a[скрыто]\nb", text)
	assert.NotContains(t, text, "secret")

	// без сериализатора текст спойлера выводится
	assert.Equal(t, "a\nsecret\nb", ToPlainText(d, schema))
}
