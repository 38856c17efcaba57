package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
	"github.com/aisa-it/docanalyzer/internal/docanalyzer/helper"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `{
	"type": "doc",
	"content": [
		{"type": "paragraph"},
		{"type": "heading", "attrs": {"level": 1}, "content": [{"type": "text", "text": "Intro"}]},
		{"type": "paragraph", "content": [
			{"type": "text", "text": "See "},
			{"type": "text", "marks": [{"type": "link", "attrs": {"href": "/api/attachments.redirect?id=123e4567-e89b-12d3-a456-426614174000"}}], "text": "file"},
			{"type": "text", "marks": [{"type": "comment", "attrs": {"id": "c1", "userId": "u1"}}], "text": " here"}
		]},
		{"type": "heading", "attrs": {"level": 2}, "content": [{"type": "text", "text": "Intro"}]},
		{"type": "taskList", "content": [
			{"type": "taskItem", "attrs": {"checked": true}, "content": [{"type": "paragraph", "content": [{"type": "text", "text": "Buy milk"}]}]},
			{"type": "taskItem", "attrs": {"checked": false}, "content": [{"type": "paragraph", "content": [{"type": "text", "text": "Call"}]}]}
		]},
		{"type": "paragraph"}
	]
}`

func parse(t *testing.T, s string) *prosemirror.Node {
	t.Helper()
	doc, err := prosemirror.ParseJSON(strings.NewReader(s), prosemirror.DefaultSchema())
	require.NoError(t, err)
	return doc
}

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation(" Headings ")
	require.NoError(t, err)
	assert.Equal(t, OpHeadings, op)

	_, err = ParseOperation("render")
	assert.True(t, errors.Is(err, ErrUnknownOperation))

	ops, err := ParseOperations("text,tasks")
	require.NoError(t, err)
	assert.Equal(t, []Operation{OpText, OpTasks}, ops)

	ops, err = ParseOperations("")
	require.NoError(t, err)
	assert.Equal(t, AllOperations(), ops)

	_, err = ParseOperations("text,,tasks")
	assert.Error(t, err)
}

func TestBuildAll(t *testing.T) {
	doc := parse(t, testDocument)

	r, err := Build(doc, nil)
	require.NoError(t, err)

	assert.Equal(t, "\nIntro\nSee file here\nIntro\nBuy milk\nCall\n", *r.Text)
	assert.False(t, *r.Empty)
	assert.Equal(t, 4, r.Trimmed.ChildCount())
	assert.Equal(t, []helper.Heading{
		{Title: "Intro", Level: 1, ID: "intro"},
		{Title: "Intro", Level: 2, ID: "intro-1"},
	}, r.Headings)
	assert.Equal(t, []helper.CommentMark{{ID: "c1", UserID: "u1", Text: " here"}}, r.Comments)
	assert.Len(t, r.Tasks, 2)
	assert.Equal(t, helper.TasksSummary{Completed: 1, Total: 2}, *r.TasksSummary)
	assert.Equal(t, []uuid.UUID{uuid.Must(uuid.FromString("123e4567-e89b-12d3-a456-426614174000"))}, r.Attachments)
	assert.Equal(t, AllOperations(), r.Operations())

	// исходный документ не изменился
	assert.Equal(t, 6, doc.ChildCount())
}

func TestBuildSelected(t *testing.T) {
	r, err := Build(parse(t, `{"type":"doc","content":[{"type":"paragraph"}]}`), nil, OpHeadings, OpEmpty)
	require.NoError(t, err)

	assert.Equal(t, []Operation{OpEmpty, OpHeadings}, r.Operations())

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"empty": true, "headings": []}`, string(raw))
}

func TestBuildNilDocument(t *testing.T) {
	r, err := Build(nil, nil)
	require.NoError(t, err)

	assert.True(t, *r.Empty)
	assert.Equal(t, "", *r.Text)
	assert.Equal(t, "doc(paragraph)", r.Trimmed.String())
	assert.Empty(t, r.Attachments)
}

func TestBuildUnknownOperation(t *testing.T) {
	_, err := Build(parse(t, testDocument), nil, Operation("render"))
	assert.True(t, errors.Is(err, ErrUnknownOperation))
}

func TestWriteMarkdown(t *testing.T) {
	r, err := Build(parse(t, testDocument), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "# Анализ документа")
	assert.Contains(t, out, "Документ пуст: нет")
	assert.Contains(t, out, "## Заголовки")
	assert.Contains(t, out, "intro-1")
	assert.Contains(t, out, "[x] Buy milk")
	assert.Contains(t, out, "[ ] Call")
	assert.Contains(t, out, "Выполнено 1 из 2")
	assert.Contains(t, out, "123e4567-e89b-12d3-a456-426614174000")
}

func TestWriteMarkdownSelected(t *testing.T) {
	r, err := Build(parse(t, `{"type":"doc","content":[{"type":"paragraph"}]}`), nil, OpComments)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "## Комментарии")
	assert.Contains(t, out, "нет комментариев")
	assert.NotContains(t, out, "## Заголовки")
}
