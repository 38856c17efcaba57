package prosemirror

import "strings"

// Имена типов нод редактора
const (
	DocNodeName              = "doc"
	TextNodeName             = "text"
	ParagraphNodeName        = "paragraph"
	HeadingNodeName          = "heading"
	HardBreakNodeName        = "hardBreak"
	BlockquoteNodeName       = "blockquote"
	CodeBlockNodeName        = "codeBlock"
	BulletListNodeName       = "bulletList"
	OrderedListNodeName      = "orderedList"
	ListItemNodeName         = "listItem"
	TaskListNodeName         = "taskList"
	TaskItemNodeName         = "taskItem"
	ImageNodeName            = "image"
	ImageResizeNodeName      = "imageResize"
	MentionNodeName          = "mention"
	DateNodeName             = "date-node"
	IssueLinkMentionNodeName = "issueLinkMention"
	TableNodeName            = "table"
	TableRowNodeName         = "tableRow"
	TableCellNodeName        = "tableCell"
	TableHeaderNodeName      = "tableHeader"
	SpoilerNodeName          = "spoiler"
	InfoBlockNodeName        = "info-block"
	HorizontalRuleNodeName   = "horizontalRule"
)

// Имена типов марок редактора
const (
	BoldMarkName        = "bold"
	ItalicMarkName      = "italic"
	UnderlineMarkName   = "underline"
	StrikeMarkName      = "strike"
	SuperscriptMarkName = "superscript"
	SubscriptMarkName   = "subscript"
	TextStyleMarkName   = "textStyle"
	LinkMarkName        = "link"
	HighlightMarkName   = "highlight"
	CommentMarkName     = "comment"
)

// DefaultNodes возвращает описания нод редактора TipTap.
func DefaultNodes() map[string]NodeSpec {
	return map[string]NodeSpec{
		DocNodeName:        {},
		TextNodeName:       {Inline: true},
		ParagraphNodeName:  {InlineContent: true},
		HeadingNodeName:    {InlineContent: true, Attrs: Attrs{"level": 1}},
		CodeBlockNodeName:  {InlineContent: true},
		BlockquoteNodeName: {},
		HardBreakNodeName: {
			Inline:      true,
			Leaf:        true,
			LeafText:    hardBreakText,
			ToPlainText: hardBreakText,
		},
		BulletListNodeName:  {},
		OrderedListNodeName: {Attrs: Attrs{"start": 1}},
		ListItemNodeName:    {},
		TaskListNodeName:    {},
		TaskItemNodeName:    {Attrs: Attrs{"checked": false}},
		ImageNodeName:       {Inline: true, Leaf: true},
		ImageResizeNodeName: {Inline: true, Leaf: true},
		MentionNodeName: {
			Inline:      true,
			Leaf:        true,
			LeafText:    mentionText,
			ToPlainText: mentionText,
		},
		DateNodeName: {
			Inline:      true,
			Leaf:        true,
			LeafText:    dateText,
			ToPlainText: dateText,
		},
		IssueLinkMentionNodeName: {
			Inline:      true,
			Leaf:        true,
			LeafText:    issueLinkText,
			ToPlainText: issueLinkText,
		},
		TableNodeName:          {},
		TableRowNodeName:       {},
		TableCellNodeName:      {Attrs: Attrs{"colspan": 1, "rowspan": 1}},
		TableHeaderNodeName:    {Attrs: Attrs{"colspan": 1, "rowspan": 1}},
		SpoilerNodeName:        {Attrs: Attrs{"title": "", "collapsed": false}},
		InfoBlockNodeName:      {Attrs: Attrs{"title": ""}},
		HorizontalRuleNodeName: {Leaf: true},
	}
}

// DefaultMarks возвращает описания марок редактора TipTap.
func DefaultMarks() map[string]MarkSpec {
	return map[string]MarkSpec{
		BoldMarkName:        {},
		ItalicMarkName:      {},
		UnderlineMarkName:   {},
		StrikeMarkName:      {},
		SuperscriptMarkName: {},
		SubscriptMarkName:   {},
		TextStyleMarkName:   {},
		LinkMarkName:        {Attrs: Attrs{"href": ""}},
		HighlightMarkName:   {},
		CommentMarkName:     {Attrs: Attrs{"id": "", "userId": ""}},
	}
}

// DefaultSchema - схема редактора TipTap, используемая по умолчанию.
func DefaultSchema(opts ...SchemaOption) *Schema {
	return MustNewSchema(DefaultNodes(), DefaultMarks(), opts...)
}

func hardBreakText(*Node) string {
	return "\n"
}

func mentionText(n *Node) string {
	return "@" + n.attrs.GetString("label")
}

func dateText(n *Node) string {
	return n.attrs.GetString("date")
}

// issueLinkText выводит исходную ссылку, а при ее отсутствии идентификатор задачи вида PROJ-123.
func issueLinkText(n *Node) string {
	if u := n.attrs.GetString("originalUrl"); u != "" {
		return u
	}
	parts := make([]string, 0, 2)
	for _, key := range []string{"projectIdentifier", "currentIssueId"} {
		if v := n.attrs.GetString(key); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, "-")
}
