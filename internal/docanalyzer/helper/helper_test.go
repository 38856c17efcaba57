package helper

import (
	pm "github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
)

var schema = pm.DefaultSchema()

func doc(children ...*pm.Node) *pm.Node {
	return schema.MustNode(pm.DocNodeName, nil, children...)
}

// p собирает параграф: строки превращаются в текстовые ноды, ноды добавляются как есть.
func p(content ...any) *pm.Node {
	children := make([]*pm.Node, 0, len(content))
	for _, c := range content {
		switch v := c.(type) {
		case string:
			children = append(children, schema.MustText(v))
		case *pm.Node:
			children = append(children, v)
		}
	}
	return schema.MustNode(pm.ParagraphNodeName, nil, children...)
}

func h(level int, text string) *pm.Node {
	return schema.MustNode(pm.HeadingNodeName, pm.Attrs{"level": level}, schema.MustText(text))
}

func mention(label string) *pm.Node {
	return schema.MustNode(pm.MentionNodeName, pm.Attrs{"label": label})
}

func taskList(items ...*pm.Node) *pm.Node {
	return schema.MustNode(pm.TaskListNodeName, nil, items...)
}

func taskItem(checked bool, content ...*pm.Node) *pm.Node {
	return schema.MustNode(pm.TaskItemNodeName, pm.Attrs{"checked": checked}, content...)
}

func commented(text string, ids ...string) *pm.Node {
	marks := make([]*pm.Mark, 0, len(ids))
	for _, id := range ids {
		marks = append(marks, schema.MustMark(pm.CommentMarkName, pm.Attrs{"id": id, "userId": "user-" + id}))
	}
	return schema.MustText(text, marks...)
}
