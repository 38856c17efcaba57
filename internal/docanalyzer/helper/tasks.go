package helper

import (
	"strings"

	"github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
)

// GetTasks возвращает пункты всех чек-листов документа в порядке обхода.
// Текст пункта собирается только из его прямых параграфов, вложенные списки
// попадают в результат отдельными пунктами при дальнейшем обходе.
func GetTasks(doc *prosemirror.Node) []Task {
	tasks := make([]Task, 0)
	if doc == nil || doc.Type() == nil {
		return tasks
	}

	doc.Descendants(func(node *prosemirror.Node, _ int, _ *prosemirror.Node, _ int) bool {
		// Чек-листы - блочные ноды, строчное содержимое не обходим
		if !node.IsBlock() {
			return false
		}

		if node.TypeName() == prosemirror.TaskListNodeName {
			node.ForEach(func(item *prosemirror.Node, _ int, _ int) {
				var text strings.Builder
				item.ForEach(func(child *prosemirror.Node, _ int, _ int) {
					if child.TypeName() == prosemirror.ParagraphNodeName {
						text.WriteString(child.TextContent())
					}
				})
				tasks = append(tasks, Task{
					Text:      text.String(),
					Completed: item.Attrs().GetBool("checked"),
				})
			})
		}
		return true
	})
	return tasks
}

// GetTasksSummary возвращает количество выполненных и общее количество пунктов чек-листов.
func GetTasksSummary(doc *prosemirror.Node) TasksSummary {
	var summary TasksSummary
	for _, task := range GetTasks(doc) {
		summary.Total++
		if task.Completed {
			summary.Completed++
		}
	}
	return summary
}
