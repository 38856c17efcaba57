// Пакет report собирает результаты анализа документа в единый отчет
// и выводит его в JSON или Markdown.
package report

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
	"github.com/aisa-it/docanalyzer/internal/docanalyzer/helper"
	"github.com/gofrs/uuid"
)

// Report - результат анализа. Заполняются только поля запрошенных операций,
// пустые списки запрошенных операций сериализуются как [].
type Report struct {
	Text         *string              `json:"text,omitzero"`
	Empty        *bool                `json:"empty,omitzero"`
	Trimmed      *prosemirror.Node    `json:"trimmed,omitzero"`
	Headings     []helper.Heading     `json:"headings,omitzero"`
	Comments     []helper.CommentMark `json:"comments,omitzero"`
	Tasks        []helper.Task        `json:"tasks,omitzero"`
	TasksSummary *helper.TasksSummary `json:"tasks_summary,omitzero"`
	Attachments  []uuid.UUID          `json:"attachments,omitzero"`
}

// Build выполняет операции над документом. Без операций выполняются все.
// Если schema не задана, используется схема документа.
// Идентификаторы вложений ищутся в JSON представлении документа, то есть в ссылках и атрибутах нод.
func Build(doc *prosemirror.Node, schema *prosemirror.Schema, ops ...Operation) (*Report, error) {
	if len(ops) == 0 {
		ops = allOperations
	}
	if schema == nil {
		schema = prosemirror.DefaultSchema()
		if doc != nil && doc.Type() != nil {
			schema = doc.Type().Schema()
		}
	}

	var r Report
	for _, op := range ops {
		switch op {
		case OpText:
			text := helper.ToPlainText(doc, schema)
			r.Text = &text
		case OpEmpty:
			empty := helper.IsEmpty(doc)
			r.Empty = &empty
		case OpTrim:
			r.Trimmed = helper.Trim(doc)
			if r.Trimmed == nil {
				r.Trimmed = helper.GetEmptyDocument(schema)
			}
		case OpHeadings:
			r.Headings = helper.GetHeadings(doc)
		case OpComments:
			r.Comments = helper.GetComments(doc)
		case OpTasks:
			r.Tasks = helper.GetTasks(doc)
			summary := helper.GetTasksSummary(doc)
			r.TasksSummary = &summary
		case OpAttachments:
			ids, err := attachmentIDs(doc)
			if err != nil {
				return nil, err
			}
			r.Attachments = ids
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
		}
	}
	return &r, nil
}

// Operations возвращает операции, результаты которых есть в отчете.
func (r *Report) Operations() []Operation {
	var ops []Operation
	add := func(ok bool, op Operation) {
		if ok && !slices.Contains(ops, op) {
			ops = append(ops, op)
		}
	}
	add(r.Text != nil, OpText)
	add(r.Empty != nil, OpEmpty)
	add(r.Trimmed != nil, OpTrim)
	add(r.Headings != nil, OpHeadings)
	add(r.Comments != nil, OpComments)
	add(r.Tasks != nil, OpTasks)
	add(r.Attachments != nil, OpAttachments)
	return ops
}

func attachmentIDs(doc *prosemirror.Node) ([]uuid.UUID, error) {
	if doc == nil || doc.Type() == nil {
		return []uuid.UUID{}, nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return helper.ParseAttachmentIDs(string(raw)), nil
}
