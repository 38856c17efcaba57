package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aisa-it/docanalyzer/internal/docanalyzer/helper"
	md "github.com/nao1215/markdown"
)

// WriteMarkdown выводит отчет в формате Markdown. Разделы выводятся только для выполненных операций.
func WriteMarkdown(w io.Writer, r *Report) error {
	m := md.NewMarkdown(w).H1("Анализ документа")

	if r.Empty != nil {
		m.PlainText(fmt.Sprintf("Документ пуст: %s", yesNo(*r.Empty)))
	}

	if r.Text != nil {
		m.H2("Текст")
		if *r.Text == "" {
			m.PlainText(md.Italic("нет текста"))
		} else {
			m.PlainText(*r.Text)
		}
	}

	if r.Trimmed != nil {
		m.H2("Документ без пустых блоков")
		m.PlainText(fmt.Sprintf("Блоков верхнего уровня: %d", r.Trimmed.ChildCount()))
	}

	if r.Headings != nil {
		m.H2("Заголовки")
		if len(r.Headings) == 0 {
			m.PlainText(md.Italic("нет заголовков"))
		} else {
			m.CustomTable(md.TableSet{
				Header: []string{"Уровень", "Заголовок", "Якорь"},
				Rows:   headingRows(r.Headings),
			}, md.TableOptions{
				AutoWrapText: false,
			})
		}
	}

	if r.Comments != nil {
		m.H2("Комментарии")
		if len(r.Comments) == 0 {
			m.PlainText(md.Italic("нет комментариев"))
		} else {
			m.CustomTable(md.TableSet{
				Header: []string{"ID", "Автор", "Текст"},
				Rows:   commentRows(r.Comments),
			}, md.TableOptions{
				AutoWrapText: false,
			})
		}
	}

	if r.Tasks != nil {
		m.H2("Задачи")
		if r.TasksSummary != nil {
			m.PlainText(fmt.Sprintf("Выполнено %d из %d", r.TasksSummary.Completed, r.TasksSummary.Total))
		}
		if len(r.Tasks) > 0 {
			set := make([]md.CheckBoxSet, 0, len(r.Tasks))
			for _, task := range r.Tasks {
				set = append(set, md.CheckBoxSet{Checked: task.Completed, Text: task.Text})
			}
			m.CheckBox(set)
		}
	}

	if r.Attachments != nil {
		m.H2("Вложения")
		if len(r.Attachments) == 0 {
			m.PlainText(md.Italic("нет вложений"))
		} else {
			ids := make([]string, 0, len(r.Attachments))
			for _, id := range r.Attachments {
				ids = append(ids, md.Code(id.String()))
			}
			m.BulletList(ids...)
		}
	}

	return m.Build()
}

func headingRows(headings []helper.Heading) [][]string {
	rows := make([][]string, 0, len(headings))
	for _, h := range headings {
		rows = append(rows, []string{strconv.Itoa(h.Level), h.Title, md.Code(h.ID)})
	}
	return rows
}

func commentRows(comments []helper.CommentMark) [][]string {
	rows := make([][]string, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, []string{md.Code(c.ID), c.UserID, c.Text})
	}
	return rows
}

func yesNo(b bool) string {
	if b {
		return "да"
	}
	return "нет"
}
