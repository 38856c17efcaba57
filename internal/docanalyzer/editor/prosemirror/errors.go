package prosemirror

import "fmt"

// MalformedTreeError - нода нарушает структурные инварианты дерева
// (нет типа, неизвестный тип, пустая текстовая нода, несогласованные размеры).
// Ошибка не обрабатывается локально и передается вызывающему без изменений.
type MalformedTreeError struct {
	// Path - путь до ноды в JSON, например content[1].content[0]
	Path   string
	Reason string
}

func (e *MalformedTreeError) Error() string {
	if e.Path == "" {
		return "malformed tree: " + e.Reason
	}
	return fmt.Sprintf("malformed tree at %s: %s", e.Path, e.Reason)
}

// withPath возвращает копию ошибки с путем, если он еще не заполнен.
func (e *MalformedTreeError) withPath(path string) *MalformedTreeError {
	if e.Path != "" || path == "" {
		return e
	}
	return &MalformedTreeError{Path: path, Reason: e.Reason}
}
