package report

import (
	"errors"
	"fmt"
	"strings"
)

// Operation - вид анализа документа.
type Operation string

const (
	OpText        Operation = "text"
	OpEmpty       Operation = "empty"
	OpTrim        Operation = "trim"
	OpHeadings    Operation = "headings"
	OpComments    Operation = "comments"
	OpTasks       Operation = "tasks"
	OpAttachments Operation = "attachments"
)

var ErrUnknownOperation = errors.New("unknown operation")

var allOperations = []Operation{OpText, OpEmpty, OpTrim, OpHeadings, OpComments, OpTasks, OpAttachments}

// AllOperations возвращает все операции в порядке вывода отчета.
func AllOperations() []Operation {
	return append([]Operation(nil), allOperations...)
}

// ParseOperation разбирает имя операции без учета регистра.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(s)))
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
	return op, nil
}

// ParseOperations разбирает список операций через запятую. Пустая строка означает все операции.
func ParseOperations(s string) ([]Operation, error) {
	if strings.TrimSpace(s) == "" {
		return AllOperations(), nil
	}
	var ops []Operation
	for _, part := range strings.Split(s, ",") {
		op, err := ParseOperation(part)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func (op Operation) Valid() bool {
	for _, o := range allOperations {
		if o == op {
			return true
		}
	}
	return false
}
