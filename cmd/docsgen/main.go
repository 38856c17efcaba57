// Генерация документации об ошибках API в формате Markdown.
// Разбирает файл с определениями DefinedError и строит таблицу с кодами ошибок, HTTP кодами,
// сообщениями и переводами на русский язык.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	md "github.com/nao1215/markdown"
)

const defaultStatusName = "StatusBadRequest"

// statusCodes - HTTP коды для имен констант net/http, встречающихся в определениях ошибок.
var statusCodes = map[string]int{
	"StatusBadRequest":            http.StatusBadRequest,
	"StatusUnauthorized":          http.StatusUnauthorized,
	"StatusForbidden":             http.StatusForbidden,
	"StatusNotFound":              http.StatusNotFound,
	"StatusConflict":              http.StatusConflict,
	"StatusRequestEntityTooLarge": http.StatusRequestEntityTooLarge,
	"StatusUnsupportedMediaType":  http.StatusUnsupportedMediaType,
	"StatusUnprocessableEntity":   http.StatusUnprocessableEntity,
	"StatusTooManyRequests":       http.StatusTooManyRequests,
	"StatusInternalServerError":   http.StatusInternalServerError,
	"StatusServiceUnavailable":    http.StatusServiceUnavailable,
}

func main() {
	errorsFile := flag.String("src", "internal/docanalyzer/apierrors/apierrors.go", "Path of apierrors.go")
	outputMd := flag.String("out", "api_errors.md", "Path to output md")
	flag.Parse()

	slog.Info("Generate api errors docs", "src", *errorsFile, "out", *outputMd)

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, *errorsFile, nil, 0)
	if err != nil {
		slog.Error("Parse errors file", "err", err)
		os.Exit(1)
	}

	ff, err := os.Create(*outputMd)
	if err != nil {
		slog.Error("Create output file", "err", err)
		os.Exit(1)
	}
	defer ff.Close()

	if err := writeDocs(ff, getRows(f)); err != nil {
		slog.Error("Generate docs fail", "err", err)
		os.Exit(1)
	}
	slog.Info("Docs generated")
}

func writeDocs(w io.Writer, rows [][]string) error {
	return md.NewMarkdown(w).
		H1("Перечень кодов ошибок").
		PlainText("Данный раздел посвящен описанию возможных ошибок сервиса анализа документов.").
		CustomTable(md.TableSet{
			Header: []string{"Код", "HTTP код", "Сообщение", "Сообщение на русском"},
			Rows:   rows,
		}, md.TableOptions{
			AutoWrapText: false,
		}).Build()
}

// getRows возвращает строки таблицы для всех переменных, инициализированных составным литералом DefinedError.
func getRows(f *ast.File) [][]string {
	var rows [][]string
	ast.Inspect(f, func(n ast.Node) bool {
		spec, ok := n.(*ast.ValueSpec)
		if !ok {
			return true
		}
		for _, value := range spec.Values {
			lit, ok := value.(*ast.CompositeLit)
			if !ok || !isDefinedError(lit) {
				continue
			}
			rows = append(rows, getRow(lit))
		}
		return false
	})
	return rows
}

func isDefinedError(lit *ast.CompositeLit) bool {
	ident, ok := lit.Type.(*ast.Ident)
	return ok && ident.Name == "DefinedError"
}

func getRow(lit *ast.CompositeLit) []string {
	row := make([]string, 4)
	row[1] = statusCell(defaultStatusName)

	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		key, ok := kv.Key.(*ast.Ident)
		if !ok {
			continue
		}
		switch key.Name {
		case "Code":
			if v, ok := kv.Value.(*ast.BasicLit); ok {
				row[0] = md.Bold(v.Value)
			}
		case "StatusCode":
			if sel, ok := kv.Value.(*ast.SelectorExpr); ok {
				row[1] = statusCell(sel.Sel.Name)
			}
		case "Err":
			row[2] = md.Code(exprString(kv.Value))
		case "RuErr":
			row[3] = md.Code(exprString(kv.Value))
		}
	}
	return row
}

func statusCell(statusName string) string {
	code, ok := statusCodes[statusName]
	if !ok {
		return md.Italic(statusName)
	}
	return fmt.Sprintf("%d %s", code, md.Italic(statusName))
}

// exprString возвращает значение строкового литерала или конкатенации литералов.
func exprString(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if s, err := strconv.Unquote(e.Value); err == nil {
			return s
		}
		return strings.Trim(e.Value, "\"`")
	case *ast.BinaryExpr:
		return exprString(e.X) + exprString(e.Y)
	case *ast.ParenExpr:
		return exprString(e.X)
	}
	return ""
}
