package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const errorsSrc = `package apierrors

import "net/http"

type DefinedError struct {
	Code       int
	StatusCode int
	Err        string
	RuErr      string
}

const limit = 5

var (
	ErrMalformedTree = DefinedError{Code: 1002, StatusCode: http.StatusUnprocessableEntity, Err: "malformed document tree: %s", RuErr: "Нарушена структура документа: %s"}
	ErrDefaultStatus = DefinedError{Code: 1003, Err: "document " + "is required", RuErr: "Не передан документ"}
)
`

func TestGetRows(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "apierrors.go", errorsSrc, 0)
	require.NoError(t, err)

	rows := getRows(f)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"**1002**", "422 *StatusUnprocessableEntity*", "`malformed document tree: %s`", "`Нарушена структура документа: %s`"}, rows[0])
	assert.Equal(t, "400 *StatusBadRequest*", rows[1][1])
	assert.Equal(t, "`document is required`", rows[1][2])
}

func TestWriteDocs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDocs(&buf, [][]string{{"**1**", "400 *StatusBadRequest*", "`e`", "`е`"}}))

	assert.Contains(t, buf.String(), "# Перечень кодов ошибок")
	assert.Contains(t, buf.String(), "StatusBadRequest")
}
