package stack_error

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBase = errors.New("base error")

func parseLayer() error {
	return TrackErrorStack(errBase)
}

func analyzeLayer() error {
	if err := parseLayer(); err != nil {
		return TrackErrorStack(err)
	}
	return nil
}

func TestTrackErrorStack(t *testing.T) {
	err := analyzeLayer()

	var te *TrackerError
	require.True(t, errors.As(err, &te))
	assert.True(t, errors.Is(err, errBase))
	assert.Equal(t, "base error", err.Error())

	trace := te.Trace()
	require.Len(t, trace, 2)
	assert.Contains(t, trace[0], "error_test.go")
	assert.Contains(t, trace[0], "base error")
}

func TestAddContext(t *testing.T) {
	te := TrackErrorStack(errBase).
		AddContext("op", "trim").
		AddContext("op", "text")

	assert.Equal(t, "trim", te.Context["op"])
	assert.Len(t, te.getAttrs(), 1)
}

func TestTrackMalformedTree(t *testing.T) {
	mte := &prosemirror.MalformedTreeError{Path: "content[1].content[0]", Reason: "unknown node type \"table\""}
	err := fmt.Errorf("parse: %w", mte)

	te := TrackErrorStack(err)
	assert.Equal(t, "content[1].content[0]", te.TreePath)
	assert.Equal(t, mte.Reason, te.Context["reason"])
	assert.True(t, IsClientError(te))

	var target *prosemirror.MalformedTreeError
	assert.True(t, errors.As(te, &target))
}

func TestIsClientError(t *testing.T) {
	var syntaxErr *json.SyntaxError
	decodeErr := json.Unmarshal([]byte("{"), &struct{}{})
	require.True(t, errors.As(decodeErr, &syntaxErr))

	assert.True(t, IsClientError(fmt.Errorf("decode document json: %w", decodeErr)))
	assert.True(t, IsClientError(&prosemirror.MalformedTreeError{Reason: "empty text node"}))
	assert.False(t, IsClientError(errBase))
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestGetErrorLevel(t *testing.T) {
	t.Run("document error", func(t *testing.T) {
		buf := captureLog(t)
		GetError(nil, TrackErrorStack(&prosemirror.MalformedTreeError{Path: "content[0]", Reason: "empty text node"}))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "content[0]", entry["tree_path"])
		assert.Equal(t, "empty text node", entry["reason"])
	})

	t.Run("internal error", func(t *testing.T) {
		buf := captureLog(t)
		GetError(nil, TrackErrorStack(errBase).AddContext("operations", []string{"trim"}))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "ERROR", entry["level"])
		assert.Equal(t, "base error", entry["err"])
		assert.Len(t, entry["trace"], 1)
	})
}

func TestGetError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/documents/trim/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.NotPanics(t, func() {
		GetError(c, TrackErrorStack(errBase).AddContext("size", 10))
		GetError(nil, errBase)
	})
}
