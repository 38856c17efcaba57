// Пакет stack_error накапливает места возникновения ошибки по мере ее передачи вверх по стеку
// и выводит их в лог вместе с контекстом запроса и позицией в документе.
package stack_error

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
	"github.com/labstack/echo/v4"
)

// Frame - место, через которое прошла ошибка.
type Frame struct {
	File string
	Line int
	Msg  string
}

func (f Frame) String() string {
	return fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Msg)
}

type TrackerError struct {
	Context map[string]any
	Frames  []Frame

	// Путь до ноды документа, на которой разбор завершился ошибкой
	TreePath string

	cause error
}

// TrackErrorStack добавляет место вызова к ошибке. Если err уже TrackerError, запись добавляется к ней.
// Для ошибок разбора документа путь до ноды и причина переносятся в TreePath и контекст.
func TrackErrorStack(err error) *TrackerError {
	var te *TrackerError
	if !errors.As(err, &te) {
		te = &TrackerError{
			Context: make(map[string]any),
			cause:   err,
		}

		var mte *prosemirror.MalformedTreeError
		if errors.As(err, &mte) {
			te.TreePath = mte.Path
			te.Context["reason"] = mte.Reason
		}
	}

	te.Frames = append(te.Frames, callerFrame(err))
	return te
}

// AddContext добавляет значение в контекст ошибки. Уже записанный ключ не перезаписывается.
func (te *TrackerError) AddContext(k string, v any) *TrackerError {
	if _, ok := te.Context[k]; !ok {
		te.Context[k] = v
	}
	return te
}

// IsClientError - ошибка вызвана присланным документом, а не сбоем сервиса.
func IsClientError(err error) bool {
	var mte *prosemirror.MalformedTreeError
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	return errors.As(err, &mte) || errors.As(err, &se) || errors.As(err, &ute)
}

// GetError выводит в лог ошибку, ее трассу и контекст. c может быть nil вне HTTP запроса.
// Ошибки в присланном документе пишутся с уровнем Warn.
func GetError(c echo.Context, err error) {
	var attrs []any

	var te *TrackerError
	if errors.As(err, &te) {
		attrs = append(attrs, slog.Any("trace", te.Trace()))
		if te.TreePath != "" {
			attrs = append(attrs, slog.String("tree_path", te.TreePath))
		}
		attrs = append(attrs, te.getAttrs()...)
		attrs = append(attrs, slog.String("err", te.Error()))
	} else {
		attrs = append(attrs, slog.String("raw_error", err.Error()))
	}

	level := slog.LevelError
	if IsClientError(err) {
		level = slog.LevelWarn
	}

	ctx := context.Background()
	if c != nil {
		ctx = c.Request().Context()
		attrs = append(attrs,
			slog.String("method", c.Request().Method),
			slog.String("url", c.Request().URL.String()))
	}

	slog.With(attrs...).Log(ctx, level, "stack error")
}

func (te *TrackerError) Error() string {
	if te.cause != nil {
		return te.cause.Error()
	}
	return "TrackerError"
}

func (te *TrackerError) Unwrap() error {
	return te.cause
}

// Trace возвращает записанные места вызова, начиная с самого глубокого.
func (te *TrackerError) Trace() []string {
	res := make([]string, 0, len(te.Frames))
	for _, f := range te.Frames {
		res = append(res, f.String())
	}
	return res
}

func (te *TrackerError) getAttrs() []any {
	res := make([]any, 0, len(te.Context))
	for _, k := range slices.Sorted(maps.Keys(te.Context)) {
		res = append(res, slog.Any(k, te.Context[k]))
	}
	return res
}

func callerFrame(err error) Frame {
	_, path, no, ok := runtime.Caller(2)
	if !ok {
		return Frame{File: "unknown", Msg: err.Error()}
	}
	_, file := filepath.Split(path)
	return Frame{File: file, Line: no, Msg: err.Error()}
}
