// Сервис анализа документов редактора. Читает документ TipTap в формате JSON из файла или stdin
// и выводит отчет, либо запускает HTTP API с флагом -serve.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aisa-it/docanalyzer/internal/docanalyzer"
	"github.com/aisa-it/docanalyzer/internal/docanalyzer/config"
	"github.com/aisa-it/docanalyzer/internal/docanalyzer/editor/prosemirror"
	"github.com/aisa-it/docanalyzer/internal/docanalyzer/report"
)

var version string = "DEV"

const (
	formatJSON     = "json"
	formatMarkdown = "markdown"

	opReport = "report"
)

var errDocumentTooLarge = errors.New("document exceeds MAX_DOCUMENT_SIZE")

type options struct {
	file    string
	ops     string
	format  string
	maxSize int
}

// Пример запуска: docanalyzer -f doc.json -op headings,tasks -format markdown
func main() {
	file := flag.String("f", "", "Path to document JSON, stdin if empty")
	ops := flag.String("op", opReport, "Comma separated operations: report, text, empty, trim, headings, comments, tasks, attachments")
	format := flag.String("format", formatJSON, "Output format: json or markdown")
	serve := flag.Bool("serve", false, "Start HTTP API")
	trace := flag.Bool("trace", false, "Verbose logs")
	flag.Parse()

	if *trace {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Set prod log format
	if version != "DEV" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{})))
	}

	cfg := config.ReadConfig()
	schema := prosemirror.DefaultSchema(prosemirror.StrictMarks(cfg.SchemaStrictMarks))

	if *serve {
		PrintBanner()
		if err := docanalyzer.Server(cfg, schema, version); err != nil {
			slog.Error("Server fail", "err", err)
			os.Exit(1)
		}
		return
	}

	opts := options{
		file:    *file,
		ops:     *ops,
		format:  *format,
		maxSize: cfg.MaxDocumentSize,
	}
	if err := run(opts, schema, os.Stdin, os.Stdout); err != nil {
		slog.Error("Analyze document", "err", err)
		os.Exit(1)
	}
}

func run(opts options, schema *prosemirror.Schema, stdin io.Reader, out io.Writer) error {
	if opts.format != formatJSON && opts.format != formatMarkdown {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	var ops []report.Operation
	if opts.ops != opReport {
		var err error
		ops, err = report.ParseOperations(opts.ops)
		if err != nil {
			return err
		}
	}

	in := stdin
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	data, err := readLimited(in, opts.maxSize)
	if err != nil {
		return err
	}

	doc, err := prosemirror.ParseJSON(bytes.NewReader(data), schema)
	if err != nil {
		return err
	}
	slog.Debug("Document parsed", "size", doc.NodeSize(), "children", doc.ChildCount())

	r, err := report.Build(doc, schema, ops...)
	if err != nil {
		return err
	}

	if opts.format == formatMarkdown {
		return report.WriteMarkdown(out, r)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func readLimited(r io.Reader, limit int) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if len(data) > limit {
		return nil, errDocumentTooLarge
	}
	return data, nil
}

// PrintBanner выводит заголовок с версией при запуске сервера.
func PrintBanner() {
	banner := `
 ____              _                _
|  _ \  ___   ___ / \   _ __   __ _| |_   _ _______ _ __
| | | |/ _ \ / __/ _ \ | '_ \ / _  | | | | |_  / _ \ '__|
| |_| | (_) | (_/ ___ \| | | | (_| | | |_| |/ /  __/ |
|____/ \___/ \___/_/ \_\_| |_|\__,_|_|\__, /___\___|_| %s
Document analysis API                  |___/
----------------------------------------------------------
`
	colorReset := "\033[0m"
	colorYellow := "\033[33m"

	formattedVersion := version
	if version == "DEV" {
		formattedVersion = colorYellow + version + colorReset
	}

	fmt.Printf(banner, formattedVersion)
}
