// Command qaexport renders a question list as a Markdown or DOCX collection.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/dgallion1/qaboard/internal/config"
	"github.com/dgallion1/qaboard/internal/export"
	"github.com/dgallion1/qaboard/internal/pipeline"
)

const defaultOutputBase = "질문답변모음"

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "qaexport:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	format, err := pipeline.ParseFormat(f.format)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if f.quiet {
		level = slog.LevelError
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	qs, err := readQuestions(f.in, stdin)
	if err != nil {
		return err
	}

	opts := export.Options{
		EventTitle:   f.event,
		Contact:      f.contact,
		Location:     config.Config{TimezoneOffset: f.tzOffset}.Location(),
		Guide:        f.guide,
		FrontMatter:  f.frontMatter,
		Prompts:      f.prompts,
		AnsweredOnly: !f.all,
	}
	selected := opts.Select(qs)

	var buf bytes.Buffer
	err = pipeline.Render(&buf, format, qs, opts)
	if errors.Is(err, export.ErrNoQuestions) && !f.all {
		return fmt.Errorf("no answered questions in %d read (use --all to include unanswered)", len(qs))
	}
	if err != nil {
		return err
	}

	out := f.out
	if out == "" {
		out = defaultOutputBase + "." + string(format)
	}
	if out == "-" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	log.Info("export written", "path", out, "format", format, "questions", len(selected), "bytes", buf.Len())
	return nil
}

func readQuestions(path string, stdin io.Reader) ([]export.Question, error) {
	if path == "" || path == "-" {
		return export.DecodeQuestions(stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer fh.Close()
	return export.DecodeQuestions(fh)
}
