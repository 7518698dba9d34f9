package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dgallion1/qaboard/internal/doc"
	"github.com/dgallion1/qaboard/internal/export"
)

// Worker renders a single export job.
type Worker struct {
	stats *RenderStats
	log   *slog.Logger

	maxConcurrentRender int
}

func NewWorker(stats *RenderStats, log *slog.Logger, maxRender int) *Worker {
	if maxRender < 1 {
		maxRender = 1
	}
	return &Worker{
		stats:               stats,
		log:                 log,
		maxConcurrentRender: maxRender,
	}
}

// Process projects the job's question bodies and renders the export file.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "format", job.Format)

	// Phase 1: Project
	job.SetStatus(StatusRendering, "projecting")
	qs := job.opts.Select(job.questions)
	job.SetTotalQuestions(len(qs))
	if len(qs) == 0 {
		log.Warn("nothing to export")
		job.AddError(export.ErrNoQuestions.Error())
		job.SetStatus(StatusFailed, "projecting")
		return
	}

	projected, err := w.project(ctx, job, qs)
	if err != nil {
		log.Error("projection failed", "error", err)
		job.AddError(fmt.Sprintf("project: %s", err))
		job.SetStatus(StatusFailed, "projecting")
		return
	}

	// Phase 2: Render
	job.SetStatus(StatusRendering, "rendering")
	var buf bytes.Buffer
	start := time.Now()
	err = Render(&buf, job.Format, projected, job.opts)
	w.stats.Record(job.Format, time.Since(start))
	if err != nil {
		log.Error("render failed", "error", err)
		job.AddError(fmt.Sprintf("render: %s", err))
		job.SetStatus(StatusFailed, "rendering")
		return
	}

	job.SetOutput(buf.Bytes(), export.Filename(job.CreatedAt, string(job.Format)))
	log.Info("export complete", "questions", len(projected), "bytes", buf.Len())
}

// project flattens every document body to its text with bounded concurrency.
func (w *Worker) project(ctx context.Context, job *Job, qs []export.Question) ([]export.Question, error) {
	out := make([]export.Question, len(qs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.maxConcurrentRender)
	for i := range qs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Project(qs[i])
			job.IncrProjected()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Project returns q with document bodies replaced by their projected text.
// A document that projects to nothing is kept, so it still counts as an
// answer.
func Project(q export.Question) export.Question {
	q.Content = projectContent(q.Content)
	q.Answer = projectContent(q.Answer)
	q.AnswerGemini = projectContent(q.AnswerGemini)
	q.AnswerGPT = projectContent(q.AnswerGPT)
	return q
}

func projectContent(c doc.Content) doc.Content {
	if c.Doc == nil {
		return c
	}
	if text := doc.Text(c.Doc); text != "" {
		return doc.StringContent(text)
	}
	return c
}

// Render writes qs in format f.
func Render(w io.Writer, f Format, qs []export.Question, opts export.Options) error {
	switch f {
	case FormatDOCX:
		return export.DOCX(w, qs, opts)
	case FormatMarkdown, "":
		return export.Markdown(w, qs, opts)
	default:
		return fmt.Errorf("unsupported export format: %q", f)
	}
}
