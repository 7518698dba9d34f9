package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/qaboard/internal/export"
	"github.com/dgallion1/qaboard/internal/pipeline"
)

// handleQuestionPrompt renders one question as a clipboard prompt.
func (s *Server) handleQuestionPrompt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question *export.Question `json:"question"`
	}
	if !decodeJSON(w, r, s.cfg.MaxExportBytes, &req) {
		return
	}
	if req.Question == nil {
		jsonError(w, "question is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"markdown": export.PromptMarkdown(req.Question, s.cfg.EventTitle),
	})
}

type exportRequest struct {
	Questions []export.Question `json:"questions"`
	Format    string            `json:"format"`
	Options   export.Options    `json:"options"`
}

func (s *Server) handleCreateExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !decodeJSON(w, r, s.cfg.MaxExportBytes, &req) {
		return
	}
	format, err := pipeline.ParseFormat(req.Format)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Questions) == 0 {
		jsonError(w, "questions are required", http.StatusBadRequest)
		return
	}

	job := pipeline.NewJob(format, req.Questions, req.Options)
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"job_id":       job.ID,
		"status":       pipeline.StatusQueued,
		"format":       format,
		"poll_url":     fmt.Sprintf("/api/exports/%s", job.ID),
		"download_url": fmt.Sprintf("/api/exports/%s/download", job.ID),
	})
}

func (s *Server) handleExportStatus(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, job.Snapshot())
}

func (s *Server) handleExportDownload(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	data, filename, ok := job.Output()
	if !ok {
		jsonError(w, fmt.Sprintf("export is %s", job.Snapshot().Status), http.StatusConflict)
		return
	}
	writeFile(w, job.Format, filename, data)
}

// handleMarkdownExport renders the answered questions synchronously.
func (s *Server) handleMarkdownExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !decodeJSON(w, r, s.cfg.MaxExportBytes, &req) {
		return
	}
	opts := req.Options
	opts.AnsweredOnly = true
	if opts.EventTitle == "" {
		opts.EventTitle = s.cfg.EventTitle
	}
	if opts.Location == nil {
		opts.Location = s.cfg.Location()
	}
	now := time.Now()
	opts.Now = now

	var buf bytes.Buffer
	start := time.Now()
	err := export.Markdown(&buf, req.Questions, opts)
	s.orchestrator.Stats().Record(pipeline.FormatMarkdown, time.Since(start))
	if errors.Is(err, export.ErrNoQuestions) {
		jsonError(w, "no answered questions to export", http.StatusNotFound)
		return
	}
	if err != nil {
		s.log.Error("markdown export failed", "error", err)
		jsonError(w, "failed to export", http.StatusInternalServerError)
		return
	}
	writeFile(w, pipeline.FormatMarkdown, export.Filename(now, "md"), buf.Bytes())
}

func writeFile(w http.ResponseWriter, f pipeline.Format, filename string, data []byte) {
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", attachment(filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
