package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/dgallion1/qaboard/internal/doc"
	"github.com/dgallion1/qaboard/internal/imageresize"
	"github.com/dgallion1/qaboard/internal/parser"
)

// handleDocumentText projects a stored body field to plain text.
func (s *Server) handleDocumentText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content doc.Content `json:"content"`
	}
	if !decodeJSON(w, r, s.cfg.MaxUploadBytes, &req) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": doc.ContentText(req.Content)})
}

// handleDocumentImport converts an uploaded file into an editor document.
func (s *Server) handleDocumentImport(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	p, err := parser.ForFile(filename, parser.Options{PDFFallbackPdftotext: s.cfg.PDFFallbackPdftotext})
	if err != nil {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	root, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		s.log.Warn("import failed", "filename", filename, "error", err)
		jsonError(w, "parse: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"filename": filename,
		"document": root,
		"images":   len(root.Images()),
	})
}

// handleListImages reports the position and size of every image node.
func (s *Server) handleListImages(w http.ResponseWriter, r *http.Request) {
	var root doc.Node
	if !decodeJSON(w, r, s.cfg.MaxUploadBytes, &root) {
		return
	}
	images := root.Images()
	if images == nil {
		images = []doc.ImageRef{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": images})
}

type resizeRequest struct {
	Document *doc.Node `json:"document"`
	Pos      *int      `json:"pos"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
}

// handleResizeImage commits an image size the way a finished drag does.
// A position that no longer holds an image leaves the document unchanged.
func (s *Server) handleResizeImage(w http.ResponseWriter, r *http.Request) {
	var req resizeRequest
	if !decodeJSON(w, r, s.cfg.MaxUploadBytes, &req) {
		return
	}
	if req.Document == nil {
		jsonError(w, "document is required", http.StatusBadRequest)
		return
	}
	if req.Pos == nil {
		jsonError(w, "pos is required", http.StatusBadRequest)
		return
	}

	size, ok := imageresize.Apply(req.Document, *req.Pos, req.Width, req.Height)
	if !ok {
		s.log.Debug("resize skipped", "pos", *req.Pos)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"document":  req.Document,
		"width":     size.Width,
		"height":    size.Height,
		"committed": ok,
	})
}
