package pipeline

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dgallion1/qaboard/internal/export"
)

// JobStatus represents the state of an export job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusRendering JobStatus = "rendering"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// Format is the output document format of an export.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatDOCX     Format = "docx"
)

// ParseFormat accepts "md", "markdown" or "docx"; empty means Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "markdown":
		return FormatMarkdown, nil
	case "docx":
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("unsupported export format: %q", s)
	}
}

// ContentType is the MIME type served for downloads.
func (f Format) ContentType() string {
	if f == FormatDOCX {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "text/markdown; charset=utf-8"
}

// Job tracks the state of a single export.
type Job struct {
	mu sync.Mutex

	ID     string    `json:"job_id"`
	Format Format    `json:"format"`
	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	questions []export.Question
	opts      export.Options
	output    []byte
	filename  string
	errors    []string
}

// Progress tracks processing progress.
type Progress struct {
	TotalQuestions     int      `json:"total_questions"`
	QuestionsProjected int      `json:"questions_projected"`
	OutputBytes        int      `json:"output_bytes"`
	Errors             []string `json:"errors"`
}

// NewJob creates a queued export job for qs.
func NewJob(format Format, qs []export.Question, opts export.Options) *Job {
	now := time.Now()
	return &Job{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Format:    format,
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
		questions: qs,
		opts:      opts,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Len returns the number of tracked jobs.
func (s *JobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.updatedAt()) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

func (j *Job) updatedAt() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.UpdatedAt
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// IncrProjected atomically increments the projected question count.
func (j *Job) IncrProjected() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.QuestionsProjected++
	j.UpdatedAt = time.Now()
}

// SetTotalQuestions records how many questions the export covers.
func (j *Job) SetTotalQuestions(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.TotalQuestions = n
	j.UpdatedAt = time.Now()
}

// SetOutput stores the rendered file and marks the job completed.
func (j *Job) SetOutput(data []byte, filename string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.output = data
	j.filename = filename
	j.Progress.OutputBytes = len(data)
	j.Status = StatusCompleted
	j.Phase = "done"
	j.UpdatedAt = time.Now()
}

// Output returns the rendered file once the job has completed.
func (j *Job) Output() (data []byte, filename string, ok bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.Status != StatusCompleted {
		return nil, "", false
	}
	return j.output, j.filename, true
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID        string    `json:"job_id"`
	Format    Format    `json:"format"`
	Status    JobStatus `json:"status"`
	Phase     string    `json:"phase"`
	Filename  string    `json:"filename,omitempty"`
	Progress  Progress  `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := append([]string{}, j.Progress.Errors...)
	return JobSnapshot{
		ID:       j.ID,
		Format:   j.Format,
		Status:   j.Status,
		Phase:    j.Phase,
		Filename: j.filename,
		Progress: Progress{
			TotalQuestions:     j.Progress.TotalQuestions,
			QuestionsProjected: j.Progress.QuestionsProjected,
			OutputBytes:        j.Progress.OutputBytes,
			Errors:             errs,
		},
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}
