package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/qaboard/internal/export"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"Markdown", FormatMarkdown, false},
		{" docx ", FormatDOCX, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseFormat(%q)", tt.in)
			continue
		}
		if assert.NoError(t, err, "ParseFormat(%q)", tt.in) {
			assert.Equal(t, tt.want, got, "ParseFormat(%q)", tt.in)
		}
	}
}

func TestFormat_ContentType(t *testing.T) {
	assert.Equal(t, "text/markdown; charset=utf-8", FormatMarkdown.ContentType())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", FormatDOCX.ContentType())
}

func TestNewJob(t *testing.T) {
	qs := []export.Question{{ID: "q1"}}
	a := NewJob(FormatMarkdown, qs, export.Options{})
	b := NewJob(FormatDOCX, qs, export.Options{})

	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
	assert.Len(t, a.ID, 36, "expected UUID string")
	assert.Equal(t, StatusQueued, a.Status)
	assert.Equal(t, "queued", a.Phase)
	assert.False(t, a.CreatedAt.IsZero())
	assert.True(t, a.UpdatedAt.Equal(a.CreatedAt))
}

func TestJob_StateTransitions(t *testing.T) {
	job := &Job{
		ID:        "test-1",
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusRendering, "projecting"},
		{StatusRendering, "rendering"},
		{StatusCompleted, "done"},
	}

	for _, tr := range transitions {
		before := job.UpdatedAt
		// Small sleep to ensure time difference is detectable.
		time.Sleep(time.Millisecond)
		job.SetStatus(tr.status, tr.phase)

		assert.Equal(t, tr.status, job.Status)
		assert.Equal(t, tr.phase, job.Phase)
		assert.True(t, job.UpdatedAt.After(before), "UpdatedAt should advance after SetStatus(%q)", tr.phase)
	}
}

func TestJob_AddError(t *testing.T) {
	job := &Job{ID: "err-test", UpdatedAt: time.Now()}
	job.AddError("render failed")
	job.AddError("second")

	snap := job.Snapshot()
	assert.Equal(t, []string{"render failed", "second"}, snap.Progress.Errors)
}

func TestJob_ProgressCounters(t *testing.T) {
	job := &Job{ID: "incr-test", UpdatedAt: time.Now()}
	job.SetTotalQuestions(3)
	job.IncrProjected()
	job.IncrProjected()

	snap := job.Snapshot()
	assert.Equal(t, 3, snap.Progress.TotalQuestions)
	assert.Equal(t, 2, snap.Progress.QuestionsProjected)
}

func TestJob_Output(t *testing.T) {
	job := &Job{ID: "out-test", Status: StatusRendering}
	_, _, ok := job.Output()
	require.False(t, ok, "no output before completion")

	job.SetOutput([]byte("# hi"), "질문답변모음_2025-12-27.md")
	data, name, ok := job.Output()
	require.True(t, ok)
	assert.Equal(t, "# hi", string(data))
	assert.Equal(t, "질문답변모음_2025-12-27.md", name)

	snap := job.Snapshot()
	assert.Equal(t, StatusCompleted, snap.Status)
	assert.Equal(t, 4, snap.Progress.OutputBytes)
	assert.Equal(t, name, snap.Filename)
}

func TestJob_SnapshotErrorsNotNil(t *testing.T) {
	job := &Job{ID: "snap-test", UpdatedAt: time.Now()}
	snap := job.Snapshot()
	assert.NotNil(t, snap.Progress.Errors)
	assert.Empty(t, snap.Progress.Errors)
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "store-1", UpdatedAt: time.Now()}
	store.Put(job)

	got := store.Get("store-1")
	require.NotNil(t, got)
	assert.Equal(t, "store-1", got.ID)
	assert.Equal(t, 1, store.Len())
}

func TestJobStore_GetMissing(t *testing.T) {
	store := NewJobStore(time.Hour)
	assert.Nil(t, store.Get("nonexistent"))
}

func TestJobStore_TTLCleanup(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	expired := &Job{ID: "old", UpdatedAt: time.Now()}
	store.Put(expired)

	// Wait for the TTL to pass.
	time.Sleep(100 * time.Millisecond)

	fresh := &Job{ID: "new", UpdatedAt: time.Now()}
	store.Put(fresh)

	store.Cleanup()

	assert.Nil(t, store.Get("old"), "expired job should be cleaned up")
	assert.NotNil(t, store.Get("new"), "fresh job should survive cleanup")
}

func TestJobStore_CleanupEmpty(t *testing.T) {
	store := NewJobStore(time.Hour)
	assert.NotPanics(t, store.Cleanup)
}
