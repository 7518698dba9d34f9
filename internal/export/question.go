// Package export renders board questions and their answers as prompts and
// as Markdown or DOCX collections.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/dgallion1/qaboard/internal/doc"
)

// Event is the board a question was asked on.
type Event struct {
	Title string `json:"title"`
	Slug  string `json:"slug,omitempty"`
}

// Question is one board question with its stored answers. Body fields hold
// either editor documents or legacy plain strings.
type Question struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Content         doc.Content `json:"content"`
	Answer          doc.Content `json:"answer"`
	AnswerGemini    doc.Content `json:"answer_gemini"`
	AnswerGPT       doc.Content `json:"answer_gpt"`
	PrimaryTopic    string      `json:"primary_topic,omitempty"`
	SecondaryTopics []string    `json:"secondary_topics,omitempty"`
	Intent          string      `json:"intent,omitempty"`
	LikeCount       int         `json:"like_count"`
	GeminiLikeCount int         `json:"gemini_like_count"`
	GPTLikeCount    int         `json:"gpt_like_count"`
	CreatedAt       time.Time   `json:"created_at"`
	Event           *Event      `json:"event,omitempty"`
}

// HasAnswer reports whether any answer variant is stored.
func (q *Question) HasAnswer() bool {
	return !q.Answer.IsZero() || !q.AnswerGemini.IsZero() || !q.AnswerGPT.IsZero()
}

// EventTitle returns the event's title, or fallback when unknown.
func (q *Question) EventTitle(fallback string) string {
	if q.Event == nil || q.Event.Title == "" {
		return fallback
	}
	return q.Event.Title
}

// Answered filters qs down to questions with at least one answer.
func Answered(qs []Question) []Question {
	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		if q.HasAnswer() {
			out = append(out, q)
		}
	}
	return out
}

// DecodeQuestions reads a question list as JSON or YAML. Both a bare list and
// an object with a "questions" key are accepted.
func DecodeQuestions(r io.Reader) ([]Question, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] != '[' && data[0] != '{' {
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		data = bytes.TrimSpace(data)
	}

	if len(data) > 0 && data[0] == '{' {
		var wrapped struct {
			Questions []Question `json:"questions"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
		return wrapped.Questions, nil
	}
	var qs []Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return qs, nil
}
