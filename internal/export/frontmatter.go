package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/goccy/go-yaml"
)

// TagCount is how many exported questions carry a tag as primary topic.
type TagCount struct {
	Tag   string `yaml:"tag"`
	Count int    `yaml:"count"`
}

// FrontMatter is the YAML header of a Markdown export.
type FrontMatter struct {
	Title         string     `yaml:"title"`
	Event         string     `yaml:"event"`
	GeneratedAt   string     `yaml:"generated_at"`
	QuestionCount int        `yaml:"question_count"`
	AnsweredCount int        `yaml:"answered_count"`
	Models        []string   `yaml:"models"`
	Events        []string   `yaml:"events,omitempty"`
	Topics        []TagCount `yaml:"topics,omitempty"`
}

// BuildFrontMatter summarizes qs for the export header.
func BuildFrontMatter(qs []Question, opts Options) FrontMatter {
	fm := FrontMatter{
		Title:         "질문과 답변 모음",
		Event:         opts.eventTitle(),
		GeneratedAt:   opts.now().UTC().Format(time.RFC3339),
		QuestionCount: len(qs),
		Models:        []string{"ChatGPT (" + GPTModel + ")", "Gemini (" + GeminiModel + ")"},
	}

	seen := map[string]bool{}
	topics := map[string]int{}
	for i := range qs {
		q := &qs[i]
		if q.HasAnswer() {
			fm.AnsweredCount++
		}
		if q.Event != nil && q.Event.Title != "" && !seen[q.Event.Title] {
			seen[q.Event.Title] = true
			fm.Events = append(fm.Events, q.Event.Title)
		}
		if q.PrimaryTopic != "" && q.PrimaryTopic != noTopic {
			topics[q.PrimaryTopic]++
		}
	}
	for tag, n := range topics {
		fm.Topics = append(fm.Topics, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(fm.Topics, func(i, j int) bool {
		if fm.Topics[i].Count != fm.Topics[j].Count {
			return fm.Topics[i].Count > fm.Topics[j].Count
		}
		return fm.Topics[i].Tag < fm.Topics[j].Tag
	})
	return fm
}

func frontMatter(qs []Question, opts Options) ([]byte, error) {
	data, err := yaml.Marshal(BuildFrontMatter(qs, opts))
	if err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}
	return data, nil
}
