package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/qaboard/internal/doc"
)

// Run sizes in half-points.
const (
	titleSize   = "36"
	headingSize = "28"
	sectionSize = "24"
)

// DOCX writes the question collection as a Word document with the same
// content as Markdown. Bodies are projected to text first; each blank-line
// separated block becomes one paragraph.
func DOCX(w io.Writer, qs []Question, opts Options) error {
	qs = opts.Select(qs)
	if len(qs) == 0 {
		return ErrNoQuestions
	}

	f := docx.New().WithDefaultTheme()
	f.AddParagraph().AddText("질문과 답변 모음").Bold().Size(titleSize)
	f.AddParagraph().AddText("생성일: " + FormatKorean(opts.now(), opts.Location))
	f.AddParagraph().AddText(fmt.Sprintf("총 질문 수: %d개", len(qs)))

	for i := range qs {
		q := &qs[i]
		f.AddParagraph().AddText(fmt.Sprintf("질문 %d: %s", i+1, q.Title)).Bold().Size(headingSize)
		docxField(f, "이벤트", q.EventTitle(unknownEvent))
		if tags := tagLine(q); tags != "" {
			docxField(f, "태그", tags)
		}
		docxField(f, "좋아요", likesLine(q))
		docxField(f, "작성일", createdLine(q, opts.Location))

		body := doc.ContentText(q.Content)
		if opts.Prompts {
			docxSection(f, "📝 LLM 프롬프트", 0)
			docxBody(f, AnswerPrompt(body))
		}
		docxSection(f, "질문 내용", 0)
		docxBody(f, body)

		sections := Sections(q)
		for _, s := range sections {
			docxSection(f, s.Heading, s.Likes)
			docxBody(f, s.Text)
		}
		if len(sections) == 0 {
			f.AddParagraph().AddText("답변이 없습니다.").Italic()
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

func docxField(f *docx.Docx, label, value string) {
	p := f.AddParagraph()
	p.AddText(label + ": ").Bold()
	p.AddText(value)
}

func docxSection(f *docx.Docx, heading string, likes int) {
	f.AddParagraph().AddText(heading).Bold().Size(sectionSize)
	if likes != 0 {
		docxField(f, "좋아요", fmt.Sprintf("%d개", likes))
	}
}

func docxBody(f *docx.Docx, text string) {
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.Trim(block, "\n")
		if strings.TrimSpace(block) == "" {
			continue
		}
		f.AddParagraph().AddText(block)
	}
}
