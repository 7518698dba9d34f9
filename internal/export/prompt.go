package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/dgallion1/qaboard/internal/doc"
)

// DefaultEventTitle labels prompts for questions without a known event.
const DefaultEventTitle = "2025 AI 결산"

const unansweredPlaceholder = "(아직 답변이 등록되지 않았습니다.)"

// PromptMarkdown renders a question as a clipboard-ready prompt: title,
// question body, expert answer (or a placeholder) and a source line.
func PromptMarkdown(q *Question, fallbackEvent string) string {
	if fallbackEvent == "" {
		fallbackEvent = DefaultEventTitle
	}
	answer := doc.ContentText(q.Answer)
	if answer == "" {
		answer = unansweredPlaceholder
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# 주제: %s\n\n", q.Title)
	fmt.Fprintf(&sb, "## ❓ 질문 내용\n%s\n\n", doc.ContentText(q.Content))
	fmt.Fprintf(&sb, "## 💡 전문가 답변\n%s\n\n", answer)
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "*출처: 모두의특강 %s*\n", q.EventTitle(fallbackEvent))
	return strings.TrimSpace(sb.String())
}

// AnswerPrompt wraps a question body in the instructions used to request
// answers from the chat models.
func AnswerPrompt(body string) string {
	return `당신은 기업 실무 효율화와 AI 자동화 분야의 최고 전문가입니다.
현업 실무자가 겪고 있는 아래의 구체적인 고민에 대해 솔루션을 제시해주세요.

[답변 가이드라인]
1. 원론적이거나 추상적인 이야기는 배제하고, "당장 내일 출근해서 시도해볼 수 있는" 구체적인 방법 3~4가지를 제안하세요.
2. 답변의 길이는 너무 길어지지 않게(500자 내외), 가독성 좋은 리스트 형태로 작성하세요.
3. 질문자의 상황(제한된 권한, 비개발자 등)을 충분히 고려하여 현실적인 도구(무료 툴, 노코드 등)를 추천하세요.

---
[실무자의 질문]
` + body + `
---

위 질문에 대해 전문가로서 통찰력 있고 실현 가능한 답변을 작성해주세요.`
}

// KST is the board's display zone.
var KST = time.FixedZone("KST", 9*60*60)

// FormatKorean renders t the way ko-KR locales print date-times, for
// example "2025. 12. 27. 오후 3:04:05".
func FormatKorean(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = KST
	}
	t = t.In(loc)
	period := "오전"
	hour := t.Hour()
	if hour >= 12 {
		period = "오후"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d. %d. %d. %s %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), period, hour, t.Minute(), t.Second())
}

// Filename is the download name of a Markdown export created at now.
func Filename(now time.Time, ext string) string {
	if ext == "" {
		ext = "md"
	}
	return "질문답변모음_" + now.UTC().Format("2006-01-02") + "." + ext
}
