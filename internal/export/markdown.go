package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dgallion1/qaboard/internal/doc"
)

// ErrNoQuestions is returned when there is nothing to export.
var ErrNoQuestions = errors.New("no questions to export")

// Model names shown in answer section headings.
const (
	GeminiModel = "gemini 3.0 pro"
	GPTModel    = "gpt-5.2-thinking"
)

const unknownEvent = "알 수 없음"

// Options controls what an export includes.
type Options struct {
	// Now stamps the header; zero means time.Now().
	Now time.Time `json:"-"`
	// Location for displayed timestamps; nil means KST.
	Location *time.Location `json:"-"`
	// EventTitle names the collection in the guide and front matter.
	EventTitle string `json:"-"`
	// Contact is printed in the guide's document info block when set.
	Contact string `json:"-"`

	Guide        bool `json:"guide"`
	FrontMatter  bool `json:"front_matter"`
	Prompts      bool `json:"prompts"`
	AnsweredOnly bool `json:"answered_only"`
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

func (o Options) eventTitle() string {
	if o.EventTitle == "" {
		return DefaultEventTitle
	}
	return o.EventTitle
}

// Select applies the AnsweredOnly filter.
func (o Options) Select(qs []Question) []Question {
	if o.AnsweredOnly {
		return Answered(qs)
	}
	return qs
}

// Section is one rendered body block of a question.
type Section struct {
	Heading string
	Likes   int
	Text    string
}

// Sections projects the answer variants of q in display order. A question
// without answers yields nil.
func Sections(q *Question) []Section {
	var out []Section
	if !q.Answer.IsZero() {
		out = append(out, Section{Heading: "💬 Expert Answer (전문가 답변)", Text: doc.ContentText(q.Answer)})
	}
	if !q.AnswerGemini.IsZero() {
		out = append(out, Section{
			Heading: "✨ Gemini (" + GeminiModel + ")",
			Likes:   q.GeminiLikeCount,
			Text:    doc.ContentText(q.AnswerGemini),
		})
	}
	if !q.AnswerGPT.IsZero() {
		out = append(out, Section{
			Heading: "🤖 ChatGPT (" + GPTModel + ")",
			Likes:   q.GPTLikeCount,
			Text:    doc.ContentText(q.AnswerGPT),
		})
	}
	return out
}

func likesLine(q *Question) string {
	line := fmt.Sprintf("%d개", q.LikeCount)
	if q.GeminiLikeCount != 0 || q.GPTLikeCount != 0 {
		line += fmt.Sprintf(" (Gemini: %d, GPT: %d)", q.GeminiLikeCount, q.GPTLikeCount)
	}
	return line
}

func createdLine(q *Question, loc *time.Location) string {
	if q.CreatedAt.IsZero() {
		return unknownEvent
	}
	return FormatKorean(q.CreatedAt, loc)
}

// Markdown writes the question collection as one Markdown document.
func Markdown(w io.Writer, qs []Question, opts Options) error {
	qs = opts.Select(qs)
	if len(qs) == 0 {
		return ErrNoQuestions
	}
	bw := bufio.NewWriter(w)
	now := opts.now()

	if opts.FrontMatter {
		fm, err := frontMatter(qs, opts)
		if err != nil {
			return err
		}
		bw.WriteString("---\n")
		bw.Write(fm)
		bw.WriteString("---\n\n")
	}

	bw.WriteString("# 질문과 답변 모음\n\n")
	if opts.Guide {
		writeGuide(bw, len(qs), opts)
	} else {
		fmt.Fprintf(bw, "생성일: %s\n", FormatKorean(now, opts.Location))
		fmt.Fprintf(bw, "총 질문 수: %d개\n\n", len(qs))
		bw.WriteString("---\n\n")
	}

	for i := range qs {
		writeQuestion(bw, i+1, &qs[i], opts)
	}
	return bw.Flush()
}

func writeQuestion(w *bufio.Writer, num int, q *Question, opts Options) {
	fmt.Fprintf(w, "## 질문 %d: %s\n\n", num, q.Title)
	fmt.Fprintf(w, "**이벤트:** %s\n\n", q.EventTitle(unknownEvent))
	if tags := tagLine(q); tags != "" {
		fmt.Fprintf(w, "**태그:** %s\n\n", tags)
	}
	fmt.Fprintf(w, "**좋아요:** %s\n\n", likesLine(q))
	fmt.Fprintf(w, "**작성일:** %s\n\n", createdLine(q, opts.Location))

	body := doc.ContentText(q.Content)
	if opts.Prompts {
		w.WriteString("### 📝 LLM 프롬프트\n\n")
		w.WriteString("*아래 프롬프트를 ChatGPT와 Gemini에 각각 입력하여 답변을 생성했습니다.*\n\n")
		fmt.Fprintf(w, "```\n%s\n```\n\n", AnswerPrompt(body))
		w.WriteString("---\n\n")
	}

	w.WriteString("### 질문 내용\n\n")
	w.WriteString(body + "\n\n")
	w.WriteString("---\n\n")

	sections := Sections(q)
	for _, s := range sections {
		fmt.Fprintf(w, "### %s\n\n", s.Heading)
		if s.Likes != 0 {
			fmt.Fprintf(w, "**좋아요:** %d개\n\n", s.Likes)
		}
		w.WriteString(s.Text + "\n\n")
		w.WriteString("---\n\n")
	}
	if len(sections) == 0 {
		w.WriteString("*답변이 없습니다.*\n\n")
		w.WriteString("---\n\n")
	}
	w.WriteString("\n\n")
}

func writeGuide(w *bufio.Writer, count int, opts Options) {
	event := opts.eventTitle()
	w.WriteString("## 📖 문서 소개\n\n")
	fmt.Fprintf(w, "이 문서는 **%s 질문 보드**에서 수집된 실무자들의 질문에 대해, **ChatGPT (%s)**와 **Gemini (%s)** 두 AI 모델이 각각 답변한 결과를 비교 분석할 수 있도록 정리한 자료입니다.\n\n",
		event, GPTModel, GeminiModel)
	w.WriteString(guideIntro)
	w.WriteString("---\n\n")

	w.WriteString("## 🏷️ 태그 체계\n\n")
	fmt.Fprintf(w, "이 문서의 질문들은 **총 %d개의 태그**로 분류되어 있으며, **%d개의 토픽 카테고리**와 **%d개의 의도 카테고리**로 구성됩니다.\n\n",
		len(TopicTags)+len(IntentTags), len(TopicTags), len(IntentTags))
	fmt.Fprintf(w, "### 📌 토픽 태그 (%d개)\n\n", len(TopicTags))
	writeTagList(w, TopicTags)
	fmt.Fprintf(w, "### 🎯 의도 태그 (%d개)\n\n", len(IntentTags))
	writeTagList(w, IntentTags)
	w.WriteString("각 질문은 **주제(primary_topic)**, **부주제(secondary_topics)**, **의도(intent)**로 태깅되어 있어, 특정 주제나 관심사에 따라 필터링하여 활용할 수 있습니다.\n\n")
	w.WriteString("---\n\n")

	w.WriteString(notebookGuide)
	w.WriteString("---\n\n")

	w.WriteString("## 📊 문서 정보\n\n")
	fmt.Fprintf(w, "**이벤트:** %s  \n", event)
	fmt.Fprintf(w, "**생성일:** %s  \n", FormatKorean(opts.now(), opts.Location))
	fmt.Fprintf(w, "**총 질문 수:** %d개  \n", count)
	fmt.Fprintf(w, "**답변 모델:** ChatGPT (%s), Gemini (%s)\n\n", GPTModel, GeminiModel)
	if opts.Contact != "" {
		fmt.Fprintf(w, "**문의:** %s\n\n", opts.Contact)
	}
	w.WriteString("---\n\n")
}

func writeTagList(w *bufio.Writer, tags []Tag) {
	for i, t := range tags {
		fmt.Fprintf(w, "%d. **%s** (%s) - %s\n", i+1, t.Label, t.Key, t.Description)
	}
	w.WriteString("\n")
}

const guideIntro = `각 질문마다 두 AI의 답변을 나란히 비교함으로써:
- **다양한 관점과 접근 방식**을 동시에 확인할 수 있습니다
- **모델별 특성과 강점**을 파악할 수 있습니다
- **교차 검증을 통한 인사이트**를 얻을 수 있습니다
- **실무에 바로 적용 가능한 구체적인 방법론**을 비교 선택할 수 있습니다

`

var notebookGuide = strings.Join([]string{
	"## 💡 노트북 LM 활용 가이드\n\n",
	"이 문서를 **노트북 LM**에 업로드하여 다음과 같이 활용하시기 바랍니다:\n\n",
	guideUse("1️⃣ 비교 분석 활용",
		"\"워크플로 자동화 관련 질문들을 찾아서, ChatGPT와 Gemini의 답변을 비교 분석해줘. \n두 모델의 접근 방식 차이점과 각각의 강점을 정리해줘.\"",
		"같은 질문에 대한 두 AI의 답변을 나란히 비교",
		"모델별 특성 파악 (예: ChatGPT는 실용적, Gemini는 구조적)",
		"교차 검증을 통한 신뢰도 높은 인사이트 도출"),
	guideUse("2️⃣ 주제별 탐색",
		"\"보안/개인정보 태그가 붙은 질문들을 모두 찾아서, \n두 AI가 제시한 보안 가이드라인을 비교하고 통합 정리해줘.\"",
		"특정 토픽(예: 프롬프트, 비용/ROI)에 집중한 학습",
		"주제별 베스트 프랙티스 도출",
		"실무 적용 시나리오별 답변 비교"),
	guideUse("3️⃣ 실무 적용 가이드 생성",
		"\"AI 협업 관련 질문들의 답변을 종합해서, \n우리 팀이 바로 적용할 수 있는 실무 가이드라인을 만들어줘. \nChatGPT와 Gemini의 제안을 모두 반영해서요.\"",
		"두 AI의 답변을 통합하여 실무 매뉴얼 작성",
		"팀별 맞춤형 가이드라인 개발",
		"단계별 체크리스트 및 액션 플랜 수립"),
	guideUse("4️⃣ 태그 기반 필터링",
		"\"의도가 '전략/전망'인 질문들만 찾아서, \nAI 시대 대비 전략에 대한 두 모델의 관점을 비교 분석해줘.\"",
		"의도별(howto, strategy 등) 답변 패턴 분석",
		"주제와 의도 조합으로 세밀한 탐색",
		"관심사에 맞는 질문-답변 쌍 빠르게 찾기"),
	guideUse("5️⃣ 인사이트 요약 및 트렌드 파악",
		"\"이 문서 전체를 분석해서, 실무자들이 가장 많이 궁금해하는 주제 TOP 5를 찾고, \n각 주제에 대해 ChatGPT와 Gemini가 공통적으로 강조하는 포인트를 정리해줘.\"",
		"전체 질문 트렌드 파악",
		"두 AI가 공통으로 강조하는 핵심 인사이트 도출",
		"실무자 관심사와 AI 답변 품질 간의 관계 분석"),
	"### 📝 활용 팁\n\n",
	"- **태그 활용**: \"태그: 보안/개인정보\" 또는 \"의도: 방법/가이드\"로 검색하면 관련 질문만 빠르게 찾을 수 있습니다\n",
	"- **비교 질문**: \"ChatGPT와 Gemini의 차이점은?\" 같은 질문으로 모델별 특성을 파악하세요\n",
	"- **실무 연결**: \"이 답변을 우리 회사 상황에 적용하려면?\" 같은 질문으로 구체화하세요\n",
	"- **통합 분석**: 여러 질문의 답변을 종합하여 종합 가이드라인을 만들어보세요\n\n",
}, "")

func guideUse(title, example string, points ...string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### %s\n\n", title)
	fmt.Fprintf(&sb, "**프롬프트 예시:**\n```\n%s\n```\n\n", example)
	sb.WriteString("**활용 포인트:**\n")
	for _, p := range points {
		fmt.Fprintf(&sb, "- %s\n", p)
	}
	sb.WriteString("\n")
	return sb.String()
}
