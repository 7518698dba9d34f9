package export

import "strings"

// Tag is one entry of the question classification taxonomy.
type Tag struct {
	Key         string
	Label       string
	Description string
}

// TopicTags lists the topic taxonomy in display order.
var TopicTags = []Tag{
	{"getting_started", "시작/입문", "입문/일반 활용/시작"},
	{"workflow_automation", "워크플로/자동화", "실무 적용/자동화/워크플로"},
	{"prompting", "프롬프트", "프롬프트/질문법"},
	{"tools_models", "툴/모델", "툴/모델 선택·비교·연동"},
	{"accuracy_verification", "정확도/검증", "정확도/환각/검증"},
	{"security_privacy", "보안/개인정보", "보안/개인정보/사내정책"},
	{"copyright_ethics", "저작권/윤리", "저작권/윤리/표절/출처"},
	{"cost_roi", "비용/ROI", "비용/구독/ROI"},
	{"trends_learning_career", "트랜드/러닝/커리어", "트렌드/학습/미래·커리어"},
	{"none", "없음", "무응답/의미없음"},
}

// IntentTags lists the intent taxonomy in display order.
var IntentTags = []Tag{
	{"howto", "방법/가이드", "방법/가이드 요청"},
	{"recommend", "추천/비교", "추천/비교/선택"},
	{"troubleshoot", "문제/해결", "문제/불편/장애"},
	{"explain", "설명/이해", "개념/원리 이해"},
	{"strategy", "전략/전망", "전략/전망/의사결정"},
	{"other", "기타", "애매함"},
}

const (
	noTopic     = "none"
	otherIntent = "other"
)

func findTag(tags []Tag, key string) (Tag, bool) {
	for _, t := range tags {
		if t.Key == key {
			return t, true
		}
	}
	return Tag{}, false
}

// ValidTopic reports whether key is a known topic tag.
func ValidTopic(key string) bool {
	_, ok := findTag(TopicTags, key)
	return ok
}

// ValidIntent reports whether key is a known intent tag.
func ValidIntent(key string) bool {
	_, ok := findTag(IntentTags, key)
	return ok
}

var compoundTags = map[string][]string{
	"trends_learning_career": {"트랜드", "러닝", "커리어"},
	"getting_started":        {"시작", "입문"},
	"workflow_automation":    {"워크플로", "자동화"},
	"accuracy_verification":  {"정확도", "검증"},
	"security_privacy":       {"보안", "개인정보"},
	"copyright_ethics":       {"저작권", "윤리"},
	"cost_roi":               {"비용", "ROI"},
	"tools_models":           {"툴", "모델"},
	"explain":                {"설명", "이해"},
	"howto":                  {"방법", "가이드"},
	"recommend":              {"추천", "비교"},
	"troubleshoot":           {"문제", "해결"},
	"strategy":               {"전략", "전망"},
}

var tagWords = map[string]string{
	"trends":       "트랜드",
	"learning":     "러닝",
	"career":       "커리어",
	"getting":      "시작",
	"started":      "입문",
	"workflow":     "워크플로",
	"automation":   "자동화",
	"prompting":    "프롬프트",
	"tools":        "툴",
	"models":       "모델",
	"accuracy":     "정확도",
	"verification": "검증",
	"security":     "보안",
	"privacy":      "개인정보",
	"copyright":    "저작권",
	"ethics":       "윤리",
	"cost":         "비용",
	"roi":          "ROI",
}

// SplitCompoundTag breaks a tag key into display words, e.g.
// "trends_learning_career" -> 트랜드, 러닝, 커리어. Unknown keys are split on
// underscores with known words translated; keys without underscores are
// returned as is.
func SplitCompoundTag(tag string) []string {
	if words, ok := compoundTags[tag]; ok {
		return append([]string(nil), words...)
	}
	if !strings.Contains(tag, "_") {
		return []string{tag}
	}
	parts := strings.Split(tag, "_")
	for i, p := range parts {
		if w, ok := tagWords[strings.ToLower(p)]; ok {
			parts[i] = w
		}
	}
	return parts
}

// tagLine renders the classification of q, or "" when nothing is worth showing.
func tagLine(q *Question) string {
	var tags []string
	if q.PrimaryTopic != "" && q.PrimaryTopic != noTopic {
		tags = append(tags, "주제: "+q.PrimaryTopic)
	}
	var secondary []string
	for _, t := range q.SecondaryTopics {
		if t != noTopic && t != q.PrimaryTopic {
			secondary = append(secondary, t)
		}
	}
	if len(secondary) > 0 {
		tags = append(tags, "부주제: "+strings.Join(secondary, ", "))
	}
	if q.Intent != "" && q.Intent != otherIntent {
		tags = append(tags, "의도: "+q.Intent)
	}
	return strings.Join(tags, " | ")
}
