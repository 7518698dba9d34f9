package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCompoundTag(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"trends_learning_career", []string{"트랜드", "러닝", "커리어"}},
		{"cost_roi", []string{"비용", "ROI"}},
		{"howto", []string{"방법", "가이드"}},
		{"prompting", []string{"prompting"}},
		{"none", []string{"none"}},
		{"privacy_first", []string{"개인정보", "first"}},
		{"Security_Models", []string{"보안", "모델"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitCompoundTag(tt.in), tt.in)
	}
}

func TestSplitCompoundTag_ReturnsCopy(t *testing.T) {
	got := SplitCompoundTag("cost_roi")
	got[0] = "changed"
	assert.Equal(t, []string{"비용", "ROI"}, SplitCompoundTag("cost_roi"))
}

func TestValidTags(t *testing.T) {
	assert.Len(t, TopicTags, 10)
	assert.Len(t, IntentTags, 6)
	assert.True(t, ValidTopic("security_privacy"))
	assert.True(t, ValidTopic("none"))
	assert.False(t, ValidTopic("howto"))
	assert.True(t, ValidIntent("other"))
	assert.False(t, ValidIntent("prompting"))
}

func TestTagLine(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want string
	}{
		{"empty", Question{}, ""},
		{"all filtered", Question{PrimaryTopic: "none", SecondaryTopics: []string{"none"}, Intent: "other"}, ""},
		{
			"secondary drops primary",
			Question{PrimaryTopic: "prompting", SecondaryTopics: []string{"none", "prompting", "cost_roi", "tools_models"}, Intent: "howto"},
			"주제: prompting | 부주제: cost_roi, tools_models | 의도: howto",
		},
		{"intent only", Question{Intent: "explain"}, "의도: explain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tagLine(&tt.q), tt.name)
	}
}
