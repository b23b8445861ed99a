package contracts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskCategory_Ordering(t *testing.T) {
	// 위험 선호 오름차순이 곧 enum 순서
	assert.True(t, Stable < StableSeeking)
	assert.True(t, StableSeeking < Neutral)
	assert.True(t, Neutral < Aggressive)
	assert.True(t, Aggressive < Offensive)
}

func TestParseRiskCategory(t *testing.T) {
	tests := []struct {
		input string
		want  RiskCategory
	}{
		{"stable", Stable},
		{"안정형", Stable},
		{"stable-seeking", StableSeeking},
		{"안정추구형", StableSeeking},
		{"neutral", Neutral},
		{"위험중립형", Neutral},
		{"aggressive", Aggressive},
		{"적극투자형", Aggressive},
		{"offensive", Offensive},
		{"공격투자형", Offensive},
	}

	for _, tt := range tests {
		got, err := ParseRiskCategory(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := ParseRiskCategory("yolo")
	assert.Error(t, err)
}

func TestRiskCategory_JSONRoundTrip(t *testing.T) {
	for _, cat := range []RiskCategory{Stable, StableSeeking, Neutral, Aggressive, Offensive} {
		data, err := json.Marshal(cat)
		require.NoError(t, err)

		var back RiskCategory
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, cat, back)
	}

	// 한글명 입력도 허용
	var cat RiskCategory
	require.NoError(t, json.Unmarshal([]byte(`"공격투자형"`), &cat))
	assert.Equal(t, Offensive, cat)
}

func TestRiskCategory_DisplayNames(t *testing.T) {
	assert.Equal(t, "안정형", Stable.String())
	assert.Equal(t, "공격투자형", Offensive.String())

	// 정의 밖 값은 중립 취급
	assert.Equal(t, "위험중립형", RiskCategory(99).String())
	assert.False(t, RiskCategory(99).IsValid())
}
