package summarize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		keywords []string
		count    int
		want     string
	}{
		{"no reports", nil, 0, EmptySummary},
		{"no keywords", nil, 4, "4개의 제보가 접수되었습니다."},
		{"keywords", []string{"소음", "공사"}, 7, "주요 이슈: 소음, 공사 등 7개 제보 접수"},
		{"caps at three keywords", []string{"소음", "공사", "귀신", "비둘기"}, 12, "주요 이슈: 소음, 공사, 귀신 등 12개 제보 접수"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeywordSummary(tt.keywords, tt.count))
		})
	}
}
