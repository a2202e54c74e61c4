package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	e := NewExtractor()

	tests := []struct {
		name  string
		texts []string
		want  []string
	}{
		{
			name:  "frequency order",
			texts: []string{"지하철 지하철 지하철 버스 버스 택시"},
			want:  []string{"지하철", "버스", "택시"},
		},
		{
			name:  "counts across texts",
			texts: []string{"소음 때문에 힘들다", "소음 신고했다", "소음 여전하다"},
			want:  []string{"소음", "때문에", "힘들다", "신고했다", "여전하다"},
		},
		{
			name:  "stopwords dropped",
			texts: []string{"진짜 너무 완전 개무섭 귀신 나왔다"},
			want:  []string{"귀신", "나왔다"},
		},
		{
			name:  "single syllables ignored",
			texts: []string{"집 앞 길 공사장 소음"},
			want:  []string{"공사장", "소음"},
		},
		{
			name:  "latin and digits ignored",
			texts: []string{"CCTV 2대 고장 골목길"},
			want:  []string{"고장", "골목길"},
		},
		{
			name:  "empty input",
			texts: nil,
			want:  nil,
		},
		{
			name:  "stopwords only",
			texts: []string{"진짜 그냥 너무"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.texts)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCapsAtTopN(t *testing.T) {
	t.Parallel()

	e := NewExtractor()
	got := e.Extract([]string{"하나 둘셋 넷다섯 여섯일곱 여덟아홉 열하나 열둘셋"})
	assert.Len(t, got, TopN)
}

func TestExtractTieKeepsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	e := NewExtractor()
	got := e.Extract([]string{"골목 가로등", "가로등 골목"})
	assert.Equal(t, []string{"골목", "가로등"}, got)
}
