package district

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogComplete(t *testing.T) {
	t.Parallel()

	assert.Len(t, Catalog, 25)

	seen := make(map[string]struct{})
	for _, d := range Catalog {
		assert.NotEmpty(t, d.ShortName)
		assert.NotZero(t, d.Code)
		assert.InDelta(t, 37.5, d.Latitude, 0.5, "centroid of %s should be in Seoul", d.ShortName)
		assert.InDelta(t, 127.0, d.Longitude, 0.5, "centroid of %s should be in Seoul", d.ShortName)

		_, dup := seen[d.ShortName]
		assert.False(t, dup, "duplicate district %s", d.ShortName)
		seen[d.ShortName] = struct{}{}
	}
}

func TestByName(t *testing.T) {
	t.Parallel()

	d := ByName("강남구")
	require.NotNil(t, d)
	assert.Equal(t, 11680, d.Code)

	d = ByName("서울특별시 마포구")
	require.NotNil(t, d)
	assert.Equal(t, "마포구", d.ShortName)

	assert.Nil(t, ByName(OtherBucket))
	assert.Nil(t, ByName("부산광역시"))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	c := NewClassifier()

	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"full district name", "서울특별시 강남구 테헤란로 123", "강남구"},
		{"district without suffix", "서울 서초 방배동", "서초구"},
		{"landmark alias", "강남역 11번 출구 앞", "강남구"},
		{"neighborhood alias", "홍대입구역 근처 골목", "마포구"},
		{"alias after catalog miss", "이태원 세계음식거리", "용산구"},
		{"earliest scan match wins", "강남구에서 서초구로 이사", "강남구"},
		{"junggye-dong stays in nowon", "서울특별시 노원구 중계동 1번지", "노원구"},
		{"junggok-dong stays in gwangjin", "서울특별시 광진구 중곡동", "광진구"},
		{"junghwa-dong in jungnang maps to junggu", "서울특별시 중랑구 중화동", "중구"},
		{"outside seoul", "경기도 성남시 분당구", OtherBucket},
		{"unmatched address", "어딘가 모르는 곳", OtherBucket},
		{"empty address", "", OtherBucket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.address))
		})
	}
}
