package region

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPatchBucketKeepsOtherBuckets(t *testing.T) {
	t.Parallel()

	s := &Snapshot{
		Generation: 3,
		Buckets: []*Bucket{
			{Region: "강남구"},
			{Region: "마포구"},
		},
	}

	assert.True(t, patchBucket(s, "강남구", "강남 요약", "https://img/gangnam"))
	assert.True(t, patchBucket(s, "마포구", "마포 요약", "https://img/mapo"))

	// the second patch must not wipe the first bucket's enrichment
	assert.Equal(t, "강남 요약", s.Buckets[0].Summary)
	assert.Equal(t, "https://img/gangnam", s.Buckets[0].AIImageURL)
	assert.Equal(t, "마포 요약", s.Buckets[1].Summary)
	assert.Equal(t, "https://img/mapo", s.Buckets[1].AIImageURL)
}

func TestPatchBucketPartialAndMissing(t *testing.T) {
	t.Parallel()

	s := &Snapshot{Buckets: []*Bucket{{Region: "송파구", Summary: "기존 요약"}}}

	// empty fields leave what is there
	assert.True(t, patchBucket(s, "송파구", "", "https://img/songpa"))
	assert.Equal(t, "기존 요약", s.Buckets[0].Summary)
	assert.Equal(t, "https://img/songpa", s.Buckets[0].AIImageURL)

	assert.False(t, patchBucket(s, "강동구", "요약", "url"))
}

func TestSnapshotStale(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"fresh", time.Minute, false},
		{"at the threshold", snapshotMaxStale, false},
		{"just past the threshold", snapshotMaxStale + time.Second, true},
		{"hours old", 3 * time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Snapshot{GeneratedAt: now.Add(-tt.age)}
			assert.Equal(t, tt.want, s.Stale(now))
		})
	}
}
