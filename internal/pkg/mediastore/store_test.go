package mediastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigIsEnabled(t *testing.T) {
	t.Parallel()

	assert.False(t, (&Config{}).IsEnabled())
	assert.False(t, (&Config{Bucket: "hellmap-media"}).IsEnabled())
	assert.True(t, (&Config{Bucket: "hellmap-media", AccessKeyID: "key"}).IsEnabled())
}

func TestPublicURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{
			name:   "cdn base url wins",
			config: Config{PublicBaseURL: "https://cdn.hellmap.shop/", Bucket: "hellmap-media", EndpointURL: "https://minio.local:9000"},
			want:   "https://cdn.hellmap.shop/reports/abc/original.jpg",
		},
		{
			name:   "custom endpoint",
			config: Config{EndpointURL: "https://minio.local:9000/", Bucket: "hellmap-media"},
			want:   "https://minio.local:9000/hellmap-media/reports/abc/original.jpg",
		},
		{
			name:   "plain aws",
			config: Config{Bucket: "hellmap-media", Region: "ap-northeast-2"},
			want:   "https://hellmap-media.s3.ap-northeast-2.amazonaws.com/reports/abc/original.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Store{config: &tt.config}
			assert.Equal(t, tt.want, s.PublicURL("reports/abc/original.jpg"))
		})
	}
}

func TestObjectKeyFromURL(t *testing.T) {
	t.Parallel()

	s := &Store{config: &Config{
		Bucket:        "hellmap-media",
		Region:        "ap-northeast-2",
		PublicBaseURL: "https://cdn.hellmap.shop",
	}}

	assert.Equal(t, "reports/abc/original.jpg",
		s.ObjectKeyFromURL("https://cdn.hellmap.shop/reports/abc/original.jpg"))
	assert.Equal(t, "reports/abc/original_thumb.jpg",
		s.ObjectKeyFromURL("https://hellmap-media.s3.ap-northeast-2.amazonaws.com/reports/abc/original_thumb.jpg"))
	assert.Empty(t, s.ObjectKeyFromURL("https://images.unsplash.com/photo-123"),
		"foreign URLs are not ours to delete")
}

func TestPublicURLRoundTrip(t *testing.T) {
	t.Parallel()

	s := &Store{config: &Config{Bucket: "hellmap-media", Region: "ap-northeast-2"}}

	key := "reports/9f2e1a34/original.png"
	assert.Equal(t, key, s.ObjectKeyFromURL(s.PublicURL(key)))
}
