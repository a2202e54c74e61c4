package aiimage

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(generatorURL string) *Client {
	return &Client{
		GeneratorURL: generatorURL,
		HTTPClient:   http.DefaultClient,
		Rand:         rand.New(rand.NewSource(1)),
	}
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	c := newTestClient("https://generator.test/prompt/")
	u := c.BuildURL("Seoul Gangnam district, dark alley")

	assert.True(t, strings.HasPrefix(u, "https://generator.test/prompt/Seoul+Gangnam+district%2C+dark+alley?"), u)
	assert.Contains(t, u, "width=512")
	assert.Contains(t, u, "height=512")
	assert.Contains(t, u, "model=flux")
	assert.Regexp(t, `seed=\d{1,4}$`, u)
}

func TestBuildURLSeedsDiffer(t *testing.T) {
	t.Parallel()

	c := newTestClient("https://generator.test/prompt/")

	seen := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		seen[c.BuildURL("same prompt")] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "repeated builds should vary the seed")
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte{0xFF, 0xD8, 0xFF})
	}))
	defer server.Close()

	c := newTestClient(server.URL + "/prompt/")
	got := c.Generate(context.Background(), "a calm street scene", "SCARY")
	assert.True(t, strings.HasPrefix(got, server.URL), "a healthy probe should keep the generated URL")
}

func TestGenerateFallsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "generator error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "error page instead of image",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.Write([]byte("<html>quota exceeded</html>"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			c := newTestClient(server.URL + "/prompt/")

			got := c.Generate(context.Background(), "anything", "ANNOYING")
			assert.Equal(t, FallbackImage("ANNOYING"), got)
		})
	}
}

func TestFallbackImage(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, FallbackImage("SCARY"))
	assert.NotEqual(t, FallbackImage("SCARY"), FallbackImage("FUNNY"))
	assert.Equal(t, FallbackImage("SCARY"), FallbackImage("UNKNOWN"))

	for _, emotion := range []string{"SCARY", "ANNOYING", "FUNNY"} {
		u := FallbackImage(emotion)
		assert.True(t, strings.HasPrefix(u, "https://images.unsplash.com/"), u)
		assert.Contains(t, u, "w=600&h=400")
	}
}
