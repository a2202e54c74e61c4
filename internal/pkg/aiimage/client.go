package aiimage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jmk307/hellmap-api/internal/pkg/env"
)

const (
	defaultGeneratorURL = "https://image.pollinations.ai/prompt/"

	imageWidth  = 512
	imageHeight = 512
	imageModel  = "flux"
	seedSpace   = 10000
)

// fallbackImages are the stock images shown per dominant emotion when
// generation fails or the generated image does not actually load.
var fallbackImages = map[string]string{
	"SCARY":    "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=600&h=400&fit=crop&crop=center",
	"ANNOYING": "https://images.unsplash.com/photo-1534796636912-3b95b3ab5986?w=600&h=400&fit=crop&crop=center",
	"FUNNY":    "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?w=600&h=400&fit=crop&crop=center",
}

// Client builds image URLs against the pollinations generator and verifies
// them with a probe request before handing them out. The generator renders on
// first fetch, so the probe doubles as a warm-up.
type Client struct {
	GeneratorURL string

	HTTPClient *http.Client
	Rand       *rand.Rand
}

// NewClientFromEnv builds the image client from environment settings. The
// probe timeout is generous because the generator renders synchronously.
func NewClientFromEnv() *Client {
	return &Client{
		GeneratorURL: strings.TrimSpace(env.GetEnv("AIIMAGE_URL", defaultGeneratorURL)),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// BuildURL encodes the prompt into a generator URL with a random seed.
// Spaces become '+' to keep the URLs short and cache-friendly.
func (c *Client) BuildURL(prompt string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(prompt), "%20", "+")
	return fmt.Sprintf("%s%s?width=%d&height=%d&model=%s&seed=%d",
		c.GeneratorURL, encoded, imageWidth, imageHeight, imageModel, c.Rand.Intn(seedSpace))
}

// Generate builds a generator URL for the prompt and probes it. On any
// failure it returns the stock image for the dominant emotion instead of an
// error: region images are decoration, not data.
func (c *Client) Generate(ctx context.Context, prompt, dominantEmotion string) string {
	imageURL := c.BuildURL(prompt)
	if err := c.probe(ctx, imageURL); err != nil {
		return FallbackImage(dominantEmotion)
	}
	return imageURL
}

// probe fetches the image once and checks that the generator actually
// returned image bytes, not an error page.
func (c *Client) probe(ctx context.Context, imageURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return fmt.Errorf("aiimage: build probe request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("aiimage: probe failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("aiimage: probe status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("aiimage: probe content type %s", ct)
	}
	return nil
}

// FallbackImage returns the stock image for a dominant emotion.
func FallbackImage(dominantEmotion string) string {
	if u, ok := fallbackImages[dominantEmotion]; ok {
		return u
	}
	return fallbackImages["SCARY"]
}
