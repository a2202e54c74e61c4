package jobqueue

import (
	"context"
	"errors"

	"github.com/jmk307/hellmap-api/internal/pkg/aiimage"
	"github.com/jmk307/hellmap-api/internal/pkg/mediastore"
	"github.com/jmk307/hellmap-api/internal/pkg/summarize"
)

// ErrStaleJob marks a job whose result no longer applies (for example an
// enrichment computed for a rebuilt snapshot). Stale jobs complete without
// effect instead of retrying.
var ErrStaleJob = errors.New("job result is stale")

// Summarizer is the slice of the summarize client the queue needs.
type Summarizer interface {
	Summarize(ctx context.Context, contents []string) (string, error)
}

// ImageGenerator is the slice of the aiimage client the queue needs.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt, dominantEmotion string) string
}

// Deps are the external services job processors call. MediaStore may be nil
// when media storage is disabled; thumbnail jobs then fail permanently.
type Deps struct {
	Summarizer     Summarizer
	ImageGenerator ImageGenerator
	MediaStore     *mediastore.Store
}

// DefaultDeps wires the production clients from the environment.
func DefaultDeps(store *mediastore.Store) *Deps {
	return &Deps{
		Summarizer:     summarize.NewClientFromEnv(),
		ImageGenerator: aiimage.NewClientFromEnv(),
		MediaStore:     store,
	}
}
