package jobqueue

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/jmk307/hellmap-api/internal/pkg/aiimage"
	"github.com/jmk307/hellmap-api/internal/pkg/region"
	"github.com/jmk307/hellmap-api/internal/pkg/summarize"
)

// processRegionEnrichmentJob computes the summary and the generated image for
// one snapshot bucket and patches them into the cached snapshot. The base
// snapshot is already being served, so a failed enrichment degrades to the
// keyword summary and the stock image instead of failing the job.
func (q *Queue) processRegionEnrichmentJob(ctx context.Context, job *Job) error {
	payload, err := RegionEnrichmentJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid region enrichment payload: %w", err)
	}

	snapshot, err := region.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snapshot == nil || snapshot.Generation != payload.Generation {
		return ErrStaleJob
	}

	var bucket *region.Bucket
	for _, b := range snapshot.Buckets {
		if b.Region == payload.Region {
			bucket = b
			break
		}
	}
	if bucket == nil {
		return ErrStaleJob
	}

	summary := q.summarizeBucket(ctx, bucket)
	imageURL := q.generateBucketImage(ctx, bucket)

	err = region.PatchBucket(payload.Generation, payload.Region, summary, imageURL)
	if errors.Is(err, region.ErrStaleGeneration) {
		return ErrStaleJob
	}
	return err
}

func (q *Queue) summarizeBucket(ctx context.Context, bucket *region.Bucket) string {
	contents := make([]string, 0, len(bucket.Reports))
	for _, r := range bucket.Reports {
		contents = append(contents, r.Content)
	}

	summary, err := q.deps.Summarizer.Summarize(ctx, contents)
	if err != nil {
		log.Warnf("[JobQueue] Summarizer unavailable for %s, using keyword summary: %v", bucket.Region, err)
		return summarize.KeywordSummary(bucket.Keywords, bucket.TotalReports)
	}
	return summary
}

func (q *Queue) generateBucketImage(ctx context.Context, bucket *region.Bucket) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var prompt string
	if len(bucket.Reports) > 0 {
		prompt = aiimage.ScenePrompt(bucket, rng)
	} else {
		prompt = aiimage.DistrictPrompt(bucket.Region, bucket.DominantEmotion, bucket.HellLevel)
	}
	return q.deps.ImageGenerator.Generate(ctx, prompt, bucket.DominantEmotion)
}
