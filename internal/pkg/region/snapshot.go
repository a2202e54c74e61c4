package region

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/jmk307/hellmap-api/internal/pkg/cache"
)

const (
	snapshotKey      = "region:snapshot"
	generationKey    = "region:generation"
	snapshotTTL      = 24 * time.Hour
	snapshotMaxStale = 10 * time.Minute
)

// ErrStaleGeneration is returned when an enrichment result arrives for a
// snapshot that has since been rebuilt. The result is discarded.
var ErrStaleGeneration = errors.New("snapshot generation has moved on")

// Snapshot is the cached aggregation result the regions endpoint serves.
// Generation increases on every rebuild; asynchronous enrichment jobs carry
// the generation they were computed for and are dropped if it no longer
// matches.
type Snapshot struct {
	Generation  int64     `json:"generation"`
	GeneratedAt time.Time `json:"generated_at"`
	Buckets     []*Bucket `json:"buckets"`
}

// Stale reports whether the snapshot is old enough to rebuild.
func (s *Snapshot) Stale(now time.Time) bool {
	return now.Sub(s.GeneratedAt) > snapshotMaxStale
}

// NextGeneration bumps and returns the snapshot generation counter.
func NextGeneration() (int64, error) {
	return cache.Incr(generationKey)
}

// snapshotMu serializes snapshot writes. Rebuilds and enrichment patches both
// do a load-modify-save of the whole blob; without the lock two concurrent
// patches would drop each other's fields, and a patch racing a rebuild could
// write a stale generation back over the fresh one.
var snapshotMu sync.Mutex

// SaveSnapshot stores the snapshot in the cache.
func SaveSnapshot(s *Snapshot) error {
	snapshotMu.Lock()
	defer snapshotMu.Unlock()
	return saveSnapshot(s)
}

func saveSnapshot(s *Snapshot) error {
	data, err := sonic.Marshal(s)
	if err != nil {
		return fmt.Errorf("region: encode snapshot: %w", err)
	}
	return cache.Set(snapshotKey, data, snapshotTTL)
}

// LoadSnapshot retrieves the cached snapshot. A cache miss returns nil
// without an error; callers rebuild in that case.
func LoadSnapshot() (*Snapshot, error) {
	data, err := cache.Get(snapshotKey)
	if err != nil {
		if cache.IsMiss(err) {
			return nil, nil
		}
		return nil, err
	}
	var s Snapshot
	if err := sonic.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("region: decode snapshot: %w", err)
	}
	return &s, nil
}

// InvalidateSnapshot drops the cached snapshot so the next read rebuilds.
func InvalidateSnapshot() error {
	return cache.Delete(snapshotKey)
}

// PatchBucket writes an enrichment result (summary and image URL) into the
// cached snapshot, but only if the snapshot still has the generation the
// result was computed for. The generation check and the save happen under
// snapshotMu, so a rebuild cannot slip in between them.
func PatchBucket(generation int64, regionName, summary, imageURL string) error {
	snapshotMu.Lock()
	defer snapshotMu.Unlock()

	s, err := LoadSnapshot()
	if err != nil {
		return err
	}
	if s == nil || s.Generation != generation {
		return ErrStaleGeneration
	}
	if !patchBucket(s, regionName, summary, imageURL) {
		return fmt.Errorf("region: bucket %s not in snapshot", regionName)
	}
	return saveSnapshot(s)
}

// patchBucket sets the enrichment fields on the named bucket, leaving other
// buckets and empty fields untouched. Reports whether the bucket exists.
func patchBucket(s *Snapshot, regionName, summary, imageURL string) bool {
	for _, b := range s.Buckets {
		if b.Region != regionName {
			continue
		}
		if summary != "" {
			b.Summary = summary
		}
		if imageURL != "" {
			b.AIImageURL = imageURL
		}
		return true
	}
	return false
}
