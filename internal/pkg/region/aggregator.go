package region

import (
	"math"
	"sort"

	"github.com/jmk307/hellmap-api/internal/pkg/district"
	"github.com/jmk307/hellmap-api/internal/pkg/keyword"
)

// Report is the slice of a report record the aggregation pipeline needs.
// Controllers map the storage model into this view before aggregating.
type Report struct {
	ReportID string
	Emotion  string
	Title    string
	Content  string
	Location string
	Likes    int
}

// EmotionStats holds the per-category counts of one district bucket.
type EmotionStats struct {
	Scary    int `json:"SCARY"`
	Annoying int `json:"ANNOYING"`
	Funny    int `json:"FUNNY"`
}

// Count returns the count for one emotion category.
func (s EmotionStats) Count(emotion string) int {
	switch emotion {
	case "SCARY":
		return s.Scary
	case "ANNOYING":
		return s.Annoying
	case "FUNNY":
		return s.Funny
	}
	return 0
}

// Total returns the sum over all categories, which always equals the
// bucket's TotalReports.
func (s EmotionStats) Total() int {
	return s.Scary + s.Annoying + s.Funny
}

// Bucket is the derived aggregate of all reports classified into one
// district. Buckets are transient: they are recomputed wholesale whenever the
// report set changes. Only Summary and AIImageURL are patched in afterwards
// by the asynchronous enrichment jobs.
type Bucket struct {
	Region          string
	District        *district.District
	TotalReports    int
	EmotionStats    EmotionStats
	DominantEmotion string
	HellLevel       int
	Keywords        []string
	Summary         string
	AIImageURL      string
	Reports         []Report
}

// Severity weights per emotion category. Fixed design constants, not a
// validated metric.
const (
	weightScary    = 1.5
	weightAnnoying = 1.2
	weightFunny    = 0.5
)

// emotionOrder is the dominant-emotion tie-break order.
var emotionOrder = []string{"SCARY", "ANNOYING", "FUNNY"}

// Aggregator buckets reports by district and derives the per-district stats.
type Aggregator struct {
	classifier district.Classifier
	extractor  keyword.Extractor
}

// NewAggregator wires the aggregation pipeline with the given classifier and
// keyword extractor.
func NewAggregator(classifier district.Classifier, extractor keyword.Extractor) *Aggregator {
	return &Aggregator{classifier: classifier, extractor: extractor}
}

// Aggregate groups reports into district buckets, computes per-emotion
// counts, the dominant emotion, the hell level and the keyword tags, and
// returns the buckets sorted by report count descending. Buckets exist only
// for districts with at least one report; every report lands in exactly one
// bucket (the OtherBucket included). Pure in-memory computation: no errors,
// an empty input just yields an empty result.
func (a *Aggregator) Aggregate(reports []Report) []*Bucket {
	buckets := make(map[string]*Bucket)
	var order []string

	for _, r := range reports {
		name := a.classifier.Classify(r.Location)
		b, ok := buckets[name]
		if !ok {
			b = &Bucket{
				Region:   name,
				District: district.ByName(name),
			}
			buckets[name] = b
			order = append(order, name)
		}
		b.Reports = append(b.Reports, r)
		b.TotalReports++
		switch r.Emotion {
		case "SCARY":
			b.EmotionStats.Scary++
		case "ANNOYING":
			b.EmotionStats.Annoying++
		case "FUNNY":
			b.EmotionStats.Funny++
		}
	}

	result := make([]*Bucket, 0, len(order))
	for _, name := range order {
		b := buckets[name]
		b.DominantEmotion = dominantEmotion(b.EmotionStats)
		b.HellLevel = HellLevel(b.EmotionStats, b.TotalReports)

		texts := make([]string, 0, len(b.Reports))
		for _, r := range b.Reports {
			texts = append(texts, r.Title+" "+r.Content)
		}
		b.Keywords = a.extractor.Extract(texts)

		result = append(result, b)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalReports > result[j].TotalReports
	})

	return result
}

// dominantEmotion returns the category with the highest count. Ties resolve
// to the earliest category in declaration order (SCARY, ANNOYING, FUNNY).
func dominantEmotion(stats EmotionStats) string {
	dominant := emotionOrder[0]
	best := stats.Count(dominant)
	for _, e := range emotionOrder[1:] {
		if stats.Count(e) > best {
			dominant = e
			best = stats.Count(e)
		}
	}
	return dominant
}

// HellLevel derives the 1-5 severity score from the weighted emotion counts:
// round((1.5*scary + 1.2*annoying + 0.5*funny) / total * 2) clamped to
// [1, 5]. Zero totals yield the floor.
func HellLevel(stats EmotionStats, total int) int {
	if total <= 0 {
		return 1
	}
	weighted := weightScary*float64(stats.Scary) +
		weightAnnoying*float64(stats.Annoying) +
		weightFunny*float64(stats.Funny)
	level := int(math.Round(weighted / float64(total) * 2))
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}
