package marker

import (
	"github.com/jmk307/hellmap-api/internal/pkg/region"
)

// Emotion display constants shared by both marker kinds.
var (
	emotionColors = map[string]string{
		"SCARY":    "#FF4444",
		"ANNOYING": "#FF8800",
		"FUNNY":    "#00FF88",
	}
	defaultColor = "#00AAFF"

	emotionEmojis = map[string]string{
		"SCARY":    "😨",
		"ANNOYING": "😠",
		"FUNNY":    "😂",
	}
	emotionGlows = map[string]string{
		"SCARY":    "#ff0044",
		"ANNOYING": "#ff6600",
		"FUNNY":    "#00ff88",
	}
)

const (
	// FilterAll disables emotion filtering.
	FilterAll = "ALL"

	reportMarkerSize = 32
)

// RegionMarker is the render descriptor of one district bubble. All numbers
// are precomputed server-side so clients only draw.
type RegionMarker struct {
	Region          string   `json:"region"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	DominantEmotion string   `json:"dominantEmotion"`
	HellLevel       int      `json:"hellLevel"`
	TotalReports    int      `json:"totalReports"`
	Size            float64  `json:"size"`
	Color           string   `json:"color"`
	GlowIntensity   float64  `json:"glowIntensity"`
	PulseSpeed      float64  `json:"pulseSpeed"`
	HasAIImage      bool     `json:"hasAiImage"`
	AIImageURL      string   `json:"aiImageUrl,omitempty"`
	Keywords        []string `json:"keywords"`
}

// ReportMarker is the render descriptor of one individual report pin.
type ReportMarker struct {
	ReportID  string  `json:"reportId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Emotion   string  `json:"emotion"`
	Emoji     string  `json:"emoji"`
	Size      int     `json:"size"`
	GlowColor string  `json:"glowColor"`
	Title     string  `json:"title"`
}

// ReportPoint is the input view for report markers: a report plus its pin
// coordinates.
type ReportPoint struct {
	ReportID  string
	Emotion   string
	Title     string
	Latitude  float64
	Longitude float64
}

// ZoomFactor scales region markers with the map zoom level:
// (zoom-10)/7 clamped to [0.4, 1.3].
func ZoomFactor(zoom float64) float64 {
	f := (zoom - 10) / 7
	if f < 0.4 {
		return 0.4
	}
	if f > 1.3 {
		return 1.3
	}
	return f
}

// RegionMarkers builds one render descriptor per bucket, skipping buckets
// that fail the emotion filter or have no known map position. With the
// "기타지역" bucket having no centroid, at most 25 markers come out.
func RegionMarkers(buckets []*region.Bucket, emotionFilter string, zoom float64) []RegionMarker {
	factor := ZoomFactor(zoom)
	markers := make([]RegionMarker, 0, len(buckets))

	for _, b := range buckets {
		if !matchesFilter(b.DominantEmotion, emotionFilter) {
			continue
		}
		if b.District == nil {
			continue
		}

		hasImage := b.AIImageURL != ""
		baseSize := 30.0
		sizeStep := 0.15
		glowStep := 15.0
		if hasImage {
			baseSize = 75.0
			sizeStep = 0.25
			glowStep = 30.0
		}
		multiplier := 1 + float64(b.HellLevel-1)*sizeStep

		markers = append(markers, RegionMarker{
			Region:          b.Region,
			Latitude:        b.District.Latitude,
			Longitude:       b.District.Longitude,
			DominantEmotion: b.DominantEmotion,
			HellLevel:       b.HellLevel,
			TotalReports:    b.TotalReports,
			Size:            baseSize * multiplier * factor,
			Color:           emotionColor(b.DominantEmotion),
			GlowIntensity:   float64(b.HellLevel) * glowStep,
			PulseSpeed:      3 - float64(b.HellLevel)*0.3,
			HasAIImage:      hasImage,
			AIImageURL:      b.AIImageURL,
			Keywords:        b.Keywords,
		})
	}
	return markers
}

// ReportMarkers builds one fixed-size pin per report that passes the emotion
// filter. Filtered reports produce no marker at all.
func ReportMarkers(points []ReportPoint, emotionFilter string) []ReportMarker {
	markers := make([]ReportMarker, 0, len(points))
	for _, p := range points {
		if !matchesFilter(p.Emotion, emotionFilter) {
			continue
		}
		markers = append(markers, ReportMarker{
			ReportID:  p.ReportID,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Emotion:   p.Emotion,
			Emoji:     emotionEmojis[p.Emotion],
			Size:      reportMarkerSize,
			GlowColor: emotionGlows[p.Emotion],
			Title:     p.Title,
		})
	}
	return markers
}

func matchesFilter(emotion, filter string) bool {
	return filter == "" || filter == FilterAll || filter == emotion
}

func emotionColor(emotion string) string {
	if c, ok := emotionColors[emotion]; ok {
		return c
	}
	return defaultColor
}
