package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jmk307/hellmap-api/app/repository"
	"github.com/jmk307/hellmap-api/internal/pkg/jobqueue"
	"github.com/jmk307/hellmap-api/internal/pkg/marker"
	"github.com/jmk307/hellmap-api/internal/pkg/region"
)

const defaultMapZoom = 11

// HandleGetRegions serves the per-district aggregates from the cached
// snapshot. A cache miss or a stale snapshot triggers a synchronous rebuild;
// summary and image arrive later via the enrichment jobs.
func HandleGetRegions(c *fiber.Ctx) error {
	snapshot, err := currentSnapshot()
	if err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to load region data")
	}

	items := make([]fiber.Map, 0, len(snapshot.Buckets))
	for _, b := range snapshot.Buckets {
		items = append(items, fiber.Map{
			"region":          b.Region,
			"totalReports":    b.TotalReports,
			"scaryCount":      b.EmotionStats.Scary,
			"annoyingCount":   b.EmotionStats.Annoying,
			"funnyCount":      b.EmotionStats.Funny,
			"dominantEmotion": b.DominantEmotion,
			"hellLevel":       b.HellLevel,
			"keywords":        b.Keywords,
			"summary":         b.Summary,
			"aiImageUrl":      b.AIImageURL,
		})
	}
	return RespondOK(c, items)
}

// HandleGetMarkers serves the precomputed marker descriptors for the map:
// one region bubble per district bucket with a known centroid and one pin per
// visible report. filter narrows both sets to one emotion; zoom scales the
// region bubbles.
func HandleGetMarkers(c *fiber.Ctx) error {
	filter := strings.ToUpper(c.Query("filter", marker.FilterAll))
	zoom, err := strconv.ParseFloat(c.Query("zoom", ""), 64)
	if err != nil || zoom <= 0 {
		zoom = defaultMapZoom
	}

	snapshot, err := currentSnapshot()
	if err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to load region data")
	}

	reports, err := repository.GetGlobalFactory().GetReportRepository().GetActive()
	if err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to load reports")
	}
	points := make([]marker.ReportPoint, 0, len(reports))
	for _, r := range reports {
		if r.Latitude == 0 && r.Longitude == 0 {
			continue
		}
		points = append(points, marker.ReportPoint{
			ReportID:  r.UUID,
			Emotion:   r.Emotion,
			Title:     r.Title,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		})
	}

	return RespondOK(c, fiber.Map{
		"regionMarkers": marker.RegionMarkers(snapshot.Buckets, filter, zoom),
		"reportMarkers": marker.ReportMarkers(points, filter),
	})
}

func currentSnapshot() (*region.Snapshot, error) {
	snapshot, err := region.LoadSnapshot()
	if err != nil {
		return nil, err
	}
	if snapshot == nil || snapshot.Stale(time.Now()) {
		return jobqueue.GetManager().RebuildSnapshot()
	}
	return snapshot, nil
}
