package jobqueue

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/jmk307/hellmap-api/app/models"
	"github.com/jmk307/hellmap-api/internal/pkg/database"
)

const (
	thumbnailWidth   = 400
	thumbnailQuality = 80
)

// processMediaThumbnailJob downsizes one uploaded report image and stores the
// result next to the original. The feed serves ThumbURL when present, so the
// original stays untouched.
func (q *Queue) processMediaThumbnailJob(ctx context.Context, job *Job) error {
	payload, err := MediaThumbnailJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid media thumbnail payload: %w", err)
	}
	if q.deps.MediaStore == nil {
		return fmt.Errorf("media storage is disabled")
	}

	data, err := q.deps.MediaStore.Download(ctx, payload.ObjectKey)
	if err != nil {
		return fmt.Errorf("download original: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode original: %w", err)
	}

	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}

	thumbKey := thumbnailKey(payload.ObjectKey)
	thumbURL, err := q.deps.MediaStore.Upload(ctx, thumbKey, buf.Bytes(), "image/jpeg")
	if err != nil {
		return fmt.Errorf("upload thumbnail: %w", err)
	}

	result := database.GetDB().Model(&models.Report{}).
		Where("id = ?", payload.ReportID).
		Update("thumb_url", thumbURL)
	if result.Error != nil && result.Error != gorm.ErrRecordNotFound {
		return fmt.Errorf("store thumbnail url: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Report was deleted while the job was queued; drop the thumbnail
		log.Warnf("[JobQueue] Report %s gone, removing orphan thumbnail", payload.ReportUUID)
		_ = q.deps.MediaStore.Delete(ctx, thumbKey)
		return nil
	}

	return nil
}

// thumbnailKey derives the thumbnail object key from the original's key:
// reports/<uuid>/image.png -> reports/<uuid>/image_thumb.jpg
func thumbnailKey(objectKey string) string {
	ext := filepath.Ext(objectKey)
	return strings.TrimSuffix(objectKey, ext) + "_thumb.jpg"
}
