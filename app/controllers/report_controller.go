package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/jmk307/hellmap-api/app/models"
	"github.com/jmk307/hellmap-api/app/repository"
	"github.com/jmk307/hellmap-api/internal/pkg/jobqueue"
	"github.com/jmk307/hellmap-api/internal/pkg/mediastore"
	"github.com/jmk307/hellmap-api/internal/pkg/timefmt"
	"github.com/jmk307/hellmap-api/internal/pkg/upload"
	"github.com/jmk307/hellmap-api/internal/pkg/usercontext"
)

var mediaStore *mediastore.Store

// SetMediaStore hands the configured media store to the report handlers.
// A nil store disables attachments but keeps report submission working.
func SetMediaStore(s *mediastore.Store) {
	mediaStore = s
}

type reportRequestDto struct {
	Emotion    string  `json:"emotion"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Address    string  `json:"address"`
	RegionCode int     `json:"regionCode"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// reportResponse shapes one feed entry. Title carries the emotion slang
// prefix, timeAgo is pre-formatted server-side.
func reportResponse(report *models.Report, viewerID uint) fiber.Map {
	likes := len(report.Likes)
	isLike := false
	for _, l := range report.Likes {
		if l.UserID == viewerID {
			isLike = true
			break
		}
	}

	return fiber.Map{
		"reportId":  report.UUID,
		"emotion":   report.Emotion,
		"title":     models.PrefixedTitle(report.Emotion, report.Title),
		"content":   report.Content,
		"location":  report.Location,
		"latitude":  report.Latitude,
		"longitude": report.Longitude,
		"timeAgo":   timefmt.Ago(report.CreatedAt, time.Now()),
		"likes":     likes,
		"isLike":    isLike,
		"isHot":     likes >= models.HotLikeThreshold,
		"imageUrl":  report.ImageURL,
		"thumbUrl":  report.ThumbURL,
		"videoUrl":  report.VideoURL,
		"author":    report.User.Nickname,
	}
}

// HandleGetReports returns the feed: all non-deleted reports, newest first.
// An optional emotion query narrows to one category.
func HandleGetReports(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetReportRepository()

	var (
		reports []models.Report
		err     error
	)
	if emotion := strings.ToUpper(c.Query("emotion")); emotion != "" && emotion != "ALL" {
		if !models.ValidEmotion(emotion) {
			return RespondError(c, fiber.StatusBadRequest, "emotion must be SCARY, ANNOYING or FUNNY")
		}
		reports, err = repo.GetActiveByEmotion(emotion)
	} else {
		reports, err = repo.GetActive()
	}
	if err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to load reports")
	}

	viewerID := usercontext.GetUserID(c)
	items := make([]fiber.Map, 0, len(reports))
	for i := range reports {
		items = append(items, reportResponse(&reports[i], viewerID))
	}
	return RespondOK(c, items)
}

// HandleCreateReport accepts the multipart submission: a JSON part named
// reportRequestDto plus an optional imageFile attachment (image or video).
func HandleCreateReport(c *fiber.Ctx) error {
	var dto reportRequestDto
	if err := sonic.Unmarshal([]byte(c.FormValue("reportRequestDto")), &dto); err != nil {
		return RespondError(c, fiber.StatusBadRequest, "reportRequestDto part is missing or malformed")
	}

	report := &models.Report{
		UserID:     usercontext.GetUserID(c),
		Emotion:    strings.ToUpper(strings.TrimSpace(dto.Emotion)),
		Title:      strings.TrimSpace(dto.Title),
		Content:    strings.TrimSpace(dto.Content),
		Location:   strings.TrimSpace(dto.Address),
		RegionCode: dto.RegionCode,
		Latitude:   dto.Latitude,
		Longitude:  dto.Longitude,
	}
	if !models.ValidEmotion(report.Emotion) {
		return RespondError(c, fiber.StatusBadRequest, "emotion must be SCARY, ANNOYING or FUNNY")
	}
	if !models.InKoreaBounds(report.Latitude, report.Longitude) {
		return RespondError(c, fiber.StatusBadRequest, "coordinates must be inside Korea")
	}
	if err := report.Validate(); err != nil {
		return RespondError(c, fiber.StatusBadRequest, "title, content and address are required")
	}

	repo := repository.GetGlobalFactory().GetReportRepository()
	if err := repo.Create(report); err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to create report")
	}

	if file, err := c.FormFile("imageFile"); err == nil && file != nil {
		if status, err := attachMedia(c, report, file); err != nil {
			return RespondError(c, status, err.Error())
		}
		if err := repo.Update(report); err != nil {
			return RespondError(c, fiber.StatusInternalServerError, "failed to store media")
		}
	}

	refreshRegions()

	fresh, err := repo.GetByID(report.ID)
	if err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to load report")
	}
	return RespondCreated(c, reportResponse(fresh, report.UserID))
}

// HandleUpdateReport replaces a report's fields via the same multipart shape
// as creation, plus a keepExistingMedia flag. Owner only.
func HandleUpdateReport(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetReportRepository()
	report, err := repo.GetByUUID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RespondError(c, fiber.StatusNotFound, "report not found")
		}
		return RespondError(c, fiber.StatusInternalServerError, "failed to load report")
	}
	if report.UserID != usercontext.GetUserID(c) {
		return RespondError(c, fiber.StatusForbidden, "only the author can edit a report")
	}

	var dto reportRequestDto
	if err := sonic.Unmarshal([]byte(c.FormValue("reportUpdateRequestDto")), &dto); err != nil {
		return RespondError(c, fiber.StatusBadRequest, "reportUpdateRequestDto part is missing or malformed")
	}

	report.Emotion = strings.ToUpper(strings.TrimSpace(dto.Emotion))
	report.Title = strings.TrimSpace(dto.Title)
	report.Content = strings.TrimSpace(dto.Content)
	report.Location = strings.TrimSpace(dto.Address)
	report.RegionCode = dto.RegionCode
	report.Latitude = dto.Latitude
	report.Longitude = dto.Longitude
	if !models.ValidEmotion(report.Emotion) {
		return RespondError(c, fiber.StatusBadRequest, "emotion must be SCARY, ANNOYING or FUNNY")
	}
	if !models.InKoreaBounds(report.Latitude, report.Longitude) {
		return RespondError(c, fiber.StatusBadRequest, "coordinates must be inside Korea")
	}
	if err := report.Validate(); err != nil {
		return RespondError(c, fiber.StatusBadRequest, "title, content and address are required")
	}

	keepMedia := c.FormValue("keepExistingMedia", "true") == "true"
	file, fileErr := c.FormFile("imageFile")
	hasNewFile := fileErr == nil && file != nil

	if !keepMedia || hasNewFile {
		dropMedia(report)
	}
	if hasNewFile {
		if status, err := attachMedia(c, report, file); err != nil {
			return RespondError(c, status, err.Error())
		}
	}

	if err := repo.Update(report); err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to update report")
	}

	refreshRegions()

	fresh, err := repo.GetByID(report.ID)
	if err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to load report")
	}
	return RespondOK(c, reportResponse(fresh, report.UserID))
}

type reportPatchRequest struct {
	Emotion   *string `json:"emotion"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	IsDeleted *bool   `json:"isDeleted"`
}

// HandlePatchReport applies a partial update. isDeleted:true soft-deletes;
// the row stays so likes and history survive. Owner only.
func HandlePatchReport(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetReportRepository()
	report, err := repo.GetByUUID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RespondError(c, fiber.StatusNotFound, "report not found")
		}
		return RespondError(c, fiber.StatusInternalServerError, "failed to load report")
	}
	if report.UserID != usercontext.GetUserID(c) {
		return RespondError(c, fiber.StatusForbidden, "only the author can edit a report")
	}

	var patch reportPatchRequest
	if err := c.BodyParser(&patch); err != nil {
		return RespondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if patch.Emotion != nil {
		emotion := strings.ToUpper(strings.TrimSpace(*patch.Emotion))
		if !models.ValidEmotion(emotion) {
			return RespondError(c, fiber.StatusBadRequest, "emotion must be SCARY, ANNOYING or FUNNY")
		}
		report.Emotion = emotion
	}
	if patch.Title != nil {
		report.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Content != nil {
		report.Content = strings.TrimSpace(*patch.Content)
	}
	if patch.IsDeleted != nil {
		report.IsDeleted = *patch.IsDeleted
	}
	if err := report.Validate(); err != nil {
		return RespondError(c, fiber.StatusBadRequest, "title and content must not be empty")
	}

	if err := repo.Update(report); err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to update report")
	}

	refreshRegions()

	if report.IsDeleted {
		return RespondOK(c, fiber.Map{"reportId": report.UUID, "isDeleted": true})
	}
	fresh, err := repo.GetByID(report.ID)
	if err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to load report")
	}
	return RespondOK(c, reportResponse(fresh, report.UserID))
}

// HandleToggleLike flips the viewer's like on a report and returns the new
// count plus the viewer-relative state.
func HandleToggleLike(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetReportRepository()
	report, err := repo.GetByUUID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RespondError(c, fiber.StatusNotFound, "report not found")
		}
		return RespondError(c, fiber.StatusInternalServerError, "failed to load report")
	}
	if report.IsDeleted {
		return RespondError(c, fiber.StatusNotFound, "report not found")
	}

	liked, err := repo.ToggleLike(usercontext.GetUserID(c), report.ID)
	if err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to toggle like")
	}
	likes, err := repo.CountLikes(report.ID)
	if err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to count likes")
	}

	return RespondOK(c, fiber.Map{
		"likes":  likes,
		"isLike": liked,
		"isHot":  likes >= models.HotLikeThreshold,
	})
}

// attachMedia validates and stores an uploaded attachment, then points the
// report's media URLs at it. Image uploads also get a thumbnail job. On
// failure it returns the HTTP status and message the caller should send.
func attachMedia(c *fiber.Ctx, report *models.Report, file *multipart.FileHeader) (int, error) {
	if mediaStore == nil {
		return fiber.StatusServiceUnavailable, errors.New("media uploads are disabled")
	}

	src, err := file.Open()
	if err != nil {
		return fiber.StatusBadRequest, errors.New("could not read the uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, upload.MaxMediaBytes+1))
	if err != nil {
		return fiber.StatusBadRequest, errors.New("could not read the uploaded file")
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	kind, contentType, err := upload.ValidateMediaBySniff(file.Filename, int64(len(data)), head)
	if err != nil {
		return fiber.StatusBadRequest, err
	}

	objectKey := fmt.Sprintf("reports/%s/original%s", report.UUID, strings.ToLower(filepath.Ext(file.Filename)))
	url, err := mediaStore.Upload(c.Context(), objectKey, data, contentType)
	if err != nil {
		log.Errorf("[Reports] Media upload failed for %s: %v", report.UUID, err)
		return fiber.StatusInternalServerError, errors.New("failed to store media")
	}

	dropMedia(report)
	switch kind {
	case upload.KindImage:
		report.ImageURL = url
		payload := jobqueue.MediaThumbnailJobPayload{
			ReportID:   report.ID,
			ReportUUID: report.UUID,
			ObjectKey:  objectKey,
		}
		if _, err := jobqueue.GetManager().GetQueue().EnqueueJob(jobqueue.JobTypeMediaThumbnail, payload.ToMap()); err != nil {
			log.Errorf("[Reports] Failed to enqueue thumbnail for %s: %v", report.UUID, err)
		}
	case upload.KindVideo:
		report.VideoURL = url
	}
	return 0, nil
}

// dropMedia clears the report's media URLs and deletes the stored objects.
func dropMedia(report *models.Report) {
	if mediaStore != nil {
		ctx := context.Background()
		for _, u := range []string{report.ImageURL, report.ThumbURL, report.VideoURL} {
			if key := mediaStore.ObjectKeyFromURL(u); key != "" {
				if err := mediaStore.Delete(ctx, key); err != nil {
					log.Warnf("[Reports] Failed to delete media object %s: %v", key, err)
				}
			}
		}
	}
	report.ImageURL = ""
	report.ThumbURL = ""
	report.VideoURL = ""
}

// refreshRegions rebuilds the district snapshot in the background after a
// report mutation. The request does not wait for enrichment.
func refreshRegions() {
	go func() {
		if _, err := jobqueue.GetManager().RebuildSnapshot(); err != nil {
			log.Errorf("[Reports] Snapshot rebuild failed: %v", err)
		}
	}()
}
