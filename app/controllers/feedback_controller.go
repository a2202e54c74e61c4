package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jmk307/hellmap-api/app/models"
	"github.com/jmk307/hellmap-api/app/repository"
	"github.com/jmk307/hellmap-api/internal/pkg/timefmt"
	"github.com/jmk307/hellmap-api/internal/pkg/usercontext"
)

type feedbackRequest struct {
	FeedbackType string `json:"feedbackType"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
}

type feedbackReviewRequest struct {
	Status string `json:"status"`
	Review string `json:"review"`
}

func feedbackResponse(f *models.Feedback) fiber.Map {
	var review interface{}
	if f.Review != nil {
		review = *f.Review
	}

	return fiber.Map{
		"feedbackId":    f.UUID,
		"feedbackType":  f.FeedbackType,
		"title":         f.Title,
		"description":   f.Description,
		"priority":      f.Priority,
		"status":        f.Status,
		"review":        review,
		"adminNickname": f.AdminNickname,
		"author":        f.User.Nickname,
		"createdAt":     timefmt.Date(f.CreatedAt),
		"responseAt":    formatTimePtr(f.ResponseAt, timefmt.Date),
	}
}

// HandleGetFeedbacks returns all feedback items, newest first.
func HandleGetFeedbacks(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetFeedbackRepository()

	var (
		items []models.Feedback
		err   error
	)
	if status := strings.ToUpper(c.Query("status")); status != "" {
		items, err = repo.GetByStatus(status)
	} else {
		items, err = repo.GetAll()
	}
	if err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to load feedback")
	}

	out := make([]fiber.Map, 0, len(items))
	for i := range items {
		out = append(out, feedbackResponse(&items[i]))
	}
	return RespondOK(c, out)
}

// HandleCreateFeedback files a new feedback item; review starts at PENDING.
func HandleCreateFeedback(c *fiber.Ctx) error {
	var req feedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return RespondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	feedback := &models.Feedback{
		UserID:       usercontext.GetUserID(c),
		FeedbackType: strings.ToUpper(strings.TrimSpace(req.FeedbackType)),
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Priority:     strings.ToUpper(strings.TrimSpace(req.Priority)),
		Status:       models.FeedbackStatusPending,
	}
	if err := feedback.Validate(); err != nil {
		return RespondError(c, fiber.StatusBadRequest, "feedbackType, title, description and priority are required")
	}

	if err := repository.GetGlobalFactory().GetFeedbackRepository().Create(feedback); err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to create feedback")
	}
	return RespondCreated(c, feedbackResponse(feedback))
}

// HandleReviewFeedback moves a feedback item through the review state
// machine and records the reviewing admin. Admin role only (enforced by the
// route's middleware); the transition rules are enforced here.
func HandleReviewFeedback(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetFeedbackRepository()
	feedback, err := repo.GetByUUID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RespondError(c, fiber.StatusNotFound, "feedback not found")
		}
		return RespondError(c, fiber.StatusInternalServerError, "failed to load feedback")
	}

	var req feedbackReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return RespondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if status != "" {
		if !models.CanTransitionFeedbackStatus(feedback.Status, status) {
			return RespondError(c, fiber.StatusConflict, "invalid status transition")
		}
		feedback.Status = status
	}
	if review := strings.TrimSpace(req.Review); review != "" {
		feedback.Review = &review
	}

	now := time.Now()
	feedback.AdminNickname = usercontext.GetNickname(c)
	feedback.ResponseAt = &now

	if err := repo.Update(feedback); err != nil {
		return RespondError(c, fiber.StatusInternalServerError, "failed to update feedback")
	}
	return RespondOK(c, feedbackResponse(feedback))
}
