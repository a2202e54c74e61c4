package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jmk307/hellmap-api/app/models"
)

func TestFeedbackResponseShape(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	feedback := &models.Feedback{
		UUID:         "b1a40000-0000-0000-0000-000000000002",
		FeedbackType: "BUG",
		Title:        "지도가 안 보여요",
		Description:  "마커가 전부 사라짐",
		Priority:     "HIGH",
		Status:       models.FeedbackStatusPending,
		User:         models.User{Nickname: "제보왕"},
		CreatedAt:    created,
	}

	body := feedbackResponse(feedback)

	assert.Equal(t, "제보왕", body["author"])
	assert.NotContains(t, body, "nickname")
	assert.Equal(t, "2025년 6월 15일", body["createdAt"])
	assert.Nil(t, body["responseAt"])
	assert.Nil(t, body["review"])

	review := "수정 배포했습니다"
	responded := time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)
	feedback.Status = models.FeedbackStatusCompleted
	feedback.Review = &review
	feedback.AdminNickname = "몽낙년"
	feedback.ResponseAt = &responded

	body = feedbackResponse(feedback)
	assert.Equal(t, review, body["review"])
	assert.Equal(t, "몽낙년", body["adminNickname"])
	assert.Equal(t, "2025년 7월 01일", body["responseAt"])
}
