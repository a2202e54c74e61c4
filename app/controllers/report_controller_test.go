package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jmk307/hellmap-api/app/models"
)

func TestReportResponseShape(t *testing.T) {
	t.Parallel()

	report := &models.Report{
		UUID:      "8c6f2f1a-0000-0000-0000-000000000001",
		Emotion:   models.EmotionScary,
		Title:     "골목에서 이상한 소리",
		Content:   "밤마다 들린다",
		Location:  "서울특별시 강남구",
		CreatedAt: time.Now().Add(-2 * time.Minute),
		User:      models.User{Nickname: "몽낙년"},
		Likes: []models.ReportLike{
			{UserID: 7},
			{UserID: 9},
		},
	}

	body := reportResponse(report, 7)

	// the feed contract names the display name "author"
	assert.Equal(t, "몽낙년", body["author"])
	assert.NotContains(t, body, "nickname")

	assert.Equal(t, report.UUID, body["reportId"])
	assert.Equal(t, "개무섭 골목에서 이상한 소리", body["title"])
	assert.Equal(t, 2, body["likes"])
	assert.Equal(t, true, body["isLike"])
	assert.Equal(t, false, body["isHot"])
	assert.Equal(t, "2분 전", body["timeAgo"])

	body = reportResponse(report, 42)
	assert.Equal(t, false, body["isLike"])
}
