package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionFeedbackStatus(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to reviewing", FeedbackStatusPending, FeedbackStatusReviewing, true},
		{"reviewing to completed", FeedbackStatusReviewing, FeedbackStatusCompleted, true},
		{"reviewing to rejected", FeedbackStatusReviewing, FeedbackStatusRejected, true},
		{"verdict correction completed to rejected", FeedbackStatusCompleted, FeedbackStatusRejected, true},
		{"verdict correction rejected to completed", FeedbackStatusRejected, FeedbackStatusCompleted, true},
		{"no-op is allowed", FeedbackStatusPending, FeedbackStatusPending, true},
		{"pending cannot skip to completed", FeedbackStatusPending, FeedbackStatusCompleted, false},
		{"pending cannot skip to rejected", FeedbackStatusPending, FeedbackStatusRejected, false},
		{"completed cannot reopen", FeedbackStatusCompleted, FeedbackStatusReviewing, false},
		{"reviewing cannot go back", FeedbackStatusReviewing, FeedbackStatusPending, false},
		{"unknown status", "ARCHIVED", FeedbackStatusReviewing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionFeedbackStatus(tt.from, tt.to))
		})
	}
}

func TestFeedbackValidate(t *testing.T) {
	f := &Feedback{
		FeedbackType: FeedbackTypeBug,
		Title:        "마커가 사라져요",
		Description:  "줌을 당기면 지역 마커가 안 보입니다",
		Priority:     FeedbackPriorityHigh,
		Status:       FeedbackStatusPending,
	}
	assert.NoError(t, f.Validate())

	f.Priority = "URGENT"
	assert.Error(t, f.Validate())

	f.Priority = FeedbackPriorityLow
	f.FeedbackType = ""
	assert.Error(t, f.Validate())
}
