package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FeedbackTypeBug         = "BUG"
	FeedbackTypeFeature     = "FEATURE"
	FeedbackTypeImprovement = "IMPROVEMENT"
	FeedbackTypeOther       = "OTHER"

	FeedbackPriorityLow    = "LOW"
	FeedbackPriorityMedium = "MEDIUM"
	FeedbackPriorityHigh   = "HIGH"

	FeedbackStatusPending   = "PENDING"
	FeedbackStatusReviewing = "REVIEWING"
	FeedbackStatusCompleted = "COMPLETED"
	FeedbackStatusRejected  = "REJECTED"
)

// feedbackTransitions describes the status state machine:
// PENDING -> REVIEWING -> {COMPLETED, REJECTED}. Terminal states allow
// flipping between COMPLETED and REJECTED so an admin can correct a verdict.
var feedbackTransitions = map[string][]string{
	FeedbackStatusPending:   {FeedbackStatusReviewing},
	FeedbackStatusReviewing: {FeedbackStatusCompleted, FeedbackStatusRejected},
	FeedbackStatusCompleted: {FeedbackStatusRejected},
	FeedbackStatusRejected:  {FeedbackStatusCompleted},
}

type Feedback struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UUID          string     `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"uuid"`
	UserID        uint       `gorm:"index" json:"user_id"`
	User          User       `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
	FeedbackType  string     `gorm:"type:varchar(20);not null" json:"feedback_type" validate:"required,oneof=BUG FEATURE IMPROVEMENT OTHER"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Description   string     `gorm:"type:text;not null" json:"description" validate:"required"`
	Priority      string     `gorm:"type:varchar(20);not null" json:"priority" validate:"required,oneof=LOW MEDIUM HIGH"`
	Status        string     `gorm:"type:varchar(20);default:'PENDING';index" json:"status" validate:"oneof=PENDING REVIEWING COMPLETED REJECTED"`
	Review        *string    `gorm:"type:text;default:null" json:"review"`
	AdminNickname string     `gorm:"type:varchar(48);default:null" json:"admin_nickname"`
	ResponseAt    *time.Time `gorm:"type:timestamp;default:null" json:"response_at"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *Feedback) Validate() error {
	v := validator.New()
	return v.Struct(f)
}

// BeforeCreate assigns the public feedback id and the initial status.
func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.UUID == "" {
		f.UUID = uuid.New().String()
	}
	if f.Status == "" {
		f.Status = FeedbackStatusPending
	}
	return nil
}

// CanTransitionFeedbackStatus reports whether a status change is allowed by
// the review state machine. A no-op change is always allowed.
func CanTransitionFeedbackStatus(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range feedbackTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// FindFeedbackByUUID finds a feedback item by its public id.
func FindFeedbackByUUID(db *gorm.DB, id string) (*Feedback, error) {
	var feedback Feedback
	result := db.Where("uuid = ?", id).First(&feedback)
	return &feedback, result.Error
}
