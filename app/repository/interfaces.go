package repository

import (
	"github.com/jmk307/hellmap-api/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByNickname(nickname string) (*models.User, error)
	NicknameTaken(nickname string) (bool, error)
	Update(user *models.User) error
	Delete(id uint) error
	Count() (int64, error)

	GetProviderAccount(provider, providerUserID string) (*models.ProviderAccount, error)
	LinkProviderAccount(account *models.ProviderAccount) error
}

// ReportRepository defines the interface for report-related database operations
type ReportRepository interface {
	Create(report *models.Report) error
	GetByID(id uint) (*models.Report, error)
	GetByUUID(uuid string) (*models.Report, error)
	GetActive() ([]models.Report, error)
	GetActiveByEmotion(emotion string) ([]models.Report, error)
	GetByUserID(userID uint) ([]models.Report, error)
	Update(report *models.Report) error
	SoftDelete(id uint) error
	Count() (int64, error)
	CountByEmotion(emotion string) (int64, error)

	ToggleLike(userID, reportID uint) (bool, error)
	CountLikes(reportID uint) (int64, error)
	LikedBy(userID, reportID uint) (bool, error)
}

// FeedbackRepository defines the interface for feedback-related database operations
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	GetByUUID(uuid string) (*models.Feedback, error)
	GetByUserID(userID uint) ([]models.Feedback, error)
	GetAll() ([]models.Feedback, error)
	GetByStatus(status string) ([]models.Feedback, error)
	Update(feedback *models.Feedback) error
	Delete(id uint) error
	Count() (int64, error)
}

// Repositories bundles all repository instances
type Repositories struct {
	User     UserRepository
	Report   ReportRepository
	Feedback FeedbackRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Report:   NewReportRepository(db),
		Feedback: NewFeedbackRepository(db),
	}
}
