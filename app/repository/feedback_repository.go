package repository

import (
	"github.com/jmk307/hellmap-api/app/models"
	"gorm.io/gorm"
)

// feedbackRepository implements the FeedbackRepository interface
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository instance
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create creates a new feedback item in the database
func (r *feedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// GetByUUID retrieves a feedback item by its public id
func (r *feedbackRepository) GetByUUID(uuid string) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.db.Preload("User").Where("uuid = ?", uuid).First(&feedback).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// GetByUserID retrieves all feedback items of one author, newest first
func (r *feedbackRepository) GetByUserID(userID uint) ([]models.Feedback, error) {
	var items []models.Feedback
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

// GetAll retrieves all feedback items, newest first
func (r *feedbackRepository) GetAll() ([]models.Feedback, error) {
	var items []models.Feedback
	err := r.db.Preload("User").Order("created_at DESC").Find(&items).Error
	return items, err
}

// GetByStatus retrieves feedback items in one review state, newest first
func (r *feedbackRepository) GetByStatus(status string) ([]models.Feedback, error) {
	var items []models.Feedback
	err := r.db.Preload("User").Where("status = ?", status).Order("created_at DESC").Find(&items).Error
	return items, err
}

// Update updates an existing feedback item in the database
func (r *feedbackRepository) Update(feedback *models.Feedback) error {
	return r.db.Save(feedback).Error
}

// Delete removes a feedback item by its internal ID
func (r *feedbackRepository) Delete(id uint) error {
	return r.db.Delete(&models.Feedback{}, id).Error
}

// Count returns the total number of feedback items
func (r *feedbackRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Feedback{}).Count(&count).Error
	return count, err
}
