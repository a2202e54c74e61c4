package repository

import (
	"github.com/jmk307/hellmap-api/app/models"
	"gorm.io/gorm"
)

// reportRepository implements the ReportRepository interface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create creates a new report in the database
func (r *reportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

// GetByID retrieves a report by its internal ID
func (r *reportRepository) GetByID(id uint) (*models.Report, error) {
	var report models.Report
	err := r.db.Preload("User").Preload("Likes").First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetByUUID retrieves a report by its public id
func (r *reportRepository) GetByUUID(uuid string) (*models.Report, error) {
	var report models.Report
	err := r.db.Preload("User").Preload("Likes").Where("uuid = ?", uuid).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetActive retrieves all non-deleted reports, newest first
func (r *reportRepository) GetActive() ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Preload("User").Preload("Likes").
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

// GetActiveByEmotion retrieves non-deleted reports of one emotion, newest first
func (r *reportRepository) GetActiveByEmotion(emotion string) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Preload("User").Preload("Likes").
		Where("is_deleted = ? AND emotion = ?", false, emotion).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

// GetByUserID retrieves all non-deleted reports of one author, newest first
func (r *reportRepository) GetByUserID(userID uint) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Preload("Likes").
		Where("is_deleted = ? AND user_id = ?", false, userID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

// Update updates an existing report in the database
func (r *reportRepository) Update(report *models.Report) error {
	return r.db.Save(report).Error
}

// SoftDelete hides a report from the feed without destroying the row
func (r *reportRepository) SoftDelete(id uint) error {
	return r.db.Model(&models.Report{}).Where("id = ?", id).Update("is_deleted", true).Error
}

// Count returns the total number of non-deleted reports
func (r *reportRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Report{}).Where("is_deleted = ?", false).Count(&count).Error
	return count, err
}

// CountByEmotion returns the number of non-deleted reports per emotion
func (r *reportRepository) CountByEmotion(emotion string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Report{}).
		Where("is_deleted = ? AND emotion = ?", false, emotion).
		Count(&count).Error
	return count, err
}

// ToggleLike flips one user's like on a report and returns the new state
func (r *reportRepository) ToggleLike(userID, reportID uint) (bool, error) {
	return models.ToggleReportLike(r.db, userID, reportID)
}

// CountLikes returns the like count for a report
func (r *reportRepository) CountLikes(reportID uint) (int64, error) {
	return models.CountReportLikes(r.db, reportID)
}

// LikedBy reports whether the user currently likes the report
func (r *reportRepository) LikedBy(userID, reportID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ReportLike{}).
		Where("user_id = ? AND report_id = ?", userID, reportID).
		Count(&count).Error
	return count > 0, err
}
