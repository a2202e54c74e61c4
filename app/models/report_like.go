package models

import (
	"time"

	"gorm.io/gorm"
)

type ReportLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:user_report,unique" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ReportID  uint      `gorm:"index:user_report,unique" json:"report_id"`
	Report    Report    `gorm:"foreignKey:ReportID" json:"report,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ToggleReportLike creates the like when absent and removes it when present.
// It returns whether the report is liked after the toggle.
func ToggleReportLike(db *gorm.DB, userID, reportID uint) (bool, error) {
	var like ReportLike
	result := db.Where("user_id = ? AND report_id = ?", userID, reportID).First(&like)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			newLike := ReportLike{
				UserID:   userID,
				ReportID: reportID,
			}
			return true, db.Create(&newLike).Error
		}
		return false, result.Error
	}

	return false, db.Delete(&like).Error
}

// CountReportLikes returns the like count for a report.
func CountReportLikes(db *gorm.DB, reportID uint) (int64, error) {
	var count int64
	err := db.Model(&ReportLike{}).Where("report_id = ?", reportID).Count(&count).Error
	return count, err
}
