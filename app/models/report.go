package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Emotion categories a report can carry. Declaration order matters: it is the
// tie-break order when a district's dominant emotion is computed.
const (
	EmotionScary    = "SCARY"
	EmotionAnnoying = "ANNOYING"
	EmotionFunny    = "FUNNY"
)

// Emotions lists the categories in their canonical (tie-break) order.
var Emotions = []string{EmotionScary, EmotionAnnoying, EmotionFunny}

// emotionTitlePrefix maps each emotion to the slang prefix the feed shows in
// front of report titles.
var emotionTitlePrefix = map[string]string{
	EmotionScary:    "개무섭",
	EmotionAnnoying: "개짜증",
	EmotionFunny:    "개웃김",
}

// HotLikeThreshold is the like count at which a report is flagged as hot.
const HotLikeThreshold = 10

type Report struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	UUID       string  `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"uuid"`
	UserID     uint    `gorm:"index" json:"user_id"`
	User       User    `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
	Emotion    string  `gorm:"type:varchar(20);index;not null" json:"emotion" validate:"required,oneof=SCARY ANNOYING FUNNY"`
	Title      string  `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Content    string  `gorm:"type:text;not null" json:"content" validate:"required"`
	Location   string  `gorm:"type:varchar(255);not null" json:"location" validate:"required,max=255"`
	RegionCode int     `gorm:"type:int;default:0" json:"region_code"`
	Latitude   float64 `gorm:"type:decimal(10,8)" json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64 `gorm:"type:decimal(11,8)" json:"longitude" validate:"min=-180,max=180"`
	ImageURL   string  `gorm:"type:varchar(512);default:null" json:"image_url"`
	ThumbURL   string  `gorm:"type:varchar(512);default:null" json:"thumb_url"`
	VideoURL   string  `gorm:"type:varchar(512);default:null" json:"video_url"`
	IsDeleted  bool    `gorm:"default:false;index" json:"is_deleted"`
	// relations
	Likes     []ReportLike `gorm:"foreignKey:ReportID" json:"likes,omitempty" validate:"-"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *Report) Validate() error {
	v := validator.New()
	return v.Struct(r)
}

// BeforeCreate assigns the public report id.
func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.UUID == "" {
		r.UUID = uuid.New().String()
	}
	return nil
}

// PrefixedTitle returns the title with the emotion slang prefix prepended,
// unless it already starts with it.
func PrefixedTitle(emotion, title string) string {
	prefix, ok := emotionTitlePrefix[emotion]
	if !ok || strings.HasPrefix(title, prefix) {
		return title
	}
	return prefix + " " + title
}

// Rough bounding box around South Korea. Reports must be pinned inside it.
const (
	koreaMinLat = 33.0
	koreaMaxLat = 38.5
	koreaMinLng = 125.0
	koreaMaxLng = 132.0
)

// InKoreaBounds reports whether the coordinates fall inside the Korean
// bounding box.
func InKoreaBounds(lat, lng float64) bool {
	return lat >= koreaMinLat && lat <= koreaMaxLat &&
		lng >= koreaMinLng && lng <= koreaMaxLng
}

// ValidEmotion reports whether the value is one of the fixed categories.
func ValidEmotion(emotion string) bool {
	for _, e := range Emotions {
		if e == emotion {
			return true
		}
	}
	return false
}

// FindReportByUUID finds a report by its public id.
func FindReportByUUID(db *gorm.DB, id string) (*Report, error) {
	var report Report
	result := db.Where("uuid = ?", id).First(&report)
	return &report, result.Error
}
