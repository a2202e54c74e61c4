package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	ROLE_USER  = "user"
	ROLE_ADMIN = "admin"

	STATUS_ACTIVE   = "active"
	STATUS_DISABLED = "disabled"
)

// ErrInvalidNickname is returned when a nickname fails the signup format rule.
var ErrInvalidNickname = errors.New("nickname must be 2-12 characters of Hangul, latin letters or digits")

var nicknamePattern = regexp.MustCompile(`^[a-zA-Z0-9가-힣]{2,12}$`)

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Nickname    string         `gorm:"uniqueIndex;type:varchar(48) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin;not null" json:"nickname" validate:"required,min=2,max=12"`
	Role        string         `gorm:"type:varchar(50);default:'user'" json:"role" validate:"oneof=user admin"`
	Status      string         `gorm:"type:varchar(50);default:'active'" json:"status" validate:"oneof=active disabled"`
	LastLoginAt *time.Time     `gorm:"type:timestamp;default:null" json:"last_login_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) Validate() error {
	if !nicknamePattern.MatchString(u.Nickname) {
		return ErrInvalidNickname
	}
	v := validator.New()
	return v.Struct(u)
}

// ValidNickname reports whether the nickname satisfies the signup format rule
// (2-12 characters, Hangul/latin/digits only).
func ValidNickname(nickname string) bool {
	return nicknamePattern.MatchString(nickname)
}

// CreateUser builds a validated user record for signup. Accounts come from
// social login only, so there is no password here.
func CreateUser(nickname string) (*User, error) {
	u := &User{
		Nickname: nickname,
		Role:     ROLE_USER,
		Status:   STATUS_ACTIVE,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

// FindUserByNickname looks a user up by exact nickname.
func FindUserByNickname(db *gorm.DB, nickname string) (*User, error) {
	var user User
	result := db.Where("nickname = ?", nickname).First(&user)
	return &user, result.Error
}

// NicknameTaken reports whether any user already owns the nickname.
func NicknameTaken(db *gorm.DB, nickname string) (bool, error) {
	var count int64
	if err := db.Model(&User{}).Where("nickname = ?", nickname).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
