package models

import "time"

const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User represents an account in the system.
type User struct {
	ID             uint   `gorm:"primaryKey;column:id"`
	Email          string `gorm:"uniqueIndex;not null"`
	Username       string `gorm:"uniqueIndex;not null"`
	PasswordHash   string `gorm:"column:password;not null"`
	ImageURL       string `gorm:"column:image_url"`
	HeaderImageURL string `gorm:"column:header_image_url"`
	Bio            string
	Location       string
	Private        bool `gorm:"not null;default:false"`
	CreatedAt      time.Time
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}
