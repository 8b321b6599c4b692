package models

import "time"

// MaxMessageLength is the hard limit on message text, enforced both by
// form validation and by the column definition.
const MaxMessageLength = 140

// Message is a single post ("warble") owned by exactly one user.
type Message struct {
	ID        uint      `gorm:"primaryKey;column:id"`
	Text      string    `gorm:"size:140;not null"`
	CreatedAt time.Time `gorm:"column:timestamp;not null"`
	UserID    uint      `gorm:"column:user_id;not null"`
	Author    User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name used by GORM
func (Message) TableName() string {
	return "messages"
}
