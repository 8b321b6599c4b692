package models

import "time"

// DirectMessage is a one-way private message between two users. It shows up
// in the sender's outbox and the recipient's inbox.
type DirectMessage struct {
	ID          uint      `gorm:"primaryKey;column:id"`
	Text        string    `gorm:"size:140;not null"`
	CreatedAt   time.Time `gorm:"column:timestamp;not null"`
	SenderID    uint      `gorm:"column:sender_id;not null"`
	RecipientID uint      `gorm:"column:recipient_id;not null"`
	Sender      User      `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Recipient   User      `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name used by GORM
func (DirectMessage) TableName() string {
	return "direct_messages"
}
