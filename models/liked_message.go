package models

// LikedMessage is a user's like of a message. Composite key, no payload;
// toggled on and off, cascade-deleted with either endpoint.
type LikedMessage struct {
	UserID    uint    `gorm:"primaryKey;column:user_id"`
	MessageID uint    `gorm:"primaryKey;column:message_id"`
	User      User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Message   Message `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name used by GORM
func (LikedMessage) TableName() string {
	return "liked_messages"
}
