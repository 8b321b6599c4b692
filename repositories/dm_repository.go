package repositories

import (
	"errors"

	"gorm.io/gorm"

	"warbler/models"
)

type DirectMessageRepository struct {
	DB *gorm.DB
}

func NewDirectMessageRepository(db *gorm.DB) *DirectMessageRepository {
	return &DirectMessageRepository{DB: db}
}

// Send stores a one-way private message. ErrNotFound when the recipient
// does not exist.
func (repo *DirectMessageRepository) Send(senderID, recipientID uint, text string) (*models.DirectMessage, error) {
	if err := repo.DB.First(&models.User{}, recipientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	dm := models.DirectMessage{
		Text:        text,
		SenderID:    senderID,
		RecipientID: recipientID,
	}
	if err := repo.DB.Create(&dm).Error; err != nil {
		return nil, err
	}
	return &dm, nil
}

// Inbox lists messages received by the user, newest first.
func (repo *DirectMessageRepository) Inbox(userID uint) ([]models.DirectMessage, error) {
	var dms []models.DirectMessage
	err := repo.DB.Preload("Sender").
		Where("recipient_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Find(&dms).Error
	return dms, err
}

// Outbox lists messages sent by the user, newest first.
func (repo *DirectMessageRepository) Outbox(userID uint) ([]models.DirectMessage, error) {
	var dms []models.DirectMessage
	err := repo.DB.Preload("Recipient").
		Where("sender_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Find(&dms).Error
	return dms, err
}
