package repositories

import (
	"errors"

	"gorm.io/gorm"

	"warbler/models"
)

// TimelineLimit caps every timeline and profile listing.
const TimelineLimit = 100

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (repo *MessageRepository) Create(message *models.Message) error {
	return repo.DB.Create(message).Error
}

func (repo *MessageRepository) FindByID(id uint) (*models.Message, error) {
	var message models.Message
	err := repo.DB.Preload("Author").First(&message, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &message, err
}

// Delete removes a message, but only for its owner. ErrNotFound covers both
// a missing message and someone else's message.
func (repo *MessageRepository) Delete(id, ownerID uint) error {
	res := repo.DB.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Message{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ByUser returns the user's most recent messages, newest first, ties broken
// by id for determinism.
func (repo *MessageRepository) ByUser(userID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := repo.DB.Preload("Author").
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// VisibleMessages applies the private-account gate: the owner's messages are
// returned when the owner is public, the viewer is the owner, or the viewer
// is an approved follower of the owner. Otherwise the result is empty, not
// an error.
func (repo *MessageRepository) VisibleMessages(ownerID, viewerID uint) ([]models.Message, error) {
	var owner models.User
	if err := repo.DB.First(&owner, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if owner.Private && viewerID != ownerID {
		var count int64
		err := repo.DB.Model(&models.Follow{}).
			Where("follower_id = ? AND followee_id = ?", viewerID, ownerID).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return []models.Message{}, nil
		}
	}

	return repo.ByUser(ownerID, TimelineLimit)
}

// Timeline returns the most recent messages by the user and everyone they
// follow, newest first.
func (repo *MessageRepository) Timeline(userID uint) ([]models.Message, error) {
	followees := repo.DB.Model(&models.Follow{}).
		Select("followee_id").
		Where("follower_id = ?", userID)

	var messages []models.Message
	err := repo.DB.Preload("Author").
		Where("user_id = ? OR user_id IN (?)", userID, followees).
		Order("timestamp DESC, id DESC").
		Limit(TimelineLimit).
		Find(&messages).Error
	return messages, err
}
