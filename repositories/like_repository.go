package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"warbler/models"
)

type LikeRepository struct {
	DB *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{DB: db}
}

// Toggle likes the message if no like exists, and removes the like
// otherwise. The composite key makes the pair unique; a concurrent
// duplicate insert degrades to a no-op instead of failing. Returns the
// resulting liked state.
func (repo *LikeRepository) Toggle(userID, messageID uint) (bool, error) {
	res := repo.DB.
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.LikedMessage{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	if err := repo.DB.First(&models.Message{}, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	like := models.LikedMessage{UserID: userID, MessageID: messageID}
	err := repo.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error
	return true, err
}

func (repo *LikeRepository) IsLiked(userID, messageID uint) (bool, error) {
	var count int64
	err := repo.DB.Model(&models.LikedMessage{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error
	return count > 0, err
}

// LikedByUser lists the messages the user has liked, newest first.
func (repo *LikeRepository) LikedByUser(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := repo.DB.Preload("Author").
		Joins("INNER JOIN liked_messages ON liked_messages.message_id = messages.id").
		Where("liked_messages.user_id = ?", userID).
		Order("messages.timestamp DESC, messages.id DESC").
		Find(&messages).Error
	return messages, err
}
