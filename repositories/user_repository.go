package repositories

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"warbler/models"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Signup hashes the password and inserts the user. A taken username or
// email surfaces as ErrDuplicate and leaves no row behind.
func (repo *UserRepository) Signup(username, email, password, imageURL string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := models.User{
		Username:       username,
		Email:          email,
		PasswordHash:   string(hash),
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}
	if err := repo.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate looks up the user by username and verifies the password.
// A wrong password or unknown username returns ok=false, never an error.
func (repo *UserRepository) Authenticate(username, password string) (*models.User, bool, error) {
	var user models.User
	err := repo.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, false, nil
	}
	return &user, true, nil
}

func (repo *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := repo.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &user, err
}

func (repo *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := repo.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &user, err
}

// Search lists users whose username contains q. An empty q lists everyone.
func (repo *UserRepository) Search(q string) ([]models.User, error) {
	var users []models.User
	tx := repo.DB.Order("username")
	if q != "" {
		tx = tx.Where("username LIKE ?", "%"+q+"%")
	}
	err := tx.Find(&users).Error
	return users, err
}

// Usernames returns the full username list, queried fresh on every call.
func (repo *UserRepository) Usernames() ([]string, error) {
	var usernames []string
	err := repo.DB.Model(&models.User{}).Order("username").Pluck("username", &usernames).Error
	return usernames, err
}

// Update writes profile fields. A username or email collision surfaces as
// ErrDuplicate.
func (repo *UserRepository) Update(user *models.User) error {
	err := repo.DB.Model(user).Select(
		"username", "email", "image_url", "header_image_url", "bio", "location", "private",
	).Updates(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// Delete removes the user and everything that hangs off them: messages,
// likes given and received, follow edges and requests in both directions,
// and direct messages sent or received.
func (repo *UserRepository) Delete(id uint) error {
	return repo.DB.Transaction(func(tx *gorm.DB) error {
		ownMessages := tx.Model(&models.Message{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("message_id IN (?)", ownMessages).Delete(&models.LikedMessage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.LikedMessage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followee_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("requester_id = ? OR requested_id = ?", id, id).Delete(&models.FollowRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ? OR recipient_id = ?", id, id).Delete(&models.DirectMessage{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
