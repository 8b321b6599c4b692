package repositories

import "warbler/models"

type UserStore interface {
	Signup(username, email, password, imageURL string) (*models.User, error)
	Authenticate(username, password string) (*models.User, bool, error)
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Search(q string) ([]models.User, error)
	Usernames() ([]string, error)
	Update(user *models.User) error
	Delete(id uint) error
}

type MessageStore interface {
	Create(message *models.Message) error
	FindByID(id uint) (*models.Message, error)
	Delete(id, ownerID uint) error
	ByUser(userID uint, limit int) ([]models.Message, error)
	VisibleMessages(ownerID, viewerID uint) ([]models.Message, error)
	Timeline(userID uint) ([]models.Message, error)
}

type FollowStore interface {
	RequestFollow(requesterID, targetID uint) error
	AcceptRequest(targetID, requesterID uint) error
	DeclineRequest(targetID, requesterID uint) error
	CancelRequest(requesterID, targetID uint) error
	Unfollow(followerID, targetID uint) error
	IsFollowing(followerID, followeeID uint) (bool, error)
	Following(userID uint) ([]models.User, error)
	Followers(userID uint) ([]models.User, error)
	PendingReceived(userID uint) ([]models.FollowRequest, error)
	PendingSent(userID uint) ([]models.FollowRequest, error)
}

type LikeStore interface {
	Toggle(userID, messageID uint) (liked bool, err error)
	IsLiked(userID, messageID uint) (bool, error)
	LikedByUser(userID uint) ([]models.Message, error)
}

type DirectMessageStore interface {
	Send(senderID, recipientID uint, text string) (*models.DirectMessage, error)
	Inbox(userID uint) ([]models.DirectMessage, error)
	Outbox(userID uint) ([]models.DirectMessage, error)
}

var (
	_ UserStore          = (*UserRepository)(nil)
	_ MessageStore       = (*MessageRepository)(nil)
	_ FollowStore        = (*FollowRepository)(nil)
	_ LikeStore          = (*LikeRepository)(nil)
	_ DirectMessageStore = (*DirectMessageRepository)(nil)
)
