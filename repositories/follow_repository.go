package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"warbler/models"
)

type FollowRepository struct {
	DB *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{DB: db}
}

var requestKey = []clause.Column{{Name: "requester_id"}, {Name: "requested_id"}}

// RequestFollow starts (or completes) a follow of target by requester.
//
// For a public target the Follow edge is created right away and the request
// row is recorded as Accepted. For a private target only a Pending request
// is created; the edge appears when the target accepts. A stale Declined or
// Accepted row for the same pair is reset to Pending by a fresh request.
// Following an already-followed user is a no-op.
func (repo *FollowRepository) RequestFollow(requesterID, targetID uint) error {
	if requesterID == targetID {
		return ErrSelfFollow
	}

	var target models.User
	if err := repo.DB.First(&target, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	following, err := repo.IsFollowing(requesterID, targetID)
	if err != nil {
		return err
	}
	if following {
		return nil
	}

	if target.Private {
		req := models.FollowRequest{
			RequesterID: requesterID,
			RequestedID: targetID,
			Status:      models.StatusPending,
		}
		return repo.DB.Clauses(clause.OnConflict{
			Columns:   requestKey,
			DoUpdates: clause.Assignments(map[string]interface{}{"status": models.StatusPending}),
		}).Create(&req).Error
	}

	return repo.DB.Transaction(func(tx *gorm.DB) error {
		edge := models.Follow{FollowerID: requesterID, FolloweeID: targetID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error; err != nil {
			return err
		}

		// Recorded as Accepted for audit symmetry with the private path.
		req := models.FollowRequest{
			RequesterID: requesterID,
			RequestedID: targetID,
			Status:      models.StatusAccepted,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   requestKey,
			DoUpdates: clause.Assignments(map[string]interface{}{"status": models.StatusAccepted}),
		}).Create(&req).Error
	})
}

// AcceptRequest marks the unique pending request from requester as Accepted
// and creates the Follow edge, in one transaction. ErrNotFound when no
// pending request exists.
func (repo *FollowRepository) AcceptRequest(targetID, requesterID uint) error {
	return repo.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.FollowRequest{}).
			Where("requester_id = ? AND requested_id = ? AND status = ?",
				requesterID, targetID, models.StatusPending).
			Update("status", models.StatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		edge := models.Follow{FollowerID: requesterID, FolloweeID: targetID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
	})
}

// DeclineRequest marks the pending request as Declined. The row is kept for
// history; a later re-request resets it to Pending.
func (repo *FollowRepository) DeclineRequest(targetID, requesterID uint) error {
	res := repo.DB.Model(&models.FollowRequest{}).
		Where("requester_id = ? AND requested_id = ? AND status = ?",
			requesterID, targetID, models.StatusPending).
		Update("status", models.StatusDeclined)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CancelRequest deletes the requester's pending request outright. It is a
// no-op when no pending request exists.
func (repo *FollowRepository) CancelRequest(requesterID, targetID uint) error {
	return repo.DB.
		Where("requester_id = ? AND requested_id = ? AND status = ?",
			requesterID, targetID, models.StatusPending).
		Delete(&models.FollowRequest{}).Error
}

// Unfollow deletes the Follow edge. Idempotent: a missing edge is not an
// error.
func (repo *FollowRepository) Unfollow(followerID, targetID uint) error {
	return repo.DB.
		Where("follower_id = ? AND followee_id = ?", followerID, targetID).
		Delete(&models.Follow{}).Error
}

func (repo *FollowRepository) IsFollowing(followerID, followeeID uint) (bool, error) {
	var count int64
	err := repo.DB.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

// Following lists the users that userID follows.
func (repo *FollowRepository) Following(userID uint) ([]models.User, error) {
	var users []models.User
	err := repo.DB.
		Joins("INNER JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("users.username").
		Find(&users).Error
	return users, err
}

// Followers lists the users that follow userID.
func (repo *FollowRepository) Followers(userID uint) ([]models.User, error) {
	var users []models.User
	err := repo.DB.
		Joins("INNER JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Order("users.username").
		Find(&users).Error
	return users, err
}

// PendingReceived lists pending requests addressed to userID, requester
// preloaded for rendering.
func (repo *FollowRepository) PendingReceived(userID uint) ([]models.FollowRequest, error) {
	var reqs []models.FollowRequest
	err := repo.DB.Preload("Requester").
		Where("requested_id = ? AND status = ?", userID, models.StatusPending).
		Order("created_at").
		Find(&reqs).Error
	return reqs, err
}

// PendingSent lists pending requests userID has sent.
func (repo *FollowRepository) PendingSent(userID uint) ([]models.FollowRequest, error) {
	var reqs []models.FollowRequest
	err := repo.DB.Preload("Requested").
		Where("requester_id = ? AND status = ?", userID, models.StatusPending).
		Order("created_at").
		Find(&reqs).Error
	return reqs, err
}
