package models

// Follow is an active following relationship: follower reads followee.
// The composite key keeps the edge unique; there is no payload.
type Follow struct {
	FollowerID uint `gorm:"primaryKey;column:follower_id"`
	FolloweeID uint `gorm:"primaryKey;column:followee_id"`
	Follower   User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followee   User `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name used by GORM
func (Follow) TableName() string {
	return "follows"
}
