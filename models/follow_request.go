package models

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusAccepted RequestStatus = "Accepted"
	StatusDeclined RequestStatus = "Declined"
)

// FollowRequest is the negotiation row that precedes a Follow edge when the
// requested account is private. At most one row exists per ordered
// (requester, requested) pair; a new request supersedes a stale one.
type FollowRequest struct {
	RequesterID uint          `gorm:"primaryKey;column:requester_id"`
	RequestedID uint          `gorm:"primaryKey;column:requested_id"`
	Status      RequestStatus `gorm:"not null;default:Pending;size:20"`
	CreatedAt   time.Time
	Requester   User `gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
	Requested   User `gorm:"foreignKey:RequestedID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name used by GORM
func (FollowRequest) TableName() string {
	return "follow_requests"
}
