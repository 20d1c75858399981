package models

import "time"

// Follow is a single edge of the follow graph. The composite unique
// index makes the toggle a set operation: inserting an existing edge is
// a no-op, so a concurrent double-toggle cannot duplicate it. No soft
// delete here, an unfollow removes the row outright.
type Follow struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	FollowerID uint      `gorm:"uniqueIndex:idx_follower_followee;not null" json:"follower_id"`
	FolloweeID uint      `gorm:"uniqueIndex:idx_follower_followee;not null" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
