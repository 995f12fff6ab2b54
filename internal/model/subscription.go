package model

import "time"

// Subscription 用户订阅关系模型，(粉丝, 被订阅者) 唯一，禁止订阅自己
type Subscription struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;comment:订阅关系ID" json:"id"`
	FollowerID int64     `gorm:"not null;uniqueIndex:uq_subscription_pair;index:idx_subscriptions_follower_id;comment:粉丝用户ID" json:"follower_id"`
	FollowID   int64     `gorm:"not null;uniqueIndex:uq_subscription_pair;index:idx_subscriptions_follow_id;comment:被订阅用户ID" json:"follow_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime;comment:订阅时间" json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
