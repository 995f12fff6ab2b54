package dto

import "time"

// PairInfo 配对关系行信息（订阅/收藏/购物车共用）
type PairInfo struct {
	ID        int64     `json:"id"`
	ActorID   int64     `json:"actor_id"`
	TargetID  int64     `json:"target_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SubscriptionListData 订阅列表数据
type SubscriptionListData struct {
	Users      []UserInfo `json:"users"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int64      `json:"total_pages"`
}
