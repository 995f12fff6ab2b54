package dto

// UserInfo 用户信息
type UserInfo struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Avatar       *string `json:"avatar"`
	IsSubscribed bool    `json:"is_subscribed"`
	UserRole     string  `json:"user_role,omitempty"`
}

// AvatarUpdateRequest 设置头像请求，头像为 base64 编码图片
type AvatarUpdateRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

// UserListData 用户列表数据（管理员用）
type UserListData struct {
	Users      []UserInfo `json:"users"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int64      `json:"total_pages"`
}
