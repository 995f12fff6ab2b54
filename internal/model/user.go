package model

import "time"

// User 用户模型
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	UserName  string    `gorm:"size:150;not null;uniqueIndex;comment:用户名" json:"username"`
	Email     string    `gorm:"size:254;not null;uniqueIndex;comment:电子邮箱" json:"email"`
	Password  string    `gorm:"size:255;not null;comment:密码" json:"-"` // json:"-" 序列化时忽略密码
	FirstName string    `gorm:"size:150;comment:名" json:"first_name"`
	LastName  string    `gorm:"size:150;comment:姓" json:"last_name"`
	Avatar    *string   `gorm:"size:500;comment:用户头像" json:"avatar"`
	UserRole  string    `gorm:"size:32;not null;default:'user';comment:用户角色" json:"user_role"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:注册时间" json:"created_at"`

	// 关联关系，删除用户时其菜谱与配对关系级联删除
	Recipes       []Recipe       `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"recipes,omitempty"`
	Subscriptions []Subscription `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"subscriptions,omitempty"`
	Followers     []Subscription `gorm:"foreignKey:FollowID;constraint:OnDelete:CASCADE" json:"followers,omitempty"`
	Favorites     []Favorite     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
	CartItems     []CartItem     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart_items,omitempty"`
}

func (User) TableName() string {
	return "users"
}
