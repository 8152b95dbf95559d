package dbmysql

import (
	"time"
)

const DefaultStepGoal = 10000

type User struct {
	ID            uint64     `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	FirebaseUID   string     `gorm:"column:firebase_uid;uniqueIndex;size:128;not null" json:"firebaseUid"`
	Email         string     `gorm:"column:email;size:255" json:"email"`
	EmailVerified bool       `gorm:"column:email_verified;default:false" json:"emailVerified"`
	Username      string     `gorm:"column:username;size:50" json:"username"`
	DisplayName   string     `gorm:"column:display_name;size:100" json:"displayName"`
	PhotoURL      *string    `gorm:"column:photo_url;size:512" json:"photoUrl"`
	ExpoPushToken *string    `gorm:"column:expo_push_token;size:255" json:"expoPushToken,omitempty"`
	StepGoal      int        `gorm:"column:step_goal;not null;default:10000" json:"stepGoal"`
	IsOnboarded   bool       `gorm:"column:is_onboarded;default:false" json:"isOnboarded"`
	IsActive      bool       `gorm:"column:is_active;default:true" json:"isActive"`
	LastLoginAt   *time.Time `gorm:"column:last_login_at" json:"lastLoginAt"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// PublicProfile is the subset of a user shown to other users.
type PublicProfile struct {
	ID          uint64  `json:"id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"displayName"`
	PhotoURL    *string `json:"photoUrl"`
}

func (u *User) Public() PublicProfile {
	if u == nil {
		return PublicProfile{}
	}
	return PublicProfile{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
	}
}
