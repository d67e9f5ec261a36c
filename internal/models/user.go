package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64      `json:"id" db:"id"`                         // Primary key
	UserUID      string     `json:"user_uid" db:"user_uid"`             // Stable external UID, immutable
	Username     string     `json:"username" db:"username"`             // Unique username
	Email        string     `json:"email" db:"email"`                   // Unique email
	Password     string     `json:"-" db:"password"`                    // Hashed password, never plaintext
	IsSuperuser  bool       `json:"is_superuser" db:"is_superuser"`     // Superuser flag
	IsActive     bool       `json:"is_active" db:"is_active"`           // Account status flag
	Avatar       *string    `json:"avatar" db:"avatar"`                 // Avatar filename
	MobileNumber *string    `json:"mobile_number" db:"mobile_number"`   // Mobile phone
	Wechat       *string    `json:"wechat" db:"wechat"`                 // Wechat handle
	QQ           *string    `json:"qq" db:"qq"`                         // QQ handle
	BlogAddress  *string    `json:"blog_address" db:"blog_address"`     // Blog address
	Introduction *string    `json:"introduction" db:"introduction"`     // Self introduction
	TimeJoined   time.Time  `json:"time_joined" db:"time_joined"`       // Registration timestamp
	LastLogin    *time.Time `json:"last_login" db:"last_login"`         // Last successful login
}
