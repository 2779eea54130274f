package models

import "time"

// UserProfile is a row of the profiles table. Rows are created at sign-up
// by the marketplace; this service only updates and deletes them.
type UserProfile struct {
	ID                 string     `gorm:"primaryKey;type:text" json:"id"`
	Email              string     `gorm:"index" json:"email"`
	FullName           *string    `json:"full_name"`
	AvatarURL          *string    `json:"avatar_url"`
	Phone              *string    `json:"phone"`
	Address            *string    `json:"address"`
	CreatedAt          time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt          *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
	IsVerified         bool       `gorm:"default:false" json:"is_verified"`
	VerificationDocURL *string    `json:"verification_doc_url"`
	VerificationStatus *string    `json:"verification_status"`
	VerifiedAt         *time.Time `json:"verified_at"`
}

func (UserProfile) TableName() string { return "profiles" }

// DisplayName returns the full name, or the empty string when unset.
func (u *UserProfile) DisplayName() string {
	if u == nil || u.FullName == nil {
		return ""
	}
	return *u.FullName
}

// UserRow is a profile as listed on the users tab.
type UserRow struct {
	UserProfile
	CarCount int `json:"car_count"`
}
