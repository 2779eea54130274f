package models

import "time"

// Verification request statuses.
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// VerificationRequest is an identity document submission.
type VerificationRequest struct {
	ID            string     `gorm:"primaryKey;type:text" json:"id"`
	UserID        string     `gorm:"index;not null" json:"user_id"`
	DocumentType  string     `json:"document_type"`
	FrontImageURL string     `json:"front_image_url"`
	BackImageURL  string     `json:"back_image_url"`
	Status        string     `gorm:"not null;default:'pending'" json:"status"`
	AdminNote     *string    `json:"admin_note"`
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt     *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (VerificationRequest) TableName() string { return "verification_requests" }

// IsPending reports whether the request can still be approved or rejected.
func (v VerificationRequest) IsPending() bool {
	return v.Status == VerificationPending
}

// ValidVerificationStatus reports whether s is one of the three statuses.
func ValidVerificationStatus(s string) bool {
	switch s {
	case VerificationPending, VerificationApproved, VerificationRejected:
		return true
	}
	return false
}

// VerificationRequestWithUser is a request joined to its owner profile.
type VerificationRequestWithUser struct {
	VerificationRequest
	User *UserProfile `gorm:"-" json:"user"`
}

// VerificationDocuments is what the document viewer shows.
type VerificationDocuments struct {
	RequestID     string `json:"request_id"`
	DocumentType  string `json:"document_type"`
	FrontImageURL string `json:"front_image_url"`
	BackImageURL  string `json:"back_image_url"`
}
