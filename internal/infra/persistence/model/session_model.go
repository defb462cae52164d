package model

import "time"

// SessionModel mirrors the 'sessions' table. SessionToken is the opaque
// value handed to the browser; the row is the server-side source of truth.
type SessionModel struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	SessionToken string    `gorm:"type:varchar(255);unique;not null"`
	UserID       int64     `gorm:"not null;index"`
	Expires      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// VerificationTokenModel mirrors the 'verification_tokens' table.
// Reserved for email-verification flows; nothing reads or writes it yet.
type VerificationTokenModel struct {
	Identifier string    `gorm:"type:varchar(255);primaryKey"`
	Token      string    `gorm:"type:varchar(255);primaryKey"`
	Expires    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (VerificationTokenModel) TableName() string {
	return "verification_tokens"
}
