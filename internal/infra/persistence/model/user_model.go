// Package model holds the GORM persistence models mirroring the database schema.
package model

import "time"

// UserModel mirrors the 'users' table. IDs come from a bigserial sequence.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time

	Accounts []AccountModel `gorm:"foreignKey:UserID"`
	Sessions []SessionModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
