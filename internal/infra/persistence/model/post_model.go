package model

import "time"

// PostModel mirrors the 'posts' table. AuthorID is nullable so posts survive
// author deletion.
type PostModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	AuthorID  *int64 `gorm:"index"`
	Title     string `gorm:"type:varchar(255);not null"`
	Body      string `gorm:"type:text;not null"`
	Published bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
