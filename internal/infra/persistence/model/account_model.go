package model

// AccountModel mirrors the 'accounts' table. One row is one credential method
// for a user. The column is named "type" in the schema; only the email kind
// carries Email and Password. The OAuth provider columns exist in the schema
// for future use and are intentionally not mapped here.
type AccountModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	UserID   int64  `gorm:"not null;index"`
	Kind     string `gorm:"column:type;type:varchar(50);not null"`
	Email    string `gorm:"type:varchar(255)"`
	Password string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
