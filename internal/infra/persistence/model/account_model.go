package model

import "time"

// AccountModel mirrors the 'account' table. IDs come from a bigserial sequence.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type AccountModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Tasks []TaskModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "account"
}
