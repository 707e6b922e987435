package model

import "time"

// TaskModel mirrors the 'task' table. AccountID is nullable: tasks created
// before the owner column existed have no owner, and the delete path never
// filters on it.
type TaskModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Description string `gorm:"type:text;not null"`
	AccountID   *int64 `gorm:"index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "task"
}
