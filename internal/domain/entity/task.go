package entity

import "time"

// Task is a single todo item. OwnerID links it to the account that created it,
// but the column is nullable and nothing enforces ownership on deletion; any
// authenticated caller may delete any task.
type Task struct {
	ID          int64     // Generated primary key.
	Description string    // What needs doing; never empty at creation time.
	OwnerID     *int64    // Creating account's ID, nil when the creator could not be resolved.
	CreatedAt   time.Time // Timestamp of when this task was created.
}
