package model

import "time"

// Task is a posted bounty. PostedBy holds the identity-provider user id of
// the poster; it is opaque to this service.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Reward      int       `gorm:"not null" json:"reward"`
	Deadline    time.Time `gorm:"not null" json:"deadline"`
	PostedBy    string    `gorm:"column:posted_by;not null" json:"postedBy"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Task) TableName() string {
	return "tasks"
}
