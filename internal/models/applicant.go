package model

import "time"

// Applicant records one user's application to one task. TaskID may outlive
// the task it references; applicant rows are not cascaded on task deletion.
type Applicant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;not null" json:"userId"`
	TaskID    uint      `gorm:"column:task_id;not null" json:"taskId"`
	AppliedAt time.Time `gorm:"column:applied_at" json:"appliedAt"`
}

func (Applicant) TableName() string {
	return "task_applicants"
}
