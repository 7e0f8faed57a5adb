package models

import "time"

// Application is a student's submission against exactly one job.
// ResumePath is mandatory; Status starts at pending and moves at most once,
// to accepted or rejected.
type Application struct {
	BaseModel
	UserID     uint              `gorm:"not null;index" json:"userId"`
	JobID      uint              `gorm:"not null;index" json:"jobId"`
	Status     ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ResumePath string            `gorm:"not null" json:"resumePath"`
	AppliedAt  time.Time         `gorm:"default:now()" json:"appliedAt"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
