package models

import "time"

// Job is a posting created by an admin. ImagePath is a stored upload
// reference (job_image purpose) and may be empty; deleting a job cascades to
// its applications.
type Job struct {
	BaseModel
	Title          string    `gorm:"not null" json:"title"`
	Company        string    `gorm:"not null" json:"company"`
	Description    string    `gorm:"not null" json:"description"`
	Requirements   string    `gorm:"not null" json:"requirements"`
	Location       string    `gorm:"not null" json:"location"`
	Type           JobType   `gorm:"type:varchar(20);not null" json:"type"`
	Salary         string    `json:"salary"`
	ContactDetails string    `json:"contactDetails"`
	ImagePath      string    `json:"imagePath"`
	CreatedAt      time.Time `gorm:"default:now()" json:"createdAt"`
}
