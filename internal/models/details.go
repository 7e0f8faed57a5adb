package models

import "time"

// AcademicDetails is a one-to-one extension of a student user, created lazily
// on first update. All fields except UserID are optional.
type AcademicDetails struct {
	BaseModel
	UserID                 uint      `gorm:"uniqueIndex;not null" json:"userId"`
	Course                 string    `json:"course"`
	Branch                 string    `json:"branch"`
	Semester               string    `json:"semester"`
	AcademicYear           string    `json:"academicYear"`
	Percentage             string    `json:"percentage"`
	RegistrationPin        string    `json:"registrationPin"`
	PreviousSemesterGrades string    `json:"previousSemesterGrades"`
	Backlogs               string    `json:"backlogs"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// PersonalDetails mirrors AcademicDetails for contact and social fields.
// PhotoPath is a stored upload reference (student_photo purpose).
type PersonalDetails struct {
	BaseModel
	UserID      uint      `gorm:"uniqueIndex;not null" json:"userId"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Linkedin    string    `json:"linkedin"`
	Github      string    `json:"github"`
	SocialMedia string    `json:"socialMedia"`
	PhotoPath   string    `json:"photoPath"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
