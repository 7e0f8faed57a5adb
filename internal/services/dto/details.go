package dto

// UpsertAcademicDetailsRequest carries the academic profile fields. All are
// optional; an empty update still creates the row and bumps UpdatedAt.
type UpsertAcademicDetailsRequest struct {
	Course                 string `form:"course" json:"course"`
	Branch                 string `form:"branch" json:"branch"`
	Semester               string `form:"semester" json:"semester"`
	AcademicYear           string `form:"academicYear" json:"academicYear"`
	Percentage             string `form:"percentage" json:"percentage"`
	RegistrationPin        string `form:"registrationPin" json:"registrationPin"`
	PreviousSemesterGrades string `form:"previousSemesterGrades" json:"previousSemesterGrades"`
	Backlogs               string `form:"backlogs" json:"backlogs"`
}

// UpsertPersonalDetailsRequest binds from multipart when a photo accompanies
// the update; the photo part itself goes through the upload service.
type UpsertPersonalDetailsRequest struct {
	Phone       string `form:"phone" json:"phone"`
	Email       string `form:"email" json:"email" validate:"omitempty,email"`
	Address     string `form:"address" json:"address"`
	Linkedin    string `form:"linkedin" json:"linkedin"`
	Github      string `form:"github" json:"github"`
	SocialMedia string `form:"socialMedia" json:"socialMedia"`
}
