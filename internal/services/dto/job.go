package dto

// CreateJobRequest binds from multipart form fields; the optional image file
// part is handled separately by the upload service.
type CreateJobRequest struct {
	Title          string `form:"title" json:"title" validate:"required"`
	Company        string `form:"company" json:"company" validate:"required"`
	Description    string `form:"description" json:"description" validate:"required"`
	Requirements   string `form:"requirements" json:"requirements" validate:"required"`
	Location       string `form:"location" json:"location" validate:"required"`
	Type           string `form:"type" json:"type" validate:"required,oneof=fulltime internship"`
	Salary         string `form:"salary" json:"salary"`
	ContactDetails string `form:"contactDetails" json:"contactDetails"`
}
