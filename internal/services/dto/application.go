package dto

// SubmitApplicationRequest binds from the multipart application form; the
// resume file part is mandatory and validated by the upload service.
type SubmitApplicationRequest struct {
	JobID uint `form:"jobId" json:"jobId" validate:"required"`
}

// UpdateStatusRequest carries the target status for an admin transition.
// pending is deliberately not an accepted target.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}
