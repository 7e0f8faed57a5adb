package handlers

import (
	"mime/multipart"

	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"jobs": jobs})
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.jobService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"job": job})
}

// Create accepts a multipart form with the posting fields plus an optional
// "image" file part.
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	image, err := formFileUpload(c, "image")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if image != nil {
		defer image.close()
	}

	job, svcErr := h.jobService.Create(c.Request.Context(), &req, image.fileUpload())
	if svcErr != nil {
		h.HandleServiceError(c, svcErr)
		return
	}
	h.Created(c, gin.H{"job": job})
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Job deleted"})
}

// openedUpload pairs an opened multipart file with its upload descriptor so
// handlers can defer the close.
type openedUpload struct {
	file   multipart.File
	upload services.FileUpload
}

func (o *openedUpload) fileUpload() *services.FileUpload {
	if o == nil {
		return nil
	}
	return &o.upload
}

func (o *openedUpload) close() {
	if o != nil && o.file != nil {
		o.file.Close()
	}
}

// formFileUpload opens the named file part. A missing part returns (nil, nil);
// services decide whether the file was mandatory.
func formFileUpload(c *gin.Context, field string) (*openedUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.NewBadRequestError("Failed to read uploaded file")
	}

	return &openedUpload{
		file: file,
		upload: services.FileUpload{
			Name:   header.Filename,
			Size:   header.Size,
			Reader: file,
		},
	}, nil
}
