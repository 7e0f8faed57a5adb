package handlers

import (
	"io"
	"net/http"
	"path"

	"placement_backend/internal/auth"
	"placement_backend/internal/middleware"
	"placement_backend/internal/models"
	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	uploadService      services.UploadService
}

func NewApplicationHandler(
	base *BaseHandler,
	applicationService services.ApplicationService,
	uploadService services.UploadService,
) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		uploadService:      uploadService,
	}
}

// Submit accepts a multipart form with the job ID and a mandatory "resume"
// file part. The applicant is always the session principal.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.SubmitApplicationRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	resume, err := formFileUpload(c, "resume")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if resume != nil {
		defer resume.close()
	}

	application, svcErr := h.applicationService.Submit(
		c.Request.Context(), user.ID, req.JobID, resume.fileUpload())
	if svcErr != nil {
		h.HandleServiceError(c, svcErr)
		return
	}
	h.Created(c, gin.H{"application": application})
}

// ListMine returns the principal's own applications.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	user := middleware.CurrentUser(c)

	applications, err := h.applicationService.ListForStudent(c.Request.Context(), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"applications": applications})
}

// ListAll returns every application grouped by job, for the admin dashboard.
func (h *ApplicationHandler) ListAll(c *gin.Context) {
	grouped, err := h.applicationService.ListAllGrouped(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"jobs": grouped})
}

func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, ok := h.ParseIDParam(c, "jobId")
	if !ok {
		return
	}

	applications, err := h.applicationService.ListForJob(c.Request.Context(), jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"applications": applications})
}

// Get returns one application. Students see only their own rows; for them a
// missing row and a foreign row are both Forbidden, so the response never
// reveals whether an ID exists.
func (h *ApplicationHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	application, err := h.applicationService.GetWithDetails(c.Request.Context(), id)
	if err != nil {
		if appErr, isApp := apperrors.AsAppError(err); isApp &&
			appErr.HTTPCode == http.StatusNotFound && !user.IsAdmin() {
			h.HandleServiceError(c, apperrors.NewForbiddenError("Access denied"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	if err := auth.AuthorizeOwner(user, application.UserID); err != nil {
		h.HandleServiceError(c, apperrors.NewForbiddenError("Access denied"))
		return
	}

	h.OK(c, gin.H{"application": application})
}

// UpdateStatus moves a pending application to accepted or rejected.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.SetStatus(
		c.Request.Context(), id, models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"application": application})
}

// ViewResume streams a stored resume inline. The reference may come from any
// historical storage layout, and the content type is sniffed from leading
// bytes because old references carry unreliable extensions.
func (h *ApplicationHandler) ViewResume(c *gin.Context) {
	// path.Base strips any directory the client smuggles into the parameter.
	filename := path.Base(c.Param("filename"))
	if filename == "" || filename == "." || filename == "/" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid filename"))
		return
	}

	file, err := h.uploadService.Resolve(c.Request.Context(), services.PurposeResume, filename)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer file.Close()

	head := make([]byte, 512)
	n, readErr := io.ReadFull(file, head)
	if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
		h.HandleServiceError(c, apperrors.InternalError(readErr))
		return
	}
	head = head[:n]

	contentType, ext := services.SniffContentType(head)
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", `inline; filename="resume`+ext+`"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(head); err != nil {
		return
	}
	_, _ = io.Copy(c.Writer, file)
}
