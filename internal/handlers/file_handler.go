package handlers

import (
	"io"
	"net/http"
	"strings"

	"placement_backend/internal/services"
	"placement_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler serves stored job images and student photos. Resumes are
// deliberately not reachable here; they go through the admin-only resume
// endpoint.
type FileHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewFileHandler(base *BaseHandler, uploadService services.UploadService) *FileHandler {
	return &FileHandler{BaseHandler: base, uploadService: uploadService}
}

var servablePurposes = map[string]services.UploadPurpose{
	"job-images":     services.PurposeJobImage,
	"student-photos": services.PurposeStudentPhoto,
}

// Serve handles GET <base>/*filepath. The first path segment names the
// purpose subtree; the rest is the stored reference, which may be in any
// historical format.
func (h *FileHandler) Serve(c *gin.Context) {
	raw := strings.TrimPrefix(c.Param("filepath"), "/")

	subdir, rest, found := strings.Cut(raw, "/")
	if !found || rest == "" {
		h.HandleServiceError(c, apperrors.NewNotFoundError("File not found"))
		return
	}

	purpose, ok := servablePurposes[subdir]
	if !ok {
		h.HandleServiceError(c, apperrors.NewNotFoundError("File not found"))
		return
	}

	file, err := h.uploadService.Resolve(c.Request.Context(), purpose, subdir+"/"+rest)
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

	c.Header("Content-Type", http.DetectContentType(head))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(head); err != nil {
		return
	}
	_, _ = io.Copy(c.Writer, file)
}
