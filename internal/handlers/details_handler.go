package handlers

import (
	"strconv"

	"placement_backend/internal/auth"
	"placement_backend/internal/middleware"
	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type DetailsHandler struct {
	*BaseHandler
	detailsService services.DetailsService
}

func NewDetailsHandler(base *BaseHandler, detailsService services.DetailsService) *DetailsHandler {
	return &DetailsHandler{BaseHandler: base, detailsService: detailsService}
}

// targetUserID decides whose record the request addresses. By default it is
// the principal's own; admins may address any user via ?userId=. A student
// naming someone else is refused with Forbidden before any lookup happens, so
// the response cannot reveal whether the target exists.
func (h *DetailsHandler) targetUserID(c *gin.Context) (uint, bool) {
	user := middleware.CurrentUser(c)

	raw := c.Query("userId")
	if raw == "" {
		return user.ID, true
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid userId parameter"))
		return 0, false
	}

	if err := auth.AuthorizeOwner(user, uint(id)); err != nil {
		h.HandleServiceError(c, apperrors.NewForbiddenError("Access denied"))
		return 0, false
	}
	return uint(id), true
}

func (h *DetailsHandler) GetAcademic(c *gin.Context) {
	userID, ok := h.targetUserID(c)
	if !ok {
		return
	}

	details, err := h.detailsService.GetAcademic(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"academicDetails": details})
}

func (h *DetailsHandler) UpsertAcademic(c *gin.Context) {
	userID, ok := h.targetUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertAcademicDetailsRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	details, err := h.detailsService.UpsertAcademic(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"academicDetails": details})
}

func (h *DetailsHandler) GetPersonal(c *gin.Context) {
	userID, ok := h.targetUserID(c)
	if !ok {
		return
	}

	details, err := h.detailsService.GetPersonal(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"personalDetails": details})
}

// UpsertPersonal accepts a multipart form with the profile fields plus an
// optional "photo" file part. Omitting the photo keeps the stored one.
func (h *DetailsHandler) UpsertPersonal(c *gin.Context) {
	userID, ok := h.targetUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertPersonalDetailsRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	photo, err := formFileUpload(c, "photo")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if photo != nil {
		defer photo.close()
	}

	details, svcErr := h.detailsService.UpsertPersonal(
		c.Request.Context(), userID, &req, photo.fileUpload())
	if svcErr != nil {
		h.HandleServiceError(c, svcErr)
		return
	}
	h.OK(c, gin.H{"personalDetails": details})
}

// ListStudents returns every student account, for the admin directory.
func (h *DetailsHandler) ListStudents(c *gin.Context) {
	students, err := h.detailsService.ListStudents(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"students": students})
}

// GetStudentRecord returns one student's full profile aggregate.
func (h *DetailsHandler) GetStudentRecord(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.detailsService.GetStudentRecord(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, record)
}
