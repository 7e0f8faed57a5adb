package services

import (
	"context"

	"placement_backend/internal/logger"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"
)

// StudentRecord is the aggregate view the admin lookup pages render.
type StudentRecord struct {
	User            *models.User            `json:"user"`
	AcademicDetails *models.AcademicDetails `json:"academicDetails"`
	PersonalDetails *models.PersonalDetails `json:"personalDetails"`
}

type DetailsService interface {
	GetAcademic(ctx context.Context, userID uint) (*models.AcademicDetails, error)
	UpsertAcademic(ctx context.Context, userID uint, req *dto.UpsertAcademicDetailsRequest) (*models.AcademicDetails, error)
	GetPersonal(ctx context.Context, userID uint) (*models.PersonalDetails, error)
	UpsertPersonal(ctx context.Context, userID uint, req *dto.UpsertPersonalDetailsRequest, photo *FileUpload) (*models.PersonalDetails, error)
	ListStudents(ctx context.Context) ([]models.User, error)
	GetStudentRecord(ctx context.Context, userID uint) (*StudentRecord, error)
}

type detailsService struct {
	detailsRepo   repositories.DetailsRepository
	userRepo      repositories.UserRepository
	uploadService UploadService
}

func NewDetailsService(
	detailsRepo repositories.DetailsRepository,
	userRepo repositories.UserRepository,
	uploadService UploadService,
) DetailsService {
	return &detailsService{
		detailsRepo:   detailsRepo,
		userRepo:      userRepo,
		uploadService: uploadService,
	}
}

func (s *detailsService) GetAcademic(ctx context.Context, userID uint) (*models.AcademicDetails, error) {
	details, err := s.detailsRepo.FindAcademicByUser(userID)
	if err != nil {
		if err == repositories.ErrDetailsNotFound {
			return nil, apperrors.ErrNotFound(err, "Academic details not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return details, nil
}

func (s *detailsService) UpsertAcademic(ctx context.Context, userID uint, req *dto.UpsertAcademicDetailsRequest) (*models.AcademicDetails, error) {
	details := &models.AcademicDetails{
		UserID:                 userID,
		Course:                 req.Course,
		Branch:                 req.Branch,
		Semester:               req.Semester,
		AcademicYear:           req.AcademicYear,
		Percentage:             req.Percentage,
		RegistrationPin:        req.RegistrationPin,
		PreviousSemesterGrades: req.PreviousSemesterGrades,
		Backlogs:               req.Backlogs,
	}

	if err := s.detailsRepo.UpsertAcademic(details); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "academic details updated", "user_id", userID)
	return s.GetAcademic(ctx, userID)
}

func (s *detailsService) GetPersonal(ctx context.Context, userID uint) (*models.PersonalDetails, error) {
	details, err := s.detailsRepo.FindPersonalByUser(userID)
	if err != nil {
		if err == repositories.ErrDetailsNotFound {
			return nil, apperrors.ErrNotFound(err, "Personal details not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return details, nil
}

func (s *detailsService) UpsertPersonal(ctx context.Context, userID uint, req *dto.UpsertPersonalDetailsRequest, photo *FileUpload) (*models.PersonalDetails, error) {
	details := &models.PersonalDetails{
		UserID:      userID,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Linkedin:    req.Linkedin,
		Github:      req.Github,
		SocialMedia: req.SocialMedia,
	}

	// An update without a new photo keeps the existing reference.
	if existing, err := s.detailsRepo.FindPersonalByUser(userID); err == nil {
		details.PhotoPath = existing.PhotoPath
	}

	if photo != nil {
		ref, err := s.uploadService.Accept(ctx, PurposeStudentPhoto, photo)
		if err != nil {
			return nil, err
		}
		details.PhotoPath = ref
	}

	if err := s.detailsRepo.UpsertPersonal(details); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "personal details updated", "user_id", userID)
	return s.GetPersonal(ctx, userID)
}

func (s *detailsService) ListStudents(ctx context.Context) ([]models.User, error) {
	students, err := s.userRepo.FindByRole(models.UserRoleStudent)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return students, nil
}

// GetStudentRecord aggregates a student's user row with both detail
// extensions; absent details stay null rather than erroring the lookup.
func (s *detailsService) GetStudentRecord(ctx context.Context, userID uint) (*StudentRecord, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err, "Student not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleStudent {
		return nil, apperrors.NewNotFoundError("Student not found")
	}

	record := &StudentRecord{User: user}

	if academic, err := s.detailsRepo.FindAcademicByUser(userID); err == nil {
		record.AcademicDetails = academic
	} else if err != repositories.ErrDetailsNotFound {
		return nil, apperrors.InternalError(err)
	}

	if personal, err := s.detailsRepo.FindPersonalByUser(userID); err == nil {
		record.PersonalDetails = personal
	} else if err != repositories.ErrDetailsNotFound {
		return nil, apperrors.InternalError(err)
	}

	return record, nil
}
