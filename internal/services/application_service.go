package services

import (
	"context"

	"placement_backend/internal/email"
	"placement_backend/internal/logger"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/pkg/apperrors"
)

// JobApplications groups a job's applications for the admin dashboard.
type JobApplications struct {
	Job          *models.Job          `json:"job"`
	Applications []models.Application `json:"applications"`
}

type ApplicationService interface {
	Submit(ctx context.Context, studentID, jobID uint, resume *FileUpload) (*models.Application, error)
	ListForStudent(ctx context.Context, studentID uint) ([]models.Application, error)
	ListForJob(ctx context.Context, jobID uint) ([]models.Application, error)
	ListAllGrouped(ctx context.Context) ([]JobApplications, error)
	GetWithDetails(ctx context.Context, id uint) (*models.Application, error)
	SetStatus(ctx context.Context, id uint, status models.ApplicationStatus) (*models.Application, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	uploadService   UploadService
	emailProvider   email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	uploadService UploadService,
	emailProvider email.Provider,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		uploadService:   uploadService,
		emailProvider:   emailProvider,
	}
}

func (s *applicationService) Submit(ctx context.Context, studentID, jobID uint, resume *FileUpload) (*models.Application, error) {
	if resume == nil {
		return nil, apperrors.NewBadRequestError("Resume is required")
	}

	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resumeRef, err := s.uploadService.Accept(ctx, PurposeResume, resume)
	if err != nil {
		return nil, err
	}

	application := &models.Application{
		UserID:     studentID,
		JobID:      jobID,
		Status:     models.ApplicationStatusPending,
		ResumePath: resumeRef,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application submitted",
		"application_id", application.ID, "job_id", jobID, "user_id", studentID)
	return application, nil
}

// ListForStudent filters by owner server-side; the caller-supplied scoping is
// never trusted on its own.
func (s *applicationService) ListForStudent(ctx context.Context, studentID uint) ([]models.Application, error) {
	applications, err := s.applicationRepo.FindByUser(studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	owned := applications[:0]
	for _, a := range applications {
		if a.UserID == studentID {
			owned = append(owned, a)
		}
	}
	return owned, nil
}

func (s *applicationService) ListForJob(ctx context.Context, jobID uint) ([]models.Application, error) {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	applications, err := s.applicationRepo.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

func (s *applicationService) ListAllGrouped(ctx context.Context) ([]JobApplications, error) {
	applications, err := s.applicationRepo.FindAllWithDetails()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	index := make(map[uint]int)
	grouped := make([]JobApplications, 0)
	for _, a := range applications {
		if a.Job == nil {
			// Dangling row from a pre-cascade deletion; hide it.
			continue
		}
		i, ok := index[a.JobID]
		if !ok {
			i = len(grouped)
			index[a.JobID] = i
			grouped = append(grouped, JobApplications{Job: a.Job})
		}
		a.Job = nil
		grouped[i].Applications = append(grouped[i].Applications, a)
	}
	return grouped, nil
}

func (s *applicationService) GetWithDetails(ctx context.Context, id uint) (*models.Application, error) {
	application, err := s.applicationRepo.FindByIDWithDetails(id)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err, "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

// SetStatus moves a pending application to a terminal status with a single
// conditional write, so two admins acting on the same row cannot both win.
func (s *applicationService) SetStatus(ctx context.Context, id uint, status models.ApplicationStatus) (*models.Application, error) {
	if !models.ApplicationStatusPending.CanTransition(status) {
		return nil, apperrors.ErrInvalidStatus("application",
			"Status must be 'accepted' or 'rejected'")
	}

	rows, err := s.applicationRepo.UpdateStatusIfPending(id, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if rows == 0 {
		// Either the row is missing or it is already terminal.
		existing, err := s.applicationRepo.FindByID(id)
		if err != nil {
			if err == repositories.ErrApplicationNotFound {
				return nil, apperrors.ErrNotFound(err, "Application not found")
			}
			return nil, apperrors.InternalError(err)
		}
		return nil, apperrors.ErrInvalidStatus("application",
			"Application status is already "+string(existing.Status))
	}

	application, err := s.applicationRepo.FindByIDWithDetails(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "application status updated",
		"application_id", id, "status", string(status))

	s.notifyApplicant(ctx, application, status)
	return application, nil
}

// notifyApplicant sends the status email best-effort; a provider failure is
// logged, never surfaced to the admin who made the transition.
func (s *applicationService) notifyApplicant(ctx context.Context, application *models.Application, status models.ApplicationStatus) {
	if application.User == nil || application.Job == nil || application.User.Email == "" {
		return
	}

	subject, body := email.StatusNotification(
		application.User.FullName,
		application.Job.Title,
		application.Job.Company,
		string(status),
	)
	msg := &email.Email{
		To:      []string{application.User.Email},
		Subject: subject,
		Body:    body,
	}

	go func() {
		if err := s.emailProvider.Send(msg); err != nil {
			logger.WithError(err).Error("failed to send status notification",
				"application_id", application.ID)
		}
	}()
}
