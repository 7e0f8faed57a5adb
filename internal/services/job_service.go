package services

import (
	"context"

	"placement_backend/internal/logger"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"
)

type JobService interface {
	Create(ctx context.Context, req *dto.CreateJobRequest, image *FileUpload) (*models.Job, error)
	List(ctx context.Context) ([]models.Job, error)
	Get(ctx context.Context, id uint) (*models.Job, error)
	Delete(ctx context.Context, id uint) error
}

type jobService struct {
	jobRepo       repositories.JobRepository
	uploadService UploadService
}

func NewJobService(jobRepo repositories.JobRepository, uploadService UploadService) JobService {
	return &jobService{
		jobRepo:       jobRepo,
		uploadService: uploadService,
	}
}

func (s *jobService) Create(ctx context.Context, req *dto.CreateJobRequest, image *FileUpload) (*models.Job, error) {
	job := &models.Job{
		Title:          req.Title,
		Company:        req.Company,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Location:       req.Location,
		Type:           models.JobType(req.Type),
		Salary:         req.Salary,
		ContactDetails: req.ContactDetails,
	}

	// The image is optional; a posting without one renders with a null
	// reference and no file fetch.
	if image != nil {
		ref, err := s.uploadService.Accept(ctx, PurposeJobImage, image)
		if err != nil {
			return nil, err
		}
		job.ImagePath = ref
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job created", "job_id", job.ID, "title", job.Title)
	return job, nil
}

func (s *jobService) List(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *jobService) Get(ctx context.Context, id uint) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Delete cascades to dependent applications. Upload files are deliberately
// left in place (no orphan cleanup).
func (s *jobService) Delete(ctx context.Context, id uint) error {
	if err := s.jobRepo.Delete(id); err != nil {
		if err == repositories.ErrJobNotFound {
			return apperrors.ErrNotFound(err, "Job not found")
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job deleted", "job_id", id)
	return nil
}
