package repositories

import (
	"errors"

	"placement_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id uint) (*models.Application, error)
	FindByIDWithDetails(id uint) (*models.Application, error)
	FindByUser(userID uint) ([]models.Application, error)
	FindByJob(jobID uint) ([]models.Application, error)
	FindAllWithDetails() ([]models.Application, error)
	UpdateStatusIfPending(id uint, status models.ApplicationStatus) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	return r.db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByIDWithDetails(id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("User").Preload("Job").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByUser(userID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Where("user_id = ?", userID).
		Order("applied_at DESC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByJob(jobID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("User").Where("job_id = ?", jobID).
		Order("applied_at DESC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindAllWithDetails() ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("User").Preload("Job").
		Order("job_id, applied_at DESC").Find(&applications).Error
	return applications, err
}

// UpdateStatusIfPending performs the transition as a single conditional
// write. Two admins racing on the same pending application cannot both win:
// the loser sees zero rows affected.
func (r *ApplicationRepositoryImpl) UpdateStatusIfPending(id uint, status models.ApplicationStatus) (int64, error) {
	res := r.db.Model(&models.Application{}).
		Where("id = ? AND status = ?", id, models.ApplicationStatusPending).
		Update("status", status)
	return res.RowsAffected, res.Error
}
