package repositories

import (
	"errors"

	"placement_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDetailsNotFound = errors.New("details not found")

type DetailsRepository interface {
	FindAcademicByUser(userID uint) (*models.AcademicDetails, error)
	UpsertAcademic(details *models.AcademicDetails) error
	FindPersonalByUser(userID uint) (*models.PersonalDetails, error)
	UpsertPersonal(details *models.PersonalDetails) error
}

type DetailsRepositoryImpl struct {
	db *gorm.DB
}

func NewDetailsRepository(db *gorm.DB) DetailsRepository {
	return &DetailsRepositoryImpl{db: db}
}

func (r *DetailsRepositoryImpl) FindAcademicByUser(userID uint) (*models.AcademicDetails, error) {
	var details models.AcademicDetails
	err := r.db.First(&details, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetailsNotFound
		}
		return nil, err
	}
	return &details, nil
}

// UpsertAcademic creates the row lazily on first update; the unique index on
// user_id makes subsequent updates conflict-updates instead of duplicates.
func (r *DetailsRepositoryImpl) UpsertAcademic(details *models.AcademicDetails) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"course", "branch", "semester", "academic_year", "percentage",
			"registration_pin", "previous_semester_grades", "backlogs", "updated_at",
		}),
	}).Create(details).Error
}

func (r *DetailsRepositoryImpl) FindPersonalByUser(userID uint) (*models.PersonalDetails, error) {
	var details models.PersonalDetails
	err := r.db.First(&details, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetailsNotFound
		}
		return nil, err
	}
	return &details, nil
}

func (r *DetailsRepositoryImpl) UpsertPersonal(details *models.PersonalDetails) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"phone", "email", "address", "linkedin", "github",
			"social_media", "photo_path", "updated_at",
		}),
	}).Create(details).Error
}
