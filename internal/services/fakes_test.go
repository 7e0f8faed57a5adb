package services

import (
	"placement_backend/internal/email"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
)

// In-memory repository fakes. They mirror the persistence semantics the
// services rely on: duplicate detection, not-found sentinels and the
// conditional status update.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return repositories.ErrUserAlreadyExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByRole(role models.UserRole) ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		if user.Role == role {
			out = append(out, *user)
		}
	}
	return out, nil
}

type fakeJobRepo struct {
	jobs   map[uint]*models.Job
	nextID uint
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uint]*models.Job), nextID: 1}
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	job.ID = r.nextID
	r.nextID++
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) FindByID(id uint) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) FindAll() ([]models.Job, error) {
	var out []models.Job
	for _, job := range r.jobs {
		out = append(out, *job)
	}
	return out, nil
}

func (r *fakeJobRepo) Delete(id uint) error {
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type fakeApplicationRepo struct {
	applications map[uint]*models.Application
	users        *fakeUserRepo
	jobs         *fakeJobRepo
	nextID       uint
}

func newFakeApplicationRepo(users *fakeUserRepo, jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[uint]*models.Application),
		users:        users,
		jobs:         jobs,
		nextID:       1,
	}
}

func (r *fakeApplicationRepo) Create(application *models.Application) error {
	application.ID = r.nextID
	r.nextID++
	copied := *application
	r.applications[application.ID] = &copied
	return nil
}

func (r *fakeApplicationRepo) FindByID(id uint) (*models.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *application
	return &copied, nil
}

func (r *fakeApplicationRepo) FindByIDWithDetails(id uint) (*models.Application, error) {
	application, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	r.preload(application)
	return application, nil
}

func (r *fakeApplicationRepo) FindByUser(userID uint) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.UserID == userID {
			copied := *a
			r.preload(&copied)
			out = append(out, copied)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByJob(jobID uint) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.JobID == jobID {
			copied := *a
			r.preload(&copied)
			out = append(out, copied)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindAllWithDetails() ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		copied := *a
		r.preload(&copied)
		out = append(out, copied)
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatusIfPending(id uint, status models.ApplicationStatus) (int64, error) {
	application, ok := r.applications[id]
	if !ok || application.Status != models.ApplicationStatusPending {
		return 0, nil
	}
	application.Status = status
	return 1, nil
}

func (r *fakeApplicationRepo) preload(application *models.Application) {
	if r.users != nil {
		if user, err := r.users.FindByID(application.UserID); err == nil {
			application.User = user
		}
	}
	if r.jobs != nil {
		if job, err := r.jobs.FindByID(application.JobID); err == nil {
			application.Job = job
		}
	}
}

type fakeDetailsRepo struct {
	academic map[uint]*models.AcademicDetails
	personal map[uint]*models.PersonalDetails
}

func newFakeDetailsRepo() *fakeDetailsRepo {
	return &fakeDetailsRepo{
		academic: make(map[uint]*models.AcademicDetails),
		personal: make(map[uint]*models.PersonalDetails),
	}
}

func (r *fakeDetailsRepo) FindAcademicByUser(userID uint) (*models.AcademicDetails, error) {
	details, ok := r.academic[userID]
	if !ok {
		return nil, repositories.ErrDetailsNotFound
	}
	copied := *details
	return &copied, nil
}

func (r *fakeDetailsRepo) UpsertAcademic(details *models.AcademicDetails) error {
	copied := *details
	r.academic[details.UserID] = &copied
	return nil
}

func (r *fakeDetailsRepo) FindPersonalByUser(userID uint) (*models.PersonalDetails, error) {
	details, ok := r.personal[userID]
	if !ok {
		return nil, repositories.ErrDetailsNotFound
	}
	copied := *details
	return &copied, nil
}

func (r *fakeDetailsRepo) UpsertPersonal(details *models.PersonalDetails) error {
	copied := *details
	r.personal[details.UserID] = &copied
	return nil
}

// recordingEmailProvider captures sent messages for assertions.
type recordingEmailProvider struct {
	sent chan string
}

func newRecordingEmailProvider() *recordingEmailProvider {
	return &recordingEmailProvider{sent: make(chan string, 8)}
}

func (p *recordingEmailProvider) Send(e *email.Email) error {
	p.sent <- e.Subject
	return nil
}
