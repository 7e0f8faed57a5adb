package handlers

import "placement_backend/internal/services"

// AppHandlers collects every handler for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Details     *DetailsHandler
	File        *FileHandler
}

func NewAppHandlers(svcs *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler()
	return &AppHandlers{
		Auth:        NewAuthHandler(base, svcs.AuthService),
		Job:         NewJobHandler(base, svcs.JobService),
		Application: NewApplicationHandler(base, svcs.ApplicationService, svcs.UploadService),
		Details:     NewDetailsHandler(base, svcs.DetailsService),
		File:        NewFileHandler(base, svcs.UploadService),
	}
}
