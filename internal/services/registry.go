package services

// ServiceContainer bundles every service the handlers need.
type ServiceContainer struct {
	AuthService        AuthService
	JobService         JobService
	ApplicationService ApplicationService
	DetailsService     DetailsService
	UploadService      UploadService
}
