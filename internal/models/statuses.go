package models

type UserRole string
type JobType string
type ApplicationStatus string

const (
	UserRoleStudent UserRole = "student"
	UserRoleAdmin   UserRole = "admin"

	JobTypeFulltime   JobType = "fulltime"
	JobTypeInternship JobType = "internship"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ValidRole reports whether the role is one of the defined literals.
func ValidRole(role UserRole) bool {
	return role == UserRoleStudent || role == UserRoleAdmin
}

// ValidApplicationStatus reports whether the status is one of the defined literals.
func ValidApplicationStatus(status ApplicationStatus) bool {
	switch status {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transition.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// CanTransition reports whether an application may move from s to target.
// The only legal transitions are pending -> accepted and pending -> rejected.
func (s ApplicationStatus) CanTransition(target ApplicationStatus) bool {
	if s != ApplicationStatusPending {
		return false
	}
	return target == ApplicationStatusAccepted || target == ApplicationStatusRejected
}
