package apperrors

import (
	"net/http"
)

// Factories for domain errors raised by repositories and services.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error, message string) *AppError {
	return Wrap(err, CodeNotFound, "resource", message, http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", message, http.StatusConflict)
}

// ErrInvalidStatus rejects an illegal state transition (409).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// ErrInvalidFileType rejects an upload whose extension is outside the
// purpose's allow-list (400).
func ErrInvalidFileType(message string) *AppError {
	return New(CodeInvalidFileType, "upload", message, http.StatusBadRequest)
}

// ErrFileTooLarge rejects an upload over the purpose's size ceiling (400).
func ErrFileTooLarge(message string) *AppError {
	return New(CodeFileTooLarge, "upload", message, http.StatusBadRequest)
}
