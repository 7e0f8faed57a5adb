package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"placement_backend/internal/logger"
	"placement_backend/internal/storage"
	"placement_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadPurpose is the functional category of an uploaded file. It determines
// the validation rules and the storage subtree.
type UploadPurpose string

const (
	PurposeResume       UploadPurpose = "resume"
	PurposeJobImage     UploadPurpose = "job_image"
	PurposeStudentPhoto UploadPurpose = "student_photo"
)

const (
	maxResumeSize = 5 * 1024 * 1024
	maxImageSize  = 2 * 1024 * 1024

	// legacyRoot is the obsolete flat uploads prefix some historical
	// references still carry.
	legacyRoot = "uploads/"
)

type purposeRule struct {
	Subdir      string
	AllowedExts []string
	MaxSize     int64
}

var purposeRules = map[UploadPurpose]purposeRule{
	PurposeResume: {
		Subdir:      "resumes",
		AllowedExts: []string{".pdf", ".doc", ".docx", ".jpeg"},
		MaxSize:     maxResumeSize,
	},
	PurposeJobImage: {
		Subdir:      "job-images",
		AllowedExts: []string{".jpg", ".jpeg", ".png", ".gif"},
		MaxSize:     maxImageSize,
	},
	PurposeStudentPhoto: {
		Subdir:      "student-photos",
		AllowedExts: []string{".jpg", ".jpeg", ".png"},
		MaxSize:     maxImageSize,
	},
}

// PurposeSubdirs lists every purpose subtree; the app ensures they exist at boot.
func PurposeSubdirs() []string {
	dirs := make([]string, 0, len(purposeRules))
	for _, rule := range purposeRules {
		dirs = append(dirs, rule.Subdir)
	}
	return dirs
}

// FileUpload is an incoming file stream with its declared name and size.
type FileUpload struct {
	Name   string
	Size   int64
	Reader io.Reader
}

type UploadService interface {
	// Accept validates the upload against the purpose's rules, stores it
	// under the purpose subtree and returns the canonical stored reference
	// ("<subdir>/<generated-name>"). Nothing is written on a rejected upload.
	Accept(ctx context.Context, purpose UploadPurpose, upload *FileUpload) (string, error)

	// Resolve maps a stored reference back to the file content. References
	// recorded under any historical format (bare filename, legacy flat
	// uploads path, purpose-subtree path) are tried in order; a miss on all
	// candidates is a not-found error.
	Resolve(ctx context.Context, purpose UploadPurpose, ref string) (io.ReadCloser, error)
}

type uploadService struct {
	storage storage.Storage
}

func NewUploadService(storage storage.Storage) UploadService {
	return &uploadService{storage: storage}
}

func (s *uploadService) Accept(ctx context.Context, purpose UploadPurpose, upload *FileUpload) (string, error) {
	rule, ok := purposeRules[purpose]
	if !ok {
		return "", apperrors.NewBadRequestError(fmt.Sprintf("unknown upload purpose: %s", purpose))
	}
	if upload == nil || upload.Reader == nil {
		return "", apperrors.NewBadRequestError("File is required")
	}

	ext := strings.ToLower(filepath.Ext(upload.Name))
	if !extAllowed(ext, rule.AllowedExts) {
		return "", apperrors.ErrInvalidFileType(fmt.Sprintf(
			"Invalid file type %q, allowed: %s", ext, strings.Join(rule.AllowedExts, ", ")))
	}

	if upload.Size > rule.MaxSize {
		return "", apperrors.ErrFileTooLarge(fmt.Sprintf(
			"File exceeds the %d byte limit", rule.MaxSize))
	}

	// Generated names are unique, so concurrent writers into the same
	// subtree can never collide.
	ref := rule.Subdir + "/" + uuid.NewString() + ext

	if err := s.storage.Save(ctx, ref, upload.Reader); err != nil {
		return "", apperrors.InternalError(err)
	}

	logger.CtxDebug(ctx, "stored upload", "purpose", string(purpose), "ref", ref)
	return ref, nil
}

func (s *uploadService) Resolve(ctx context.Context, purpose UploadPurpose, ref string) (io.ReadCloser, error) {
	for _, candidate := range resolveCandidates(purpose, ref) {
		exists, err := s.storage.Exists(ctx, candidate)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if exists {
			return s.storage.Get(ctx, candidate)
		}
	}
	return nil, apperrors.NewNotFoundError("File not found")
}

// resolveCandidates lists the plausible locations for a stored reference, in
// order. The storage root and subtree convention changed over the system's
// history (flat uploads/, then uploads/<purpose>/), and the database still
// holds references in each of the old shapes.
func resolveCandidates(purpose UploadPurpose, ref string) []string {
	rule, ok := purposeRules[purpose]
	if !ok {
		return nil
	}

	ref = filepath.ToSlash(strings.TrimSpace(ref))
	ref = strings.TrimPrefix(ref, "./")
	ref = strings.TrimPrefix(ref, legacyRoot)
	if ref == "" || strings.Contains(ref, "..") {
		return nil
	}

	base := path.Base(ref)

	var candidates []string
	if strings.Contains(ref, "/") {
		// Already a subtree-rooted path; canonical format goes first.
		candidates = append(candidates, ref)
	}
	candidates = append(candidates, rule.Subdir+"/"+base, base)

	return dedup(candidates)
}

func dedup(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

func extAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// Magic-number prefixes for resume content sniffing. Historical resume
// references often carry no reliable extension, so the viewing endpoint
// classifies by leading bytes instead.
var (
	magicPDF  = []byte("%PDF")
	magicJPEG = []byte{0xFF, 0xD8}
	magicDOC  = []byte{0xD0, 0xCF, 0x11, 0xE0}
	magicZIP  = []byte{0x50, 0x4B} // DOCX is a zip container
)

// SniffContentType classifies a file by its leading bytes and returns the
// MIME type with a matching extension for the inline filename. Unknown
// content falls back to an opaque binary type.
func SniffContentType(head []byte) (contentType, ext string) {
	switch {
	case bytes.HasPrefix(head, magicPDF):
		return "application/pdf", ".pdf"
	case bytes.HasPrefix(head, magicJPEG):
		return "image/jpeg", ".jpg"
	case bytes.HasPrefix(head, magicDOC):
		return "application/msword", ".doc"
	case bytes.HasPrefix(head, magicZIP):
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document", ".docx"
	default:
		return "application/octet-stream", ""
	}
}
