package services

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"placement_backend/internal/storage"
	"placement_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploadService(t *testing.T) (UploadService, *storage.LocalStorage, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	for _, sub := range PurposeSubdirs() {
		require.NoError(t, store.EnsureDir(sub))
	}

	return NewUploadService(store), store, dir
}

func countStoredFiles(t *testing.T, root string) int {
	t.Helper()

	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	require.NoError(t, err)
	return count
}

func TestAcceptStoresUnderPurposeSubtree(t *testing.T) {
	svc, store, _ := newTestUploadService(t)

	ref, err := svc.Accept(context.Background(), PurposeResume, &FileUpload{
		Name:   "My Resume.PDF",
		Size:   42,
		Reader: strings.NewReader("%PDF-1.4 fake content"),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "resumes/"), "ref %q should live under resumes/", ref)
	assert.True(t, strings.HasSuffix(ref, ".pdf"), "ref %q should keep a lowercased extension", ref)

	exists, err := store.Exists(context.Background(), ref)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAcceptRejectsDisallowedExtensionBeforeWriting(t *testing.T) {
	svc, _, dir := newTestUploadService(t)

	_, err := svc.Accept(context.Background(), PurposeResume, &FileUpload{
		Name:   "malware.exe",
		Size:   10,
		Reader: strings.NewReader("MZ"),
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidFileType, appErr.Code)

	assert.Equal(t, 0, countStoredFiles(t, dir), "a rejected upload must leave no file behind")
}

func TestAcceptSizeBoundary(t *testing.T) {
	svc, _, dir := newTestUploadService(t)
	limit := int64(5 * 1024 * 1024)

	// A file at exactly the ceiling is accepted.
	_, err := svc.Accept(context.Background(), PurposeResume, &FileUpload{
		Name:   "at-limit.pdf",
		Size:   limit,
		Reader: strings.NewReader("%PDF"),
	})
	require.NoError(t, err)

	// One byte over is rejected, and nothing new is written.
	stored := countStoredFiles(t, dir)
	_, err = svc.Accept(context.Background(), PurposeResume, &FileUpload{
		Name:   "over-limit.pdf",
		Size:   limit + 1,
		Reader: strings.NewReader("%PDF"),
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeFileTooLarge, appErr.Code)
	assert.Equal(t, stored, countStoredFiles(t, dir))
}

func TestAcceptImagePurposesUseSmallerLimit(t *testing.T) {
	svc, _, _ := newTestUploadService(t)

	_, err := svc.Accept(context.Background(), PurposeJobImage, &FileUpload{
		Name:   "banner.png",
		Size:   2*1024*1024 + 1,
		Reader: strings.NewReader("png"),
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeFileTooLarge, appErr.Code)

	// .pdf is a resume extension, not an image one.
	_, err = svc.Accept(context.Background(), PurposeStudentPhoto, &FileUpload{
		Name:   "photo.pdf",
		Size:   10,
		Reader: strings.NewReader("%PDF"),
	})
	require.Error(t, err)
}

func TestResolveHistoricalReferenceFormats(t *testing.T) {
	svc, store, _ := newTestUploadService(t)

	content := "%PDF stored resume"
	require.NoError(t, store.Save(context.Background(), "resumes/abc123.pdf", strings.NewReader(content)))

	refs := []string{
		"resumes/abc123.pdf",         // canonical subtree path
		"uploads/resumes/abc123.pdf", // legacy root-relative path
		"abc123.pdf",                 // bare filename
		"./resumes/abc123.pdf",       // dot-relative variant
		"uploads/abc123.pdf",         // legacy flat layout
	}
	for _, ref := range refs {
		t.Run(ref, func(t *testing.T) {
			rc, err := svc.Resolve(context.Background(), PurposeResume, ref)
			require.NoError(t, err)
			defer rc.Close()

			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, content, string(data))
		})
	}
}

func TestResolvePrefersCanonicalOverBareCollision(t *testing.T) {
	svc, store, dir := newTestUploadService(t)

	require.NoError(t, store.Save(context.Background(), "resumes/dup.pdf", strings.NewReader("subtree copy")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dup.pdf"), []byte("flat copy"), 0o644))

	rc, err := svc.Resolve(context.Background(), PurposeResume, "resumes/dup.pdf")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "subtree copy", string(data))
}

func TestResolveMissingAndMalformedRefs(t *testing.T) {
	svc, _, _ := newTestUploadService(t)

	for _, ref := range []string{"nope.pdf", "", "   ", "../etc/passwd", "resumes/../../secret"} {
		_, err := svc.Resolve(context.Background(), PurposeResume, ref)
		require.Error(t, err, "ref %q", ref)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.HTTPCode)
	}
}

func TestSniffContentType(t *testing.T) {
	tests := []struct {
		name     string
		head     []byte
		wantType string
		wantExt  string
	}{
		{"pdf", []byte("%PDF-1.7 ..."), "application/pdf", ".pdf"},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, "image/jpeg", ".jpg"},
		{"legacy word", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1}, "application/msword", ".doc"},
		{"docx", []byte{0x50, 0x4B, 0x03, 0x04}, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", ".docx"},
		{"unknown", []byte("hello"), "application/octet-stream", ""},
		{"empty", nil, "application/octet-stream", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotExt := SniffContentType(tt.head)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantExt, gotExt)
		})
	}
}
