package services

import (
	"context"
	"strings"
	"testing"

	"placement_backend/internal/models"
	"placement_backend/internal/services/dto"
	"placement_backend/internal/storage"
	"placement_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDetailsFixture(t *testing.T) (DetailsService, *fakeUserRepo) {
	t.Helper()

	users := newFakeUserRepo()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	return NewDetailsService(newFakeDetailsRepo(), users, NewUploadService(store)), users
}

func pngUpload(name string) *FileUpload {
	content := "\x89PNG fake image"
	return &FileUpload{Name: name, Size: int64(len(content)), Reader: strings.NewReader(content)}
}

func TestUpsertPersonalKeepsPhotoWhenOmitted(t *testing.T) {
	svc, users := newDetailsFixture(t)

	student := &models.User{Username: "alice", Role: models.UserRoleStudent}
	require.NoError(t, users.Create(student))

	withPhoto, err := svc.UpsertPersonal(context.Background(), student.ID,
		&dto.UpsertPersonalDetailsRequest{Phone: "111"}, pngUpload("me.png"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(withPhoto.PhotoPath, "student-photos/"))

	// A later update without a photo part must not drop the stored reference.
	updated, err := svc.UpsertPersonal(context.Background(), student.ID,
		&dto.UpsertPersonalDetailsRequest{Phone: "222"}, nil)
	require.NoError(t, err)
	assert.Equal(t, withPhoto.PhotoPath, updated.PhotoPath)
	assert.Equal(t, "222", updated.Phone)
}

func TestUpsertAcademicCreatesThenUpdates(t *testing.T) {
	svc, users := newDetailsFixture(t)

	student := &models.User{Username: "alice", Role: models.UserRoleStudent}
	require.NoError(t, users.Create(student))

	created, err := svc.UpsertAcademic(context.Background(), student.ID,
		&dto.UpsertAcademicDetailsRequest{Course: "B.Tech", Semester: "5"})
	require.NoError(t, err)
	assert.Equal(t, "B.Tech", created.Course)

	updated, err := svc.UpsertAcademic(context.Background(), student.ID,
		&dto.UpsertAcademicDetailsRequest{Course: "B.Tech", Semester: "6"})
	require.NoError(t, err)
	assert.Equal(t, "6", updated.Semester)
}

func TestGetStudentRecordAggregates(t *testing.T) {
	svc, users := newDetailsFixture(t)

	student := &models.User{Username: "alice", Role: models.UserRoleStudent}
	require.NoError(t, users.Create(student))

	_, err := svc.UpsertAcademic(context.Background(), student.ID,
		&dto.UpsertAcademicDetailsRequest{Course: "B.Tech"})
	require.NoError(t, err)

	record, err := svc.GetStudentRecord(context.Background(), student.ID)
	require.NoError(t, err)
	require.NotNil(t, record.User)
	require.NotNil(t, record.AcademicDetails)
	assert.Nil(t, record.PersonalDetails, "absent details stay null")
}

func TestGetStudentRecordRejectsNonStudents(t *testing.T) {
	svc, users := newDetailsFixture(t)

	admin := &models.User{Username: "root", Role: models.UserRoleAdmin}
	require.NoError(t, users.Create(admin))

	for _, id := range []uint{admin.ID, 999} {
		_, err := svc.GetStudentRecord(context.Background(), id)
		require.Error(t, err)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.HTTPCode)
	}
}
