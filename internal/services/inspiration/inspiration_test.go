package inspiration

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/annakorobkova/inspira/internal/models"
	"github.com/annakorobkova/inspira/internal/storage"
)

type RepositoryMock struct {
	mock.Mock
}

func (m *RepositoryMock) CreateInspiration(ctx context.Context, insp models.Inspiration) (*models.Inspiration, error) {
	args := m.Called(ctx, insp)
	res, _ := args.Get(0).(*models.Inspiration)
	return res, args.Error(1)
}

func (m *RepositoryMock) ListInspirations(ctx context.Context, userUID string, filter models.Filter) ([]*models.Inspiration, error) {
	args := m.Called(ctx, userUID, filter)
	res, _ := args.Get(0).([]*models.Inspiration)
	return res, args.Error(1)
}

func (m *RepositoryMock) UpdateInspiration(ctx context.Context, userUID, id string, patch models.InspirationPatch) (*models.Inspiration, error) {
	args := m.Called(ctx, userUID, id, patch)
	res, _ := args.Get(0).(*models.Inspiration)
	return res, args.Error(1)
}

func (m *RepositoryMock) DeleteInspiration(ctx context.Context, userUID, id string) error {
	args := m.Called(ctx, userUID, id)
	return args.Error(0)
}

type UploaderMock struct {
	mock.Mock
}

func (m *UploaderMock) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, data, contentType)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Create_WithoutImage(t *testing.T) {
	repo := new(RepositoryMock)
	uploader := new(UploaderMock)
	service := New(repo, uploader, newNoopLogger())

	var stored models.Inspiration
	repo.On("CreateInspiration", mock.Anything, mock.AnythingOfType("models.Inspiration")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(models.Inspiration)
		}).
		Return(&models.Inspiration{ID: "insp-1", ImageURL: ""}, nil).Once()

	insp, err := service.Create(context.Background(), "uid-1", CreateInput{
		Title: "Sunset",
		Tags:  []string{"nature, calm"},
	})
	require.NoError(t, err)
	assert.Equal(t, "insp-1", insp.ID)

	assert.Equal(t, "uid-1", stored.UserUID)
	assert.Equal(t, "", stored.ImageURL)
	assert.Equal(t, []string{"nature", "calm"}, stored.Tags)

	uploader.AssertNotCalled(t, "Upload")
	repo.AssertExpectations(t)
}

func TestService_Create_UploadFailureDegradesToNoImage(t *testing.T) {
	repo := new(RepositoryMock)
	uploader := new(UploaderMock)
	service := New(repo, uploader, newNoopLogger())

	uploader.On("Upload", mock.Anything, []byte("img-bytes"), "image/png").
		Return("", errors.New("store unavailable")).Once()

	var stored models.Inspiration
	repo.On("CreateInspiration", mock.Anything, mock.AnythingOfType("models.Inspiration")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(models.Inspiration)
		}).
		Return(&models.Inspiration{ID: "insp-1"}, nil).Once()

	_, err := service.Create(context.Background(), "uid-1", CreateInput{
		Title:     "Sunset",
		Image:     []byte("img-bytes"),
		ImageType: "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, "", stored.ImageURL)

	uploader.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestService_Create_WithImage(t *testing.T) {
	repo := new(RepositoryMock)
	uploader := new(UploaderMock)
	service := New(repo, uploader, newNoopLogger())

	uploader.On("Upload", mock.Anything, []byte("img-bytes"), "image/jpeg").
		Return("https://cdn.example.com/inspirations/key", nil).Once()

	var stored models.Inspiration
	repo.On("CreateInspiration", mock.Anything, mock.AnythingOfType("models.Inspiration")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(models.Inspiration)
		}).
		Return(&models.Inspiration{ID: "insp-1"}, nil).Once()

	_, err := service.Create(context.Background(), "uid-1", CreateInput{
		Title:     "Sunset",
		Image:     []byte("img-bytes"),
		ImageType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/inspirations/key", stored.ImageURL)
}

func TestService_Update_RemoveImage(t *testing.T) {
	repo := new(RepositoryMock)
	uploader := new(UploaderMock)
	service := New(repo, uploader, newNoopLogger())

	repo.On("UpdateInspiration", mock.Anything, "uid-1", "insp-1",
		mock.MatchedBy(func(patch models.InspirationPatch) bool {
			return patch.ImageURL != nil && *patch.ImageURL == ""
		})).
		Return(&models.Inspiration{ID: "insp-1", ImageURL: ""}, nil).Once()

	insp, err := service.Update(context.Background(), "uid-1", "insp-1", UpdateInput{
		RemoveImage: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "", insp.ImageURL)

	uploader.AssertNotCalled(t, "Upload")
}

func TestService_Update_UploadFailureKeepsPreviousImage(t *testing.T) {
	repo := new(RepositoryMock)
	uploader := new(UploaderMock)
	service := New(repo, uploader, newNoopLogger())

	uploader.On("Upload", mock.Anything, []byte("img"), "image/png").
		Return("", errors.New("store unavailable")).Once()

	repo.On("UpdateInspiration", mock.Anything, "uid-1", "insp-1",
		mock.MatchedBy(func(patch models.InspirationPatch) bool {
			return patch.ImageURL == nil
		})).
		Return(&models.Inspiration{ID: "insp-1", ImageURL: "https://old.example.com/img"}, nil).Once()

	insp, err := service.Update(context.Background(), "uid-1", "insp-1", UpdateInput{
		Image:     []byte("img"),
		ImageType: "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://old.example.com/img", insp.ImageURL)
}

func TestService_Update_NormalizesTags(t *testing.T) {
	repo := new(RepositoryMock)
	uploader := new(UploaderMock)
	service := New(repo, uploader, newNoopLogger())

	rawTags := []string{"a, b ,,c"}
	repo.On("UpdateInspiration", mock.Anything, "uid-1", "insp-1",
		mock.MatchedBy(func(patch models.InspirationPatch) bool {
			return patch.Tags != nil && assert.ObjectsAreEqual([]string{"a", "b", "c"}, *patch.Tags)
		})).
		Return(&models.Inspiration{ID: "insp-1", Tags: []string{"a", "b", "c"}}, nil).Once()

	_, err := service.Update(context.Background(), "uid-1", "insp-1", UpdateInput{
		Tags: &rawTags,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Update_NotFoundPropagates(t *testing.T) {
	repo := new(RepositoryMock)
	uploader := new(UploaderMock)
	service := New(repo, uploader, newNoopLogger())

	repo.On("UpdateInspiration", mock.Anything, "uid-2", "insp-1", mock.Anything).
		Return(nil, storage.ErrNotFound).Once()

	insp, err := service.Update(context.Background(), "uid-2", "insp-1", UpdateInput{})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Nil(t, insp)
}

func TestService_List_NormalizesFilterTags(t *testing.T) {
	repo := new(RepositoryMock)
	uploader := new(UploaderMock)
	service := New(repo, uploader, newNoopLogger())

	repo.On("ListInspirations", mock.Anything, "uid-1",
		models.Filter{Search: "sun", Tags: []string{"nature", "calm"}}).
		Return([]*models.Inspiration{{ID: "insp-1"}}, nil).Once()

	res, err := service.List(context.Background(), "uid-1", models.Filter{
		Search: "sun",
		Tags:   []string{"nature, calm"},
	})
	require.NoError(t, err)
	assert.Len(t, res, 1)
	repo.AssertExpectations(t)
}

func TestService_Remove(t *testing.T) {
	repo := new(RepositoryMock)
	uploader := new(UploaderMock)
	service := New(repo, uploader, newNoopLogger())

	repo.On("DeleteInspiration", mock.Anything, "uid-1", "insp-1").Return(nil).Once()
	repo.On("DeleteInspiration", mock.Anything, "uid-2", "insp-1").Return(storage.ErrNotFound).Once()

	assert.NoError(t, service.Remove(context.Background(), "uid-1", "insp-1"))
	assert.ErrorIs(t, service.Remove(context.Background(), "uid-2", "insp-1"), storage.ErrNotFound)
}
