package integrity

import (
	"context"
	"fmt"
	"testing"

	"monument-catalog/core/database"
	"monument-catalog/core/storage"
	"monument-catalog/core/storage/mocks"
	"monument-catalog/feature/monument"
	"monument-catalog/feature/monument/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testStorage = storage.Config{Bucket: "test-bucket", PublicURL: "https://cdn.example.com/m"}

// fakeMedia serves media links from memory.
type fakeMedia map[uint][2][]string

func (f fakeMedia) MediaURLs(_ context.Context, id uint) ([]string, []string, error) {
	urls, ok := f[id]
	if !ok {
		return nil, nil, fmt.Errorf("monument %d: %w", id, monument.ErrMonumentNotFound)
	}
	return urls[0], urls[1], nil
}

var testMedia = fakeMedia{
	1: {
		{"https://cdn.example.com/m/images/front.jpg"},
		{"https://cdn.example.com/m/photo-spheres/pano.jpg"},
	},
}

func setupSQLite(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, testStorage, zap.NewNop(), nil, testMedia)

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"images", "photo-spheres"}, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", "images/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"images"})
		assert.NoError(t, err)
	})
}

func TestService_Schema(t *testing.T) {
	svc := NewService(new(mocks.Client), testStorage, nil, setupSQLite(t), testMedia)

	report, err := svc.CheckSchema()
	require.NoError(t, err)
	assert.True(t, report.Matched)

	_, err = NewService(new(mocks.Client), testStorage, nil, nil, testMedia).CheckSchema()
	assert.Error(t, err)
}

func TestService_MonumentMedia(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.MatchedBy(func(o minio.ListObjectsOptions) bool {
		return o.Prefix == "images/front.jpg"
	})).Return(mocks.Objects("images/front.jpg"))
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())

	svc := NewService(mockClient, testStorage, zap.NewNop(), nil, testMedia)

	report, err := svc.CheckMonumentMedia(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, []string{"https://cdn.example.com/m/photo-spheres/pano.jpg"}, report.Missing)

	_, err = svc.CheckMonumentMedia(context.Background(), 2)
	assert.ErrorIs(t, err, monument.ErrMonumentNotFound)
}

func TestService_MonumentMedia_Repository(t *testing.T) {
	db := setupSQLite(t)
	require.NoError(t, db.Create(&models.Monument{
		ID:     5,
		Title:  "Fountain",
		Images: []models.Image{{ID: 1, URL: "https://elsewhere.example.com/f.jpg"}},
	}).Error)

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

	svc := NewService(mockClient, testStorage, nil, db, monument.NewRepository(db))
	report, err := svc.CheckMonumentMedia(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Checked)
	assert.Equal(t, []string{"https://elsewhere.example.com/f.jpg"}, report.External)
	mockClient.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}
