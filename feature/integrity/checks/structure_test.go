package checks

import (
	"context"
	"testing"

	"monument-catalog/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCheckStructure(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "monuments").Return(false, nil)

		_, err := CheckStructure(context.Background(), mockClient, "monuments")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("Bucket Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "monuments").Return(false, assert.AnError)

		_, err := CheckStructure(context.Background(), mockClient, "monuments")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("All Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "monuments").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "monuments", mock.Anything).Return(mocks.Objects())

		missing, err := CheckStructure(context.Background(), mockClient, "monuments")
		assert.NoError(t, err)
		assert.Equal(t, RequiredFolders, missing)
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "monuments").Return(true, nil)

		for _, folder := range RequiredFolders {
			prefix := folder + "/"
			mockClient.On("ListObjects", mock.Anything, "monuments", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
				return opts.Prefix == prefix
			})).Return(mocks.Objects(prefix + "a.jpg"))
		}

		missing, err := CheckStructure(context.Background(), mockClient, "monuments")
		assert.NoError(t, err)
		assert.Empty(t, missing)
	})
}

func TestFixStructure(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Existing Bucket", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "monuments").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "monuments", "photo-spheres/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		err := FixStructure(context.Background(), mockClient, "monuments", logger, []string{"photo-spheres"})
		assert.NoError(t, err)
		mockClient.AssertNumberOfCalls(t, "PutObject", 1)
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing Bucket", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "monuments").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "monuments", mock.Anything).Return(nil)
		mockClient.On("PutObject", mock.Anything, "monuments", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		err := FixStructure(context.Background(), mockClient, "monuments", logger, RequiredFolders)
		assert.NoError(t, err)
		mockClient.AssertNumberOfCalls(t, "MakeBucket", 1)
		mockClient.AssertNumberOfCalls(t, "PutObject", len(RequiredFolders))
	})

	t.Run("Upload Failure", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "monuments").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "monuments", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, assert.AnError)

		err := FixStructure(context.Background(), mockClient, "monuments", logger, []string{"images"})
		assert.ErrorIs(t, err, assert.AnError)
	})
}
