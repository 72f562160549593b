package monument

import (
	"context"
	"testing"

	"monument-catalog/feature/monument/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for error paths.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestRepository_LoadMonument(t *testing.T) {
	repo := NewRepository(setupDB(t))

	m, err := repo.LoadMonument(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Liberty Statue", m.Title)
	require.Len(t, m.Tags, 3)
	assert.Equal(t, "Bronze", m.Tags[0].Tag.Name)
	assert.True(t, m.Tags[0].Tag.IsMaterial)
	assert.Len(t, m.References, 2)
	assert.Len(t, m.Images, 2)
	assert.Len(t, m.PhotoSphereImages, 1)

	_, err = repo.LoadMonument(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMonumentNotFound)
}

func TestRepository_LoadSuggestion(t *testing.T) {
	repo := NewRepository(setupDB(t))

	s, err := repo.LoadSuggestion(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), s.MonumentID)
	assert.Equal(t, models.StatusPending, s.Status)

	_, err = repo.LoadSuggestion(context.Background(), 42)
	assert.ErrorIs(t, err, ErrSuggestionNotFound)
}

func TestRepository_LoadSuggestion_DBError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(".*").WillReturnError(assert.AnError)

	_, err := NewRepository(db).LoadSuggestion(context.Background(), 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSuggestionNotFound)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRepository_SetSuggestionStatus(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()

	tests := []struct {
		name    string
		id      uint
		status  string
		wantErr error
	}{
		{"Approve Pending", 1, models.StatusApproved, nil},
		{"Already Approved", 1, models.StatusRejected, ErrSuggestionClosed},
		{"Closed Earlier", 2, models.StatusRejected, ErrSuggestionClosed},
		{"Missing", 7, models.StatusApproved, ErrSuggestionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := repo.SetSuggestionStatus(ctx, tt.id, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, s.Status)
		})
	}

	stored, err := repo.LoadSuggestion(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)
}

func TestRepository_MediaURLs(t *testing.T) {
	repo := NewRepository(setupDB(t))

	images, spheres, err := repo.MediaURLs(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://cdn.example.com/monuments/images/front.jpg",
		"https://cdn.example.com/monuments/images/back.jpg",
	}, images)
	assert.Equal(t, []string{"https://cdn.example.com/monuments/photo-spheres/pano.jpg"}, spheres)

	_, _, err = repo.MediaURLs(context.Background(), 5)
	assert.ErrorIs(t, err, ErrMonumentNotFound)
}
