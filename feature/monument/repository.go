package monument

import (
	"context"
	"errors"
	"fmt"

	"monument-catalog/feature/monument/models"

	"gorm.io/gorm"
)

// Repository reads monuments and suggestions from the database.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// LoadMonument loads a monument with every association the diff needs.
func (r *Repository) LoadMonument(ctx context.Context, id uint) (*models.Monument, error) {
	var m models.Monument
	err := r.db.WithContext(ctx).
		Preload("Tags", byID).
		Preload("Tags.Tag").
		Preload("References", byID).
		Preload("Images", byID).
		Preload("PhotoSphereImages", byID).
		First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("monument %d: %w", id, ErrMonumentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load monument %d: %w", id, err)
	}
	return &m, nil
}

// LoadSuggestion loads a suggestion by id.
func (r *Repository) LoadSuggestion(ctx context.Context, id uint) (*models.Suggestion, error) {
	var s models.Suggestion
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("suggestion %d: %w", id, ErrSuggestionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load suggestion %d: %w", id, err)
	}
	return &s, nil
}

// SetSuggestionStatus moves a pending suggestion to status. The row is
// updated only while it is still pending, so concurrent moderators cannot
// both succeed.
func (r *Repository) SetSuggestionStatus(ctx context.Context, id uint, status string) (*models.Suggestion, error) {
	var updated *models.Suggestion
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s models.Suggestion
		if err := tx.First(&s, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("suggestion %d: %w", id, ErrSuggestionNotFound)
			}
			return fmt.Errorf("failed to load suggestion %d: %w", id, err)
		}
		if s.Status != models.StatusPending {
			return fmt.Errorf("suggestion %d is %s: %w", id, s.Status, ErrSuggestionClosed)
		}

		res := tx.Model(&models.Suggestion{}).
			Where("id = ? AND status = ?", id, models.StatusPending).
			Update("status", status)
		if res.Error != nil {
			return fmt.Errorf("failed to update suggestion %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("suggestion %d: %w", id, ErrSuggestionClosed)
		}

		s.Status = status
		updated = &s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// MediaURLs returns the stored image and 360° image links of a monument.
func (r *Repository) MediaURLs(ctx context.Context, monumentID uint) (images, photoSpheres []string, err error) {
	m, err := r.LoadMonument(ctx, monumentID)
	if err != nil {
		return nil, nil, err
	}
	for _, img := range m.Images {
		images = append(images, img.URL)
	}
	for _, img := range m.PhotoSphereImages {
		photoSpheres = append(photoSpheres, img.URL)
	}
	return images, photoSpheres, nil
}

// Migrate creates or updates the catalog tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(models.All()...)
}
