package integrity

import (
	"context"

	"monument-catalog/core/storage"
	"monument-catalog/core/utils"
	"monument-catalog/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MediaSource provides the stored media links of a monument.
type MediaSource interface {
	MediaURLs(ctx context.Context, monumentID uint) (images, photoSpheres []string, err error)
}

// Service handles integrity checks.
type Service struct {
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
	db     *gorm.DB
	media  MediaSource
}

// NewService creates a new integrity service.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger, db *gorm.DB, media MediaSource) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		cfg:    cfg,
		logger: logger,
		db:     db,
		media:  media,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.cfg.Bucket)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.cfg.Bucket, s.logger, missing)
}

// CheckSchema compares the catalog tables with the models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckMonumentMedia verifies the stored images and 360° images of a monument.
func (s *Service) CheckMonumentMedia(ctx context.Context, monumentID uint) (*checks.MediaReport, error) {
	images, spheres, err := s.media.MediaURLs(ctx, monumentID)
	if err != nil {
		return nil, err
	}
	urls := append(append([]string{}, images...), spheres...)
	return checks.CheckMedia(ctx, s.client, s.cfg, utils.ToString(monumentID), urls)
}
