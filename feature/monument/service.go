package monument

import (
	"context"
	"fmt"

	"monument-catalog/core/cache"
	"monument-catalog/core/reconcile"
	"monument-catalog/core/utils"
	"monument-catalog/feature/monument/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service builds reviews of proposed monument updates and moderates suggestions.
//
// Snapshots are cached per monument for review.cache_ttl_seconds. Changes made
// to a monument outside this service show up once its entry expires; set the
// TTL to zero to always read the catalog.
type Service struct {
	repo      *Repository
	engine    *reconcile.Engine
	snapshots *cache.Store[*reconcile.Snapshot]
	logger    *zap.Logger
}

// NewService creates a new monument service.
func NewService(db *gorm.DB, cfg reconcile.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:      NewRepository(db),
		engine:    reconcile.NewEngine(cfg.Policy(), logger),
		snapshots: cache.New[*reconcile.Snapshot](cfg.CacheTTL()),
		logger:    logger,
	}
}

// Repository exposes the underlying repository.
func (s *Service) Repository() *Repository {
	return s.repo
}

// Policy returns the presentation policy applied to reviews.
func (s *Service) Policy() reconcile.Policy {
	return s.engine.Policy()
}

// Snapshot returns the current snapshot of a monument, cached per id.
func (s *Service) Snapshot(ctx context.Context, id uint) (*reconcile.Snapshot, error) {
	return s.snapshots.Get(ctx, utils.ToString(id), func(ctx context.Context, _ string) (*reconcile.Snapshot, error) {
		m, err := s.repo.LoadMonument(ctx, id)
		if err != nil {
			return nil, err
		}
		return ToSnapshot(m), nil
	})
}

// DiffMonument reviews an update proposed directly against a monument.
func (s *Service) DiffMonument(ctx context.Context, id uint, update *reconcile.ProposedUpdate, mode reconcile.MediaMode, toggle reconcile.Toggle) (*reconcile.Review, error) {
	snapshot, err := s.Snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.engine.Review(snapshot, update, mode, toggle), nil
}

// SuggestionReview is the review of a stored suggestion.
type SuggestionReview struct {
	// SuggestionID identifies the suggestion.
	SuggestionID uint `json:"suggestion_id"`
	// Status is the moderation status.
	Status string `json:"status"`
	// Review is the diff against the monument's current state.
	*reconcile.Review
}

// DiffSuggestion reviews a stored suggestion against its monument.
func (s *Service) DiffSuggestion(ctx context.Context, id uint, toggle reconcile.Toggle) (*SuggestionReview, error) {
	suggestion, err := s.repo.LoadSuggestion(ctx, id)
	if err != nil {
		return nil, err
	}

	req, err := DecodeUpdate([]byte(suggestion.Payload))
	if err != nil {
		return nil, fmt.Errorf("suggestion %d: %w", id, err)
	}

	review, err := s.DiffMonument(ctx, suggestion.MonumentID, req.Update(), reconcile.SuggestionMode, toggle)
	if err != nil {
		return nil, err
	}

	return &SuggestionReview{
		SuggestionID: suggestion.ID,
		Status:       suggestion.Status,
		Review:       review,
	}, nil
}

// Approve marks a pending suggestion as approved.
func (s *Service) Approve(ctx context.Context, id uint) (*models.Suggestion, error) {
	return s.moderate(ctx, id, models.StatusApproved)
}

// Reject marks a pending suggestion as rejected.
func (s *Service) Reject(ctx context.Context, id uint) (*models.Suggestion, error) {
	return s.moderate(ctx, id, models.StatusRejected)
}

// moderate changes the suggestion status only. The proposed update is never
// applied here.
func (s *Service) moderate(ctx context.Context, id uint, status string) (*models.Suggestion, error) {
	suggestion, err := s.repo.SetSuggestionStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Suggestion moderated",
		zap.Uint("suggestion_id", suggestion.ID),
		zap.Uint("monument_id", suggestion.MonumentID),
		zap.String("status", status))
	return suggestion, nil
}
