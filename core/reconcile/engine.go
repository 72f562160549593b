package reconcile

import (
	"go.uber.org/zap"
)

// ScheduleKeys lists every attribute key Diff emits, in display order.
var ScheduleKeys = []string{
	"title",
	"isTemporary",
	"artist",
	"date",
	"deactivatedDate",
	"deactivatedComment",
	"address",
	"city",
	"state",
	"latitude",
	"longitude",
	"description",
	"inscription",
	"materials.unchanged",
	"materials.added",
	"materials.removed",
	"tags.unchanged",
	"tags.added",
	"tags.removed",
	"references.unchanged",
	"references.changed",
	"references.added",
	"references.deleted",
	"addedImages",
	"deletedImages",
	"addedPhotoSphereImages",
	"deletedPhotoSphereImages",
	"primaryImage",
}

// Diff reconciles a snapshot against a proposed update over the fixed
// attribute schedule. Either argument being nil yields an empty result.
// Neither argument is modified.
func Diff(snapshot *Snapshot, update *ProposedUpdate, mode MediaMode) DiffResult {
	result := DiffResult{Changed: []AttributeDiff{}, Unchanged: []AttributeDiff{}}
	if snapshot == nil || update == nil {
		return result
	}

	isTemporary := update.NewIsTemporary.OrElse(snapshot.IsTemporary)

	rows := make([]AttributeDiff, 0, len(ScheduleKeys))
	rows = append(rows,
		compareProposedScalar("title", "Title", snapshot.Title, update.NewTitle),
		CompareBool("isTemporary", "Temporary", snapshot.IsTemporary, isTemporary),
		compareProposedScalar("artist", "Artist", snapshot.Artist, update.NewArtist),
		CompareDate("date", "Date", snapshot.Date, update.Date),
		CompareDate("deactivatedDate", "Deactivated Date", snapshot.DeactivatedDate, update.DeactivatedDate),
		compareProposedScalar("deactivatedComment", "Deactivated Reason", snapshot.DeactivatedComment, update.NewDeactivatedComment),
		compareProposedScalar("address", "Address", snapshot.Address, update.NewAddress),
		compareProposedScalar("city", "City", snapshot.City, update.NewCity),
		compareProposedScalar("state", "State", snapshot.State, update.NewState),
		compareCoordinate("latitude", "Latitude", snapshot.Coordinates.Lat, update.NewLatitude),
		compareCoordinate("longitude", "Longitude", snapshot.Coordinates.Lon, update.NewLongitude),
		compareProposedScalar("description", "Description", snapshot.Description, update.NewDescription),
		compareProposedScalar("inscription", "Inscription", snapshot.Inscription, update.NewInscription),
	)
	rows = append(rows, reconcileFacet("materials", "Materials", tagNames(snapshot.TagAssociations, true), update.NewMaterials)...)
	rows = append(rows, reconcileFacet("tags", "Tags", tagNames(snapshot.TagAssociations, false), update.NewTags)...)
	rows = append(rows, reconcileReferences(snapshot.References, update.References)...)
	rows = append(rows, reconcileMedia("Images", "Images", imageURLs(snapshot.Images), update.AddedImages, update.DeletedImageURLs, mode)...)
	rows = append(rows, reconcileMedia("PhotoSphereImages", "360° Images", photoSphereURLs(snapshot.PhotoSphereImages), update.AddedPhotoSphereImages, update.DeletedPhotoSphereImageURLs, mode)...)
	rows = append(rows, reconcilePrimaryImage(snapshot, update))

	for _, row := range rows {
		if row.Changed {
			result.Changed = append(result.Changed, row)
		} else {
			result.Unchanged = append(result.Unchanged, row)
		}
	}
	return result
}

// Engine runs Diff and applies a presentation Policy.
type Engine struct {
	policy Policy
	logger *zap.Logger
}

// NewEngine creates an engine. A nil logger disables logging.
func NewEngine(policy Policy, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if policy.VisibleChanges <= 0 {
		policy.VisibleChanges = DefaultVisibleChanges
	}
	return &Engine{policy: policy, logger: logger}
}

// Policy returns the engine's presentation policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Review diffs the inputs and builds the initial view. Toggle overrides the
// policy defaults when set.
func (e *Engine) Review(snapshot *Snapshot, update *ProposedUpdate, mode MediaMode, toggle Toggle) *Review {
	result := Diff(snapshot, update, mode)
	view := e.policy.View(result, toggle)

	review := &Review{
		Result:  result,
		View:    view,
		Summary: summarize(result, view),
	}
	if snapshot != nil {
		review.MonumentID = snapshot.ID
	}

	e.logger.Debug("Monument diff computed",
		zap.String("monument_id", review.MonumentID),
		zap.String("media_mode", mode.String()),
		zap.Int("changed", review.Summary.Changed),
		zap.Int("unchanged", review.Summary.Unchanged),
	)
	return review
}
