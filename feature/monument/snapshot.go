package monument

import (
	"monument-catalog/core/reconcile"
	"monument-catalog/core/utils"
	"monument-catalog/feature/monument/models"
)

// ToSnapshot converts a monument row with its preloaded associations into the
// read-only view the diff engine consumes.
func ToSnapshot(m *models.Monument) *reconcile.Snapshot {
	s := &reconcile.Snapshot{
		ID:                 utils.ToString(m.ID),
		Title:              m.Title,
		Artist:             deref(m.Artist),
		Address:            deref(m.Address),
		City:               deref(m.City),
		State:              deref(m.State),
		Description:        deref(m.Description),
		Inscription:        deref(m.Inscription),
		IsTemporary:        m.IsTemporary,
		DeactivatedComment: deref(m.DeactivatedComment),
		Date:               taggedDate(m.Date, m.DateFormat),
		DeactivatedDate:    taggedDate(m.DeactivatedDate, m.DeactivatedDateFormat),
		Coordinates:        reconcile.Coordinates{Lat: m.Lat, Lon: m.Lon},
		TagAssociations:    make([]reconcile.TagAssociation, 0, len(m.Tags)),
		References:         make([]reconcile.Reference, 0, len(m.References)),
		Images:             make([]reconcile.Image, 0, len(m.Images)),
		PhotoSphereImages:  make([]reconcile.PhotoSphereImage, 0, len(m.PhotoSphereImages)),
	}

	for _, mt := range m.Tags {
		s.TagAssociations = append(s.TagAssociations, reconcile.TagAssociation{
			TagID:      utils.ToString(mt.TagID),
			Name:       mt.Tag.Name,
			IsMaterial: mt.Tag.IsMaterial,
		})
	}
	for _, r := range m.References {
		s.References = append(s.References, reconcile.Reference{ID: utils.ToString(r.ID), URL: r.URL})
	}
	for _, img := range m.Images {
		s.Images = append(s.Images, reconcile.Image{
			ID:        utils.ToString(img.ID),
			URL:       img.URL,
			IsPrimary: img.IsPrimary,
		})
	}
	for _, img := range m.PhotoSphereImages {
		s.PhotoSphereImages = append(s.PhotoSphereImages, reconcile.PhotoSphereImage{
			ID:  utils.ToString(img.ID),
			URL: img.URL,
		})
	}
	return s
}

func taggedDate(value *string, format string) reconcile.TaggedDate {
	f := reconcile.DateFormat(format)
	switch f {
	case reconcile.FormatYear, reconcile.FormatMonthYear, reconcile.FormatExactDate:
	default:
		f = reconcile.FormatUnknown
	}
	return reconcile.TaggedDate{Value: value, Format: f}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
