package reconcile

import (
	"net/url"
	"path"
	"strconv"
	"strings"
)

// MediaMode selects how deleted media are rendered.
type MediaMode int

const (
	// SuggestionMode renders deleted media as thumbnail URLs; used while a
	// suggestion is awaiting moderation.
	SuggestionMode MediaMode = iota
	// UpdateMode matches deleted URLs against stored media and renders file
	// names. URLs that match nothing stored are ignored.
	UpdateMode
)

// String implements fmt.Stringer.
func (m MediaMode) String() string {
	if m == UpdateMode {
		return "update"
	}
	return "suggestion"
}

// MediaPartition lists the rendered added and deleted entries of one collection.
type MediaPartition struct {
	Added   []string `json:"added"`
	Deleted []string `json:"deleted"`
}

// PartitionMedia reconciles one media collection. Entries with neither a name
// nor a URL are skipped, so an all-empty proposal is not a change.
func PartitionMedia(storedURLs []string, added []AddedMedia, deletedURLs []string, mode MediaMode) MediaPartition {
	p := MediaPartition{Added: []string{}, Deleted: []string{}}
	for _, m := range added {
		if m.populated() {
			p.Added = append(p.Added, mediaLabel(m))
		}
	}

	stored := make(map[string]struct{}, len(storedURLs))
	for _, u := range storedURLs {
		stored[u] = struct{}{}
	}
	seen := make(map[string]struct{}, len(deletedURLs))
	for _, u := range deletedURLs {
		if strings.TrimSpace(u) == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		switch mode {
		case UpdateMode:
			if _, ok := stored[u]; ok {
				p.Deleted = append(p.Deleted, FileName(u))
			}
		default:
			p.Deleted = append(p.Deleted, u)
		}
	}
	return p
}

// reconcileMedia produces the added and deleted rows of one collection.
func reconcileMedia(key, label string, storedURLs []string, added []AddedMedia, deletedURLs []string, mode MediaMode) []AttributeDiff {
	p := PartitionMedia(storedURLs, added, deletedURLs, mode)
	return []AttributeDiff{
		{
			Key:        "added" + key,
			Label:      "Added " + label,
			OldDisplay: None,
			NewDisplay: joinNames(p.Added),
			Changed:    len(p.Added) > 0,
			Kind:       KindMedia,
		},
		{
			Key:        "deleted" + key,
			Label:      "Deleted " + label,
			OldDisplay: joinNames(p.Deleted),
			NewDisplay: None,
			Changed:    len(p.Deleted) > 0,
			Kind:       KindMedia,
		},
	}
}

// FileName returns the final path segment of a media URL.
func FileName(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	if i := strings.LastIndex(raw, "/"); i >= 0 {
		return raw[i+1:]
	}
	return raw
}

func mediaLabel(m AddedMedia) string {
	if m.Name != "" {
		return m.Name
	}
	return FileName(m.URL)
}

// ImageSet is the surviving image collection: stored images plus newly added
// ones. Its methods never modify the receiver's slices.
type ImageSet struct {
	Existing []Image
	Added    []AddedMedia
}

func (s ImageSet) clone() ImageSet {
	c := ImageSet{
		Existing: make([]Image, len(s.Existing)),
		Added:    make([]AddedMedia, len(s.Added)),
	}
	copy(c.Existing, s.Existing)
	copy(c.Added, s.Added)
	return c
}

// MarkExistingPrimary flags the stored image with id as primary and clears
// every other flag in both collections. An unknown id leaves the set normalized.
func (s ImageSet) MarkExistingPrimary(id string) ImageSet {
	found := false
	for _, img := range s.Existing {
		if img.ID == id {
			found = true
			break
		}
	}
	if !found {
		return s.NormalizePrimary()
	}

	c := s.clone()
	for i := range c.Existing {
		c.Existing[i].IsPrimary = c.Existing[i].ID == id
	}
	for i := range c.Added {
		c.Added[i].IsPrimary = false
	}
	return c
}

// MarkAddedPrimary flags the added image at index as primary and clears every
// other flag in both collections. An out of range index leaves the set normalized.
func (s ImageSet) MarkAddedPrimary(index int) ImageSet {
	if index < 0 || index >= len(s.Added) {
		return s.NormalizePrimary()
	}

	c := s.clone()
	for i := range c.Existing {
		c.Existing[i].IsPrimary = false
	}
	for i := range c.Added {
		c.Added[i].IsPrimary = i == index
	}
	return c
}

// NormalizePrimary keeps at most one primary flag: the first flagged stored
// image, else the first flagged added image.
func (s ImageSet) NormalizePrimary() ImageSet {
	c := s.clone()
	kept := false
	for i := range c.Existing {
		if c.Existing[i].IsPrimary {
			if kept {
				c.Existing[i].IsPrimary = false
			}
			kept = true
		}
	}
	for i := range c.Added {
		if c.Added[i].IsPrimary {
			if kept {
				c.Added[i].IsPrimary = false
			}
			kept = true
		}
	}
	return c
}

// PrimaryCount returns the number of flagged images.
func (s ImageSet) PrimaryCount() int {
	n := 0
	for _, img := range s.Existing {
		if img.IsPrimary {
			n++
		}
	}
	for _, m := range s.Added {
		if m.IsPrimary {
			n++
		}
	}
	return n
}

// primary returns an identity and display label for the primary image.
// The identity is empty when nothing is flagged.
func (s ImageSet) primary() (identity, label string) {
	for _, img := range s.Existing {
		if img.IsPrimary {
			return "existing:" + img.ID, FileName(img.URL)
		}
	}
	for i, m := range s.Added {
		if m.IsPrimary {
			return "added:" + strconv.Itoa(i), mediaLabel(m)
		}
	}
	return "", ""
}

// SurvivingImages returns the image set after applying the proposed deletions
// and additions, with the primary designation resolved and normalized.
func SurvivingImages(snapshot *Snapshot, update *ProposedUpdate) ImageSet {
	deleted := make(map[string]struct{}, len(update.DeletedImageURLs))
	for _, u := range update.DeletedImageURLs {
		deleted[u] = struct{}{}
	}

	set := ImageSet{Existing: make([]Image, 0, len(snapshot.Images))}
	for _, img := range snapshot.Images {
		if _, ok := deleted[img.URL]; !ok {
			set.Existing = append(set.Existing, img)
		}
	}
	for _, m := range update.AddedImages {
		if m.populated() {
			set.Added = append(set.Added, m)
		}
	}

	if id, ok := update.NewPrimaryImageID.Get(); ok {
		return set.MarkExistingPrimary(id)
	}
	return set.NormalizePrimary()
}

// reconcilePrimaryImage reports the primary image before and after the update.
func reconcilePrimaryImage(snapshot *Snapshot, update *ProposedUpdate) AttributeDiff {
	before := ImageSet{Existing: snapshot.Images}.NormalizePrimary()
	after := SurvivingImages(snapshot, update)

	oldID, oldLabel := before.primary()
	newID, newLabel := after.primary()
	return AttributeDiff{
		Key:        "primaryImage",
		Label:      "Primary Image",
		OldDisplay: displayOrNone(oldLabel),
		NewDisplay: displayOrNone(newLabel),
		Changed:    oldID != newID,
		Kind:       KindMedia,
	}
}

func imageURLs(images []Image) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	return urls
}

func photoSphereURLs(images []PhotoSphereImage) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	return urls
}
