package reconcile

import "strings"

// ReferenceChange is an existing reference whose URL is being replaced.
type ReferenceChange struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// ReferencePartition is the outcome of reconciling the reference list.
type ReferencePartition struct {
	Unchanged []string          `json:"unchanged"`
	Changed   []ReferenceChange `json:"changed"`
	Added     []string          `json:"added"`
	Deleted   []string          `json:"deleted"`
}

// PartitionReferences classifies every stored reference exactly once.
// Deletion takes precedence over an update proposed for the same id. A blank
// replacement URL is no update.
func PartitionReferences(old []Reference, update ReferenceUpdate) ReferencePartition {
	deleted := make(map[string]struct{}, len(update.DeletedIDs))
	for _, id := range update.DeletedIDs {
		deleted[id] = struct{}{}
	}

	p := ReferencePartition{
		Unchanged: []string{},
		Changed:   []ReferenceChange{},
		Added:     []string{},
		Deleted:   []string{},
	}
	for _, ref := range old {
		if _, ok := deleted[ref.ID]; ok {
			p.Deleted = append(p.Deleted, ref.URL)
			continue
		}
		if newURL, ok := update.UpdatedURLsByID[ref.ID]; ok && strings.TrimSpace(newURL) != "" && newURL != ref.URL {
			p.Changed = append(p.Changed, ReferenceChange{Old: ref.URL, New: newURL})
			continue
		}
		p.Unchanged = append(p.Unchanged, ref.URL)
	}

	for _, u := range update.NewURLs {
		if strings.TrimSpace(u) != "" {
			p.Added = append(p.Added, u)
		}
	}
	return p
}

// reconcileReferences produces the four reference rows.
func reconcileReferences(old []Reference, update ReferenceUpdate) []AttributeDiff {
	p := PartitionReferences(old, update)

	olds := make([]string, 0, len(p.Changed))
	news := make([]string, 0, len(p.Changed))
	for _, c := range p.Changed {
		olds = append(olds, c.Old)
		news = append(news, c.New)
	}

	unchanged := joinNames(p.Unchanged)
	return []AttributeDiff{
		{
			Key:        "references.unchanged",
			Label:      "References",
			OldDisplay: unchanged,
			NewDisplay: unchanged,
			Kind:       KindReference,
		},
		{
			Key:        "references.changed",
			Label:      "Changed References",
			OldDisplay: joinNames(olds),
			NewDisplay: joinNames(news),
			Changed:    len(p.Changed) > 0,
			Kind:       KindReference,
		},
		{
			Key:        "references.added",
			Label:      "Added References",
			OldDisplay: None,
			NewDisplay: joinNames(p.Added),
			Changed:    len(p.Added) > 0,
			Kind:       KindReference,
		},
		{
			Key:        "references.deleted",
			Label:      "Deleted References",
			OldDisplay: joinNames(p.Deleted),
			NewDisplay: None,
			Changed:    len(p.Deleted) > 0,
			Kind:       KindReference,
		},
	}
}
