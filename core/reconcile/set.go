package reconcile

import "strings"

// SetPartition is the outcome of reconciling a named set.
type SetPartition struct {
	Unchanged []string `json:"unchanged"`
	Added     []string `json:"added"`
	Removed   []string `json:"removed"`
}

// PartitionSet splits names by membership. Added and unchanged follow the
// proposed order, removed follows the old order. Duplicates are collapsed.
// The proposed list is the full desired membership, not a delta.
func PartitionSet(oldNames, proposedNames []string) SetPartition {
	old := make(map[string]struct{}, len(oldNames))
	for _, name := range oldNames {
		old[name] = struct{}{}
	}

	p := SetPartition{Unchanged: []string{}, Added: []string{}, Removed: []string{}}
	proposed := make(map[string]struct{}, len(proposedNames))
	for _, name := range proposedNames {
		if _, dup := proposed[name]; dup {
			continue
		}
		proposed[name] = struct{}{}
		if _, ok := old[name]; ok {
			p.Unchanged = append(p.Unchanged, name)
		} else {
			p.Added = append(p.Added, name)
		}
	}

	seen := make(map[string]struct{}, len(oldNames))
	for _, name := range oldNames {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if _, ok := proposed[name]; !ok {
			p.Removed = append(p.Removed, name)
		}
	}
	return p
}

// tagNames returns the names of associations whose material flag matches.
func tagNames(assocs []TagAssociation, materials bool) []string {
	names := make([]string, 0, len(assocs))
	for _, a := range assocs {
		if a.IsMaterial == materials {
			names = append(names, a.Name)
		}
	}
	return names
}

// reconcileFacet produces the unchanged/added/removed rows of one facet.
// An absent proposal keeps every old name unchanged.
func reconcileFacet(key, label string, oldNames []string, proposal Optional[[]string]) []AttributeDiff {
	var p SetPartition
	if names, ok := proposal.Get(); ok {
		p = PartitionSet(oldNames, names)
	} else {
		p = PartitionSet(oldNames, oldNames)
	}

	unchanged := joinNames(p.Unchanged)
	return []AttributeDiff{
		{
			Key:        key + ".unchanged",
			Label:      label,
			OldDisplay: unchanged,
			NewDisplay: unchanged,
			Kind:       KindSet,
		},
		{
			Key:        key + ".added",
			Label:      "Added " + label,
			OldDisplay: None,
			NewDisplay: joinNames(p.Added),
			Changed:    len(p.Added) > 0,
			Kind:       KindSet,
		},
		{
			Key:        key + ".removed",
			Label:      "Removed " + label,
			OldDisplay: joinNames(p.Removed),
			NewDisplay: None,
			Changed:    len(p.Removed) > 0,
			Kind:       KindSet,
		},
	}
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return None
	}
	return strings.Join(names, ", ")
}
