package reconcile

// DefaultVisibleChanges is the number of changed rows shown before the
// remainder is collapsed.
const DefaultVisibleChanges = 3

// Page splits the changed rows into the visible head and the collapsed tail.
type Page struct {
	Visible []AttributeDiff `json:"visible"`
	Hidden  []AttributeDiff `json:"hidden"`
}

// Paginate collapses changed rows beyond the default threshold unless showAll.
func Paginate(changed []AttributeDiff, showAll bool) Page {
	return paginate(changed, showAll, DefaultVisibleChanges)
}

func paginate(changed []AttributeDiff, showAll bool, limit int) Page {
	if !showAll && len(changed) > limit {
		return Page{
			Visible: changed[:limit:limit],
			Hidden:  changed[limit:],
		}
	}
	return Page{Visible: changed, Hidden: []AttributeDiff{}}
}

// Policy controls the initial presentation of a diff.
type Policy struct {
	// VisibleChanges is the collapse threshold for changed rows.
	VisibleChanges int `json:"visible_changes"`

	// ExpandedByDefault shows all changed rows and the unchanged rows
	// unless a Toggle says otherwise.
	ExpandedByDefault bool `json:"expanded_by_default"`
}

// DefaultPolicy collapses after three changed rows and hides unchanged rows.
func DefaultPolicy() Policy {
	return Policy{VisibleChanges: DefaultVisibleChanges}
}

// Toggle carries caller overrides for the two independent display switches.
// Nil fields fall back to the policy default.
type Toggle struct {
	ShowAllChanged *bool
	ShowUnchanged  *bool
}

// View is what a review panel renders initially.
type View struct {
	Page

	// Unchanged is populated only when the unchanged toggle is on.
	Unchanged []AttributeDiff `json:"unchanged"`

	// ShowAllChanged and ShowUnchanged are the resolved toggle states.
	ShowAllChanged bool `json:"show_all_changed"`
	ShowUnchanged  bool `json:"show_unchanged"`

	// UnchangedAvailable reports whether there are unchanged rows behind the toggle.
	UnchangedAvailable bool `json:"unchanged_available"`
}

// View applies the policy and toggles to a diff result.
func (p Policy) View(result DiffResult, toggle Toggle) View {
	showAll := p.ExpandedByDefault
	if toggle.ShowAllChanged != nil {
		showAll = *toggle.ShowAllChanged
	}
	showUnchanged := p.ExpandedByDefault
	if toggle.ShowUnchanged != nil {
		showUnchanged = *toggle.ShowUnchanged
	}

	limit := p.VisibleChanges
	if limit <= 0 {
		limit = DefaultVisibleChanges
	}

	v := View{
		Page:               paginate(result.Changed, showAll, limit),
		Unchanged:          []AttributeDiff{},
		ShowAllChanged:     showAll,
		ShowUnchanged:      showUnchanged,
		UnchangedAvailable: len(result.Unchanged) > 0,
	}
	if showUnchanged {
		v.Unchanged = result.Unchanged
	}
	return v
}

// Summary provides aggregate counts for a review.
type Summary struct {
	// Changed counts rows in the changed sequence.
	Changed int `json:"changed"`

	// Unchanged counts rows in the unchanged sequence.
	Unchanged int `json:"unchanged"`

	// Visible counts changed rows shown initially.
	Visible int `json:"visible"`

	// Hidden counts changed rows collapsed behind the toggle.
	Hidden int `json:"hidden"`

	// ByKind counts changed rows per reconciler kind.
	ByKind map[Kind]int `json:"by_kind"`
}

// Review bundles a diff with its initial view.
type Review struct {
	MonumentID string     `json:"monument_id"`
	Result     DiffResult `json:"result"`
	View       View       `json:"view"`
	Summary    Summary    `json:"summary"`
}

// HasChanges reports whether any attribute changed.
func (r *Review) HasChanges() bool {
	return len(r.Result.Changed) > 0
}

func summarize(result DiffResult, view View) Summary {
	s := Summary{
		Changed:   len(result.Changed),
		Unchanged: len(result.Unchanged),
		Visible:   len(view.Visible),
		Hidden:    len(view.Hidden),
		ByKind:    make(map[Kind]int),
	}
	for _, d := range result.Changed {
		s.ByKind[d.Kind]++
	}
	return s
}
