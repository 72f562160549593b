// Package reconcile computes field-by-field diffs between a persisted monument
// snapshot and a proposed update.
//
// The package is pure: it performs no I/O, keeps no shared state and never
// mutates its arguments, so a diff may be computed concurrently and repeatedly
// with identical results.
//
// # Architecture
//
// Each attribute group has its own reconciler:
//
//  1. Scalars and booleans (title, artist, address, coordinates...): compared
//     after normalizing missing values to the empty string.
//
//  2. Dates: one of YearProposal, MonthYearProposal, ExactDateProposal or
//     UnknownDate. The stored date is projected to the proposal's precision
//     before both sides go through the same formatter.
//
//  3. Sets (materials, tags): partitioned into unchanged, added and removed by
//     name. An absent proposal keeps every stored name unchanged.
//
//  4. References: partitioned by id into unchanged, changed, added and deleted.
//     Deletion wins over a replacement URL for the same id.
//
//  5. Media (images, 360° images): added and deleted entries, plus the primary
//     image of the surviving set. At most one image is ever primary.
//
// Diff runs the reconcilers over ScheduleKeys and sorts every row into the
// changed or unchanged sequence. Policy then decides how much is shown.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(reconcile.DefaultPolicy(), logger)
//	review := engine.Review(snapshot, update, reconcile.SuggestionMode, reconcile.Toggle{})
//	for _, row := range review.View.Visible {
//	    fmt.Println(row.Label, row.OldDisplay, "->", row.NewDisplay)
//	}
//
// # Presentation
//
// By default only the first three changed rows are visible and unchanged rows
// are hidden. Both switches are independent; Policy.ExpandedByDefault opens
// both unless a Toggle overrides them.
package reconcile
