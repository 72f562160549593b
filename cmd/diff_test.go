package cmd

import (
	"bytes"
	"strings"
	"testing"

	"monument-catalog/core/reconcile"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReview(toggle reconcile.Toggle) *reconcile.Review {
	snapshot := &reconcile.Snapshot{ID: "17", Title: "Liberty Statue", City: "New York", State: "NY", Artist: "Bartholdi"}
	update := &reconcile.ProposedUpdate{
		NewTitle:  reconcile.Some("Statue of Liberty"),
		NewCity:   reconcile.Some("Manhattan"),
		NewState:  reconcile.Some("N.Y."),
		NewArtist: reconcile.Some("Frédéric Bartholdi"),
	}
	return reconcile.NewEngine(reconcile.DefaultPolicy(), nil).Review(snapshot, update, reconcile.UpdateMode, toggle)
}

func TestRenderReview(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	require.NoError(t, renderReview(&buf, sampleReview(reconcile.Toggle{})))
	out := buf.String()

	assert.Contains(t, out, "Monument 17")
	assert.Contains(t, out, "Statue of Liberty")
	assert.Contains(t, out, "1 more changed attributes (use --all)")
	assert.Contains(t, out, "unchanged attributes (use --unchanged)")
	assert.Contains(t, out, "Manhattan")
	assert.NotContains(t, out, "N.Y.", "fourth change is collapsed")
}

func TestRenderReview_Expanded(t *testing.T) {
	color.NoColor = true
	on := true

	var buf bytes.Buffer
	require.NoError(t, renderReview(&buf, sampleReview(reconcile.Toggle{ShowAllChanged: &on, ShowUnchanged: &on})))
	out := buf.String()

	assert.Contains(t, out, "N.Y.")
	assert.Contains(t, out, "Unchanged")
	assert.NotContains(t, out, "use --all")
}

func TestRenderReview_NoChanges(t *testing.T) {
	color.NoColor = true

	review := reconcile.NewEngine(reconcile.DefaultPolicy(), nil).
		Review(&reconcile.Snapshot{ID: "3"}, &reconcile.ProposedUpdate{}, reconcile.UpdateMode, reconcile.Toggle{})

	var buf bytes.Buffer
	require.NoError(t, renderReview(&buf, review))
	assert.Contains(t, buf.String(), "No changes.")
}

func TestConfirmAction(t *testing.T) {
	var out bytes.Buffer

	yesConfirm = false
	assert.True(t, confirmAction(strings.NewReader("yes\n"), &out, "confirm? "))
	assert.False(t, confirmAction(strings.NewReader("no\n"), &out, "confirm? "))
	assert.False(t, confirmAction(strings.NewReader(""), &out, "confirm? "))

	yesConfirm = true
	defer func() { yesConfirm = false }()
	assert.True(t, confirmAction(strings.NewReader(""), &out, "confirm? "))
}
