package monument

import (
	"context"
	"testing"

	"monument-catalog/core/reconcile"
	"monument-catalog/feature/monument/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnapshot(t *testing.T) {
	m, err := NewRepository(setupDB(t)).LoadMonument(context.Background(), 1)
	require.NoError(t, err)

	s := ToSnapshot(m)
	assert.Equal(t, "1", s.ID)
	assert.Equal(t, "Bartholdi", s.Artist)
	assert.Equal(t, "", s.Address)
	assert.Equal(t, reconcile.FormatExactDate, s.Date.Format)
	assert.Equal(t, "1886-10-28", *s.Date.Value)
	assert.Equal(t, reconcile.FormatUnknown, s.DeactivatedDate.Format)
	assert.Nil(t, s.DeactivatedDate.Value)

	assert.Equal(t, []reconcile.TagAssociation{
		{TagID: "1", Name: "Bronze", IsMaterial: true},
		{TagID: "2", Name: "Copper", IsMaterial: true},
		{TagID: "3", Name: "Liberty"},
	}, s.TagAssociations)
	assert.Equal(t, []reconcile.Reference{
		{ID: "10", URL: "http://a.example.com"},
		{ID: "11", URL: "http://b.example.com"},
	}, s.References)
	assert.True(t, s.Images[0].IsPrimary)
	assert.Equal(t, "30", s.PhotoSphereImages[0].ID)
}

func TestToSnapshot_Empty(t *testing.T) {
	s := ToSnapshot(&models.Monument{ID: 4, Title: "Bare", DateFormat: "bogus"})
	assert.Equal(t, reconcile.FormatUnknown, s.Date.Format)
	assert.NotNil(t, s.TagAssociations)
	assert.NotNil(t, s.References)
	assert.Empty(t, s.Images)
}
