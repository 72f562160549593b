package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMedia(t *testing.T) {
	stored := []string{"https://cdn.example.com/img/a.jpg", "https://cdn.example.com/img/b.jpg?v=2"}

	t.Run("empty entries are not additions", func(t *testing.T) {
		p := PartitionMedia(stored, []AddedMedia{{}, {Name: ""}}, nil, SuggestionMode)
		assert.Empty(t, p.Added)
	})

	t.Run("name preferred over url", func(t *testing.T) {
		p := PartitionMedia(stored, []AddedMedia{
			{Name: "upload.png", URL: "https://cdn.example.com/tmp/123"},
			{URL: "https://cdn.example.com/img/linked.jpg"},
		}, nil, SuggestionMode)
		assert.Equal(t, []string{"upload.png", "linked.jpg"}, p.Added)
	})

	t.Run("suggestion mode keeps urls", func(t *testing.T) {
		p := PartitionMedia(stored, nil, []string{
			"https://cdn.example.com/img/a.jpg",
			"https://cdn.example.com/img/a.jpg",
			"https://elsewhere/z.jpg",
			"",
		}, SuggestionMode)
		assert.Equal(t, []string{"https://cdn.example.com/img/a.jpg", "https://elsewhere/z.jpg"}, p.Deleted)
	})

	t.Run("update mode renders stored file names", func(t *testing.T) {
		p := PartitionMedia(stored, nil, []string{
			"https://cdn.example.com/img/b.jpg?v=2",
			"https://elsewhere/z.jpg",
		}, UpdateMode)
		assert.Equal(t, []string{"b.jpg"}, p.Deleted)
	})
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"https://cdn.example.com/img/a.jpg":       "a.jpg",
		"https://cdn.example.com/img/a.jpg?x=1#y": "a.jpg",
		"images/monuments/17/front.png":           "front.png",
		"plain.jpg":                               "plain.jpg",
	}
	for in, want := range tests {
		assert.Equal(t, want, FileName(in), in)
	}
}

func TestImageSet_PrimaryExclusive(t *testing.T) {
	set := ImageSet{Existing: []Image{
		{ID: "1", IsPrimary: true},
		{ID: "2", IsPrimary: false},
	}}

	got := set.MarkExistingPrimary("2")

	assert.Equal(t, 1, got.PrimaryCount())
	assert.False(t, got.Existing[0].IsPrimary)
	assert.True(t, got.Existing[1].IsPrimary)

	// Copy-on-write: the original is untouched
	assert.True(t, set.Existing[0].IsPrimary)
	assert.False(t, set.Existing[1].IsPrimary)
}

func TestImageSet_MarkAddedPrimaryClearsExisting(t *testing.T) {
	set := ImageSet{
		Existing: []Image{{ID: "1", IsPrimary: true}},
		Added:    []AddedMedia{{Name: "a.jpg"}, {Name: "b.jpg", IsPrimary: true}},
	}

	got := set.MarkAddedPrimary(0)

	assert.Equal(t, 1, got.PrimaryCount())
	assert.True(t, got.Added[0].IsPrimary)
	assert.False(t, got.Added[1].IsPrimary)
	assert.False(t, got.Existing[0].IsPrimary)
	assert.Equal(t, 2, set.PrimaryCount())
}

func TestImageSet_NormalizePrimary(t *testing.T) {
	tests := []struct {
		name string
		set  ImageSet
		want string
	}{
		{
			name: "two stored primaries keep the first",
			set:  ImageSet{Existing: []Image{{ID: "1", IsPrimary: true}, {ID: "2", IsPrimary: true}}},
			want: "existing:1",
		},
		{
			name: "stored wins over added",
			set: ImageSet{
				Existing: []Image{{ID: "1"}, {ID: "2", IsPrimary: true}},
				Added:    []AddedMedia{{Name: "x", IsPrimary: true}},
			},
			want: "existing:2",
		},
		{
			name: "added primary when no stored primary",
			set: ImageSet{
				Existing: []Image{{ID: "1"}},
				Added:    []AddedMedia{{Name: "x"}, {Name: "y", IsPrimary: true}, {Name: "z", IsPrimary: true}},
			},
			want: "added:1",
		},
		{
			name: "none flagged",
			set:  ImageSet{Existing: []Image{{ID: "1"}}},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.set.NormalizePrimary()
			assert.LessOrEqual(t, got.PrimaryCount(), 1)
			id, _ := got.primary()
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestImageSet_UnknownIDNormalizes(t *testing.T) {
	set := ImageSet{Existing: []Image{{ID: "1", IsPrimary: true}, {ID: "2", IsPrimary: true}}}

	got := set.MarkExistingPrimary("404")

	assert.Equal(t, 1, got.PrimaryCount())
	assert.True(t, got.Existing[0].IsPrimary)
}

func TestSurvivingImages(t *testing.T) {
	snap := sampleSnapshot()

	t.Run("designated primary must survive", func(t *testing.T) {
		update := &ProposedUpdate{
			DeletedImageURLs:  []string{"https://cdn.example.com/img/back.jpg"},
			NewPrimaryImageID: Some("2"),
		}
		set := SurvivingImages(snap, update)

		assert.Len(t, set.Existing, 1)
		id, _ := set.primary()
		assert.Equal(t, "existing:1", id)
	})

	t.Run("added primary takes over a deleted one", func(t *testing.T) {
		update := &ProposedUpdate{
			DeletedImageURLs: []string{"https://cdn.example.com/img/front.jpg"},
			AddedImages:      []AddedMedia{{}, {Name: "new.jpg", IsPrimary: true}},
		}
		set := SurvivingImages(snap, update)

		assert.Len(t, set.Added, 1)
		id, label := set.primary()
		assert.Equal(t, "added:0", id)
		assert.Equal(t, "new.jpg", label)
	})
}
