package reconcile

// Kind classifies an attribute row by the reconciler that produced it.
type Kind string

const (
	// KindScalar is a plain string attribute (title, artist, address...).
	KindScalar Kind = "scalar"
	// KindBoolean is a yes/no attribute.
	KindBoolean Kind = "boolean"
	// KindDate is one of the tagged date attributes.
	KindDate Kind = "date"
	// KindSet is a partition row of the materials or tags facet.
	KindSet Kind = "set"
	// KindReference is a partition row of the references list.
	KindReference Kind = "reference"
	// KindMedia is an image or 360° image row.
	KindMedia Kind = "media"
)

// None is the display marker for an attribute without a value.
const None = "NONE"

// AttributeDiff is a single reconciled attribute row.
type AttributeDiff struct {
	// Key is the stable schedule key (e.g. "title", "materials.added").
	Key string `json:"key"`

	// Label is the human readable attribute name.
	Label string `json:"label"`

	// OldDisplay is the rendered snapshot value, or None.
	OldDisplay string `json:"old_display"`

	// NewDisplay is the rendered proposed value, or None.
	NewDisplay string `json:"new_display"`

	// Changed reports whether the row belongs to the changed sequence.
	Changed bool `json:"changed"`

	// Kind is the reconciler that produced the row.
	Kind Kind `json:"kind"`
}

// DiffResult partitions every scheduled attribute into changed and unchanged rows.
// A schedule key appears in exactly one of the two sequences.
type DiffResult struct {
	Changed   []AttributeDiff `json:"changed"`
	Unchanged []AttributeDiff `json:"unchanged"`
}

// Len returns the total number of rows.
func (r DiffResult) Len() int {
	return len(r.Changed) + len(r.Unchanged)
}

// Find returns the row for key and whether it is in the changed sequence.
func (r DiffResult) Find(key string) (AttributeDiff, bool, bool) {
	for _, d := range r.Changed {
		if d.Key == key {
			return d, true, true
		}
	}
	for _, d := range r.Unchanged {
		if d.Key == key {
			return d, false, true
		}
	}
	return AttributeDiff{}, false, false
}

// DateFormat is the stored precision of a monument date.
type DateFormat string

const (
	FormatUnknown   DateFormat = "unknown"
	FormatYear      DateFormat = "year"
	FormatMonthYear DateFormat = "month-year"
	FormatExactDate DateFormat = "exact-date"
)

// TaggedDate is a stored date value together with its precision.
type TaggedDate struct {
	// Value is an ISO-8601 date ("1990", "1990-01-01" or an RFC 3339 timestamp).
	// Nil means no date is recorded.
	Value *string `json:"value"`

	// Format is the precision the value was recorded with.
	Format DateFormat `json:"format"`
}

// Coordinates holds an optional latitude/longitude pair.
type Coordinates struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// TagAssociation links a monument to a tag or material.
type TagAssociation struct {
	TagID      string `json:"tag_id"`
	Name       string `json:"name"`
	IsMaterial bool   `json:"is_material"`
}

// Reference is a stored source link.
type Reference struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Image is a stored photographic image.
type Image struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

// PhotoSphereImage is a stored 360° image.
type PhotoSphereImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// AddedMedia is a newly attached image or 360° image that has no id yet.
type AddedMedia struct {
	Name      string `json:"name,omitempty"`
	URL       string `json:"url,omitempty"`
	IsPrimary bool   `json:"is_primary,omitempty"`
}

// populated reports whether the entry carries any identifying data.
func (m AddedMedia) populated() bool {
	return m.Name != "" || m.URL != ""
}

// Snapshot is the read-only persisted state of a monument.
type Snapshot struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Artist             string             `json:"artist"`
	Address            string             `json:"address"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	Description        string             `json:"description"`
	Inscription        string             `json:"inscription"`
	IsTemporary        bool               `json:"is_temporary"`
	DeactivatedComment string             `json:"deactivated_comment"`
	Date               TaggedDate         `json:"date"`
	DeactivatedDate    TaggedDate         `json:"deactivated_date"`
	Coordinates        Coordinates        `json:"coordinates"`
	TagAssociations    []TagAssociation   `json:"tag_associations"`
	References         []Reference        `json:"references"`
	Images             []Image            `json:"images"`
	PhotoSphereImages  []PhotoSphereImage `json:"photo_sphere_images"`
}

// ReferenceUpdate carries the proposed edits to the reference list.
type ReferenceUpdate struct {
	// UpdatedURLsByID maps an existing reference id to its replacement URL.
	UpdatedURLsByID map[string]string `json:"updated_reference_urls_by_id"`

	// NewURLs are URLs for brand-new references.
	NewURLs []string `json:"new_reference_urls"`

	// DeletedIDs are existing reference ids to remove.
	DeletedIDs []string `json:"deleted_reference_ids"`
}

// ProposedUpdate is a change request against a Snapshot.
// Absent optionals mean "no proposal for this attribute".
type ProposedUpdate struct {
	NewTitle              Optional[string]         `json:"new_title"`
	NewArtist             Optional[string]         `json:"new_artist"`
	NewAddress            Optional[string]         `json:"new_address"`
	NewCity               Optional[string]         `json:"new_city"`
	NewState              Optional[string]         `json:"new_state"`
	NewDescription        Optional[string]         `json:"new_description"`
	NewInscription        Optional[string]         `json:"new_inscription"`
	NewIsTemporary        Optional[bool]           `json:"new_is_temporary"`
	NewDeactivatedComment Optional[string]         `json:"new_deactivated_comment"`
	NewLatitude           Optional[CoordinateText] `json:"new_latitude"`
	NewLongitude          Optional[CoordinateText] `json:"new_longitude"`

	Date            DateProposal `json:"-"`
	DeactivatedDate DateProposal `json:"-"`

	NewMaterials Optional[[]string] `json:"new_materials"`
	NewTags      Optional[[]string] `json:"new_tags"`

	References ReferenceUpdate `json:"references"`

	AddedImages                 []AddedMedia `json:"added_images"`
	DeletedImageURLs            []string     `json:"deleted_image_urls"`
	AddedPhotoSphereImages      []AddedMedia `json:"added_photo_sphere_images"`
	DeletedPhotoSphereImageURLs []string     `json:"deleted_photo_sphere_image_urls"`

	// NewPrimaryImageID designates the primary among the surviving stored images.
	NewPrimaryImageID Optional[string] `json:"new_primary_image_id"`
}
