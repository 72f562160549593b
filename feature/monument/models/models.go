package models

import "time"

// Suggestion statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Monument represents the 'monuments' table.
type Monument struct {
	ID                    uint     `gorm:"column:id;primaryKey"`
	Title                 string   `gorm:"column:title;type:varchar(255)"`
	Artist                *string  `gorm:"column:artist;type:varchar(255)"`
	Address               *string  `gorm:"column:address;type:varchar(255)"`
	City                  *string  `gorm:"column:city;type:varchar(128)"`
	State                 *string  `gorm:"column:state;type:varchar(64)"`
	Description           *string  `gorm:"column:description;type:text"`
	Inscription           *string  `gorm:"column:inscription;type:text"`
	IsTemporary           bool     `gorm:"column:is_temporary"`
	DeactivatedComment    *string  `gorm:"column:deactivated_comment;type:text"`
	Date                  *string  `gorm:"column:date;type:varchar(32)"` // ISO text, precision in DateFormat
	DateFormat            string   `gorm:"column:date_format;type:varchar(16)"`
	DeactivatedDate       *string  `gorm:"column:deactivated_date;type:varchar(32)"`
	DeactivatedDateFormat string   `gorm:"column:deactivated_date_format;type:varchar(16)"`
	Lat                   *float64 `gorm:"column:lat;type:double"`
	Lon                   *float64 `gorm:"column:lon;type:double"`

	Tags              []MonumentTag      `gorm:"foreignKey:MonumentID"`
	References        []Reference        `gorm:"foreignKey:MonumentID"`
	Images            []Image            `gorm:"foreignKey:MonumentID"`
	PhotoSphereImages []PhotoSphereImage `gorm:"foreignKey:MonumentID"`
}

// TableName overrides the table name for monuments.
func (Monument) TableName() string {
	return "monuments"
}

// Tag represents the 'tags' table. Materials are tags with IsMaterial set.
type Tag struct {
	ID         uint   `gorm:"column:id;primaryKey"`
	Name       string `gorm:"column:name;type:varchar(255)"`
	IsMaterial bool   `gorm:"column:is_material"`
}

func (Tag) TableName() string {
	return "tags"
}

// MonumentTag represents the 'monument_tags' join table.
type MonumentTag struct {
	ID         uint `gorm:"column:id;primaryKey"`
	MonumentID uint `gorm:"column:monument_id;index"`
	TagID      uint `gorm:"column:tag_id"`
	Tag        Tag  `gorm:"foreignKey:TagID"`
}

func (MonumentTag) TableName() string {
	return "monument_tags"
}

// Reference represents the 'monument_references' table.
type Reference struct {
	ID         uint   `gorm:"column:id;primaryKey"`
	MonumentID uint   `gorm:"column:monument_id;index"`
	URL        string `gorm:"column:url;type:varchar(2048)"`
}

// TableName avoids the reserved word REFERENCES.
func (Reference) TableName() string {
	return "monument_references"
}

// Image represents the 'images' table.
type Image struct {
	ID         uint   `gorm:"column:id;primaryKey"`
	MonumentID uint   `gorm:"column:monument_id;index"`
	URL        string `gorm:"column:url;type:varchar(2048)"`
	IsPrimary  bool   `gorm:"column:is_primary"`
}

func (Image) TableName() string {
	return "images"
}

// PhotoSphereImage represents the 'photo_sphere_images' table.
type PhotoSphereImage struct {
	ID         uint   `gorm:"column:id;primaryKey"`
	MonumentID uint   `gorm:"column:monument_id;index"`
	URL        string `gorm:"column:url;type:varchar(2048)"`
}

func (PhotoSphereImage) TableName() string {
	return "photo_sphere_images"
}

// Suggestion represents the 'suggestions' table. Payload holds the proposed
// update as JSON; moderation only changes Status.
type Suggestion struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	MonumentID uint      `gorm:"column:monument_id;index"`
	Payload    string    `gorm:"column:payload;type:text"`
	Status     string    `gorm:"column:status;type:varchar(16);default:pending"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Suggestion) TableName() string {
	return "suggestions"
}

// All lists every model, in migration order.
func All() []any {
	return []any{
		&Monument{}, &Tag{}, &MonumentTag{}, &Reference{},
		&Image{}, &PhotoSphereImage{}, &Suggestion{},
	}
}
