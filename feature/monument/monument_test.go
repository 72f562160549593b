package monument

import (
	"encoding/json"
	"testing"

	"monument-catalog/core/database"
	"monument-catalog/feature/monument/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }

// setupDB creates an in-memory catalog with one monument and two suggestions:
// suggestion 1 is pending, suggestion 2 is already approved.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, NewRepository(db).Migrate())

	bronze := models.Tag{ID: 1, Name: "Bronze", IsMaterial: true}
	copper := models.Tag{ID: 2, Name: "Copper", IsMaterial: true}
	liberty := models.Tag{ID: 3, Name: "Liberty"}
	require.NoError(t, db.Create([]*models.Tag{&bronze, &copper, &liberty}).Error)

	m := models.Monument{
		ID:         1,
		Title:      "Liberty Statue",
		Artist:     strPtr("Bartholdi"),
		City:       strPtr("New York"),
		State:      strPtr("NY"),
		Date:       strPtr("1886-10-28"),
		DateFormat: "exact-date",
		Lat:        floatPtr(40.6892),
		Lon:        floatPtr(-74.0445),
		Tags: []models.MonumentTag{
			{ID: 1, TagID: 1},
			{ID: 2, TagID: 2},
			{ID: 3, TagID: 3},
		},
		References: []models.Reference{
			{ID: 10, URL: "http://a.example.com"},
			{ID: 11, URL: "http://b.example.com"},
		},
		Images: []models.Image{
			{ID: 20, URL: "https://cdn.example.com/monuments/images/front.jpg", IsPrimary: true},
			{ID: 21, URL: "https://cdn.example.com/monuments/images/back.jpg"},
		},
		PhotoSphereImages: []models.PhotoSphereImage{
			{ID: 30, URL: "https://cdn.example.com/monuments/photo-spheres/pano.jpg"},
		},
	}
	require.NoError(t, db.Create(&m).Error)

	require.NoError(t, db.Create(&models.Suggestion{
		ID:         1,
		MonumentID: 1,
		Payload:    `{"new_title":"Statue of Liberty","new_date":{"type":"year","year":"1886"}}`,
		Status:     models.StatusPending,
	}).Error)
	require.NoError(t, db.Create(&models.Suggestion{
		ID:         2,
		MonumentID: 1,
		Payload:    `{}`,
		Status:     models.StatusApproved,
	}).Error)

	return db
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
