package reconcile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_JSON(t *testing.T) {
	var payload struct {
		Title     Optional[string]   `json:"title"`
		Artist    Optional[string]   `json:"artist"`
		Materials Optional[[]string] `json:"materials"`
		Tags      Optional[[]string] `json:"tags"`
	}

	err := json.Unmarshal([]byte(`{"title": "", "artist": null, "tags": []}`), &payload)
	require.NoError(t, err)

	assert.True(t, payload.Title.Present, "explicit empty string is a proposal")
	assert.False(t, payload.Artist.Present, "null is no proposal")
	assert.False(t, payload.Materials.Present, "missing key is no proposal")
	assert.True(t, payload.Tags.Present, "empty list is a proposal")
	assert.Empty(t, payload.Tags.Value)
}

func TestOptional_Helpers(t *testing.T) {
	assert.Equal(t, "old", Absent[string]().OrElse("old"))
	assert.Equal(t, "", Some("").OrElse("old"))

	v, ok := Some(3).Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	out, err := json.Marshal(Absent[string]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestCoordinateText_JSON(t *testing.T) {
	var payload struct {
		Lat Optional[CoordinateText] `json:"lat"`
		Lon Optional[CoordinateText] `json:"lon"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"lat": -74.0445, "lon": "40.6892"}`), &payload))
	assert.Equal(t, Some(CoordinateText("-74.0445")), payload.Lat)
	assert.Equal(t, Some(CoordinateText("40.6892")), payload.Lon)

	assert.Error(t, json.Unmarshal([]byte(`{"lat": [1]}`), &payload))
}
