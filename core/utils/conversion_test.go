package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"String", "17", "17"},
		{"Bytes", []byte("abc"), "abc"},
		{"Uint", uint(42), "42"},
		{"Int64", int64(-3), "-3"},
		{"Nil", nil, ""},
		{"Float", 1.5, "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool(" yes "))
	assert.True(t, ToBool([]byte("1")))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(3.0))
}

func TestParseToggle(t *testing.T) {
	assert.Nil(t, ParseToggle(""))
	assert.Nil(t, ParseToggle("  "))

	on := ParseToggle("true")
	if assert.NotNil(t, on) {
		assert.True(t, *on)
	}
	off := ParseToggle("0")
	if assert.NotNil(t, off) {
		assert.False(t, *off)
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("17")
	assert.NoError(t, err)
	assert.Equal(t, uint(17), id)

	for _, raw := range []string{"", "0", "-1", "abc"} {
		_, err := ParseID(raw)
		assert.Error(t, err, raw)
	}
}
