package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetValidator(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator should return the same instance")
	}
}

func TestCustomTags(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		tag   string
		value string
		ok    bool
	}{
		{"iso_date", "2024-02-29", true},
		{"iso_date", "2023-02-29", false},
		{"iso_date", "02/29/2024", false},
		{"date_layout", "MM/DD/YYYY", true},
		{"date_layout", "YYYY", false},
		{"listen_addr", ":8080", true},
		{"listen_addr", "127.0.0.1:0", true},
		{"listen_addr", "localhost", false},
		{"listen_addr", "localhost:http", false},
		{"listen_addr", ":70000", false},
	}

	for _, tt := range tests {
		err := v.Var(tt.value, tt.tag)
		assert.Equal(t, tt.ok, err == nil, "%s %q", tt.tag, tt.value)
	}
}
