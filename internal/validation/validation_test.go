package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamePattern_AcceptsAndRejects(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"Alice", true},
		{"Bob-2", true},
		{"A", false},
		{"", false},
		{"this name is definitely far too long", false},
		{"bad$name", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, namePattern.MatchString(tt.name))
		})
	}
}
