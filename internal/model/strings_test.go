package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLength(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "Below range", input: -5, expected: 1},
		{name: "Zero", input: 0, expected: 1},
		{name: "Lower bound", input: 1, expected: 1},
		{name: "Inside range", input: 42, expected: 42},
		{name: "Upper bound", input: 99, expected: 99},
		{name: "Just above range", input: 100, expected: 99},
		{name: "Far above range", input: 100000, expected: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampLength(tt.input))
		})
	}
}
