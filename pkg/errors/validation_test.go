package errors

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single letter", "x", false},
		{"with digits", "k10", false},
		{"underscore prefix", "_tmp", false},
		{"mixed case", "RingOf_4", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxNameLength+1), true},
		{"leading digit", "4ring", true},
		{"dash", "my-graph", true},
		{"space", "my graph", true},
		{"dot", "a.b", true},
		{"command word", "viz", true},
		{"quit", "quit", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "ring.svg", false},
		{"nested", "out/ring.png", false},
		{"dot file", "graph.dot", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 256), true},
		{"absolute", "/tmp/x.png", true},
		{"traversal", "../x.png", true},
		{"inner traversal", "a/../../x.png", true},
		{"backslash", "a\\b.png", true},
		{"null byte", "a\x00.png", true},
		{"newline", "a\n.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"dot", "graph6", "json", "svg", "png"}
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"dot", false},
		{"png", false},
		{"", true},
		{"pdf", true},
		{"SVG", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.input, allowed...)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidFormat)
		}
	}
}
