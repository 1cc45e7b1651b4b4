package errors

import (
	"strings"
	"testing"
)

func TestValidateVertexCount(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"Zero", 0, false},
		{"Small", 12, false},
		{"Max", MaxVertexCount, false},
		{"Negative", -1, true},
		{"TooLarge", MaxVertexCount + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVertexCount(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVertexCount(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidCount {
				t.Errorf("code = %q, want %q", GetCode(err), ErrCodeInvalidCount)
			}
		})
	}
}

func TestValidateProbability(t *testing.T) {
	tests := []struct {
		name    string
		p       float64
		wantErr bool
	}{
		{"Zero", 0, false},
		{"Half", 0.5, false},
		{"One", 1, false},
		{"Negative", -0.1, true},
		{"AboveOne", 1.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProbability(tt.p)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProbability(%g) error = %v, wantErr %v", tt.p, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSeed(t *testing.T) {
	if err := ValidateSeed(1); err != nil {
		t.Errorf("ValidateSeed(1) = %v, want nil", err)
	}
	if err := ValidateSeed(-1); err == nil {
		t.Error("ValidateSeed(-1) should fail")
	}
}

func TestValidateVertexID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"Numeric", "42", false},
		{"Label", "auth-service", false},
		{"Empty", "", true},
		{"Pipe", "a|b", true},
		{"Control", "a\x00b", true},
		{"TooLong", strings.Repeat("x", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVertexID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVertexID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	if err := ValidateOutputPath("out/graph.svg"); err != nil {
		t.Errorf("valid path rejected: %v", err)
	}
	if err := ValidateOutputPath(""); err == nil {
		t.Error("empty path should fail")
	}
	if err := ValidateOutputPath("bad\x00path"); err == nil {
		t.Error("null byte should fail")
	}
}
