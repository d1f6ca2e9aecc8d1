package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:    "single word",
			value:   "crust",
			wantErr: false,
		},
		{
			name:    "two words",
			value:   "tectonic plates",
			wantErr: false,
		},
		{
			name:    "hyphenated",
			value:   "earth-layers-quiz",
			wantErr: false,
		},
		{
			name:    "sticker key",
			value:   "id-6f1c2a8e-93b4-4c1d-9f0e-2d7a5b8c1e34",
			wantErr: false,
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
		{
			name:    "upper case",
			value:   "Crust",
			wantErr: true,
		},
		{
			name:    "path traversal",
			value:   "../crust",
			wantErr: true,
		},
		{
			name:    "trailing space",
			value:   "crust ",
			wantErr: true,
		},
		{
			name:    "double hyphen",
			value:   "earth--unit",
			wantErr: true,
		},
		{
			name:    "too long",
			value:   strings.Repeat("a", 65),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier("wordId", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifier(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorNamesField(t *testing.T) {
	err := ValidateIdentifier("unit", "")

	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if ve.Field != "unit" || err.Error() != "unit: unit is required" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestValidateAnswer(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		wantErr bool
	}{
		{"option index", "2", false},
		{"empty", "", false},
		{"sentence", "The crust is the outer layer.", false},
		{"too long", strings.Repeat("x", 501), true},
		{"invalid utf8", "\xff\xfe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateAnswer(tt.answer); (err != nil) != tt.wantErr {
				t.Errorf("ValidateAnswer() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
