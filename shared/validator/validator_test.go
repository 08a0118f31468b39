package validator_test

import (
	"strings"
	"testing"

	"localtime/shared/validator"
)

type registerSessionPayload struct {
	Timezone string `validate:"omitempty,tzname" json:"timezone"`
	Label    string `validate:"required,max=64" json:"label"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *registerSessionPayload
		expectError bool
	}{
		{
			name: "valid payload",
			data: &registerSessionPayload{
				Timezone: "America/New_York",
				Label:    "desktop",
			},
			expectError: false,
		},
		{
			name: "empty timezone is allowed",
			data: &registerSessionPayload{
				Label: "desktop",
			},
			expectError: false,
		},
		{
			name: "unknown timezone",
			data: &registerSessionPayload{
				Timezone: "Invalid/Timezone",
				Label:    "desktop",
			},
			expectError: true,
		},
		{
			name: "whitespace-padded timezone",
			data: &registerSessionPayload{
				Timezone: " UTC ",
				Label:    "desktop",
			},
			expectError: true,
		},
		{
			name: "missing required label",
			data: &registerSessionPayload{
				Timezone: "UTC",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected a validation error, got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid JSON body", func(t *testing.T) {
		body := strings.NewReader(`{"timezone":"Asia/Tokyo","label":"phone"}`)

		var payload registerSessionPayload
		if err := validator.Validate(body, &payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if payload.Timezone != "Asia/Tokyo" {
			t.Errorf("expected Asia/Tokyo, got %q", payload.Timezone)
		}
	})

	t.Run("malformed JSON body", func(t *testing.T) {
		body := strings.NewReader(`{"timezone":`)

		var payload registerSessionPayload
		if err := validator.Validate(body, &payload); err == nil {
			t.Error("expected a decode error, got none")
		}
	})
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("Europe/London", "tzname"); err != nil {
		t.Errorf("expected Europe/London to validate, got %v", err)
	}

	err := validator.ValidateVar("Nowhere/Land", "tzname")
	if err == nil {
		t.Fatal("expected an error for an unknown zone")
	}

	if !strings.Contains(err.Error(), "IANA timezone") {
		t.Errorf("expected a tzname message, got %q", err.Error())
	}
}
