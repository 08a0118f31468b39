package timezone_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"

	"localtime/shared/timezone"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	original := log.Logger
	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	t.Cleanup(func() {
		log.Logger = original
	})

	return &buf
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		fallback  string
		expected  string
		wantWarn  bool
	}{
		{
			name:      "empty candidate falls back silently",
			candidate: "",
			fallback:  "Asia/Jakarta",
			expected:  "Asia/Jakarta",
			wantWarn:  false,
		},
		{
			name:      "unknown candidate falls back with warning",
			candidate: "Invalid/Timezone",
			fallback:  "UTC",
			expected:  "UTC",
			wantWarn:  true,
		},
		{
			name:      "valid candidate passes through",
			candidate: "America/New_York",
			fallback:  "UTC",
			expected:  "America/New_York",
			wantWarn:  false,
		},
		{
			name:      "whitespace-padded candidate is not trimmed",
			candidate: " America/New_York ",
			fallback:  "UTC",
			expected:  "UTC",
			wantWarn:  true,
		},
		{
			name:      "Local pseudo-zone is rejected",
			candidate: "Local",
			fallback:  "UTC",
			expected:  "UTC",
			wantWarn:  true,
		},
		{
			name:      "Etc zone passes through",
			candidate: "Etc/GMT+5",
			fallback:  "UTC",
			expected:  "Etc/GMT+5",
			wantWarn:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			result := timezone.Resolve(tt.candidate, tt.fallback)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}

			output := buf.String()
			if tt.wantWarn {
				if !strings.Contains(output, "warn") {
					t.Errorf("expected a warning, got %q", output)
				}
				if !strings.Contains(output, tt.candidate) {
					t.Errorf("expected warning to name the candidate %q, got %q", tt.candidate, output)
				}
				if strings.Count(output, "warn") != 1 {
					t.Errorf("expected exactly one warning, got %q", output)
				}
			} else if strings.Contains(output, "warn") {
				t.Errorf("expected no warning, got %q", output)
			}
		})
	}
}

func TestResolveClient(t *testing.T) {
	t.Run("nil candidate warns about missing session", func(t *testing.T) {
		buf := captureLog(t)

		result := timezone.ResolveClient(nil, "UTC")
		if result != "UTC" {
			t.Errorf("expected UTC, got %q", result)
		}

		if !strings.Contains(buf.String(), "No active viewer session") {
			t.Errorf("expected missing-session warning, got %q", buf.String())
		}
	})

	t.Run("present candidate delegates to Resolve", func(t *testing.T) {
		captureLog(t)

		tz := "Asia/Tokyo"
		result := timezone.ResolveClient(&tz, "UTC")
		if result != "Asia/Tokyo" {
			t.Errorf("expected Asia/Tokyo, got %q", result)
		}
	})

	t.Run("present empty candidate falls back silently", func(t *testing.T) {
		buf := captureLog(t)

		empty := ""
		result := timezone.ResolveClient(&empty, "Europe/London")
		if result != "Europe/London" {
			t.Errorf("expected Europe/London, got %q", result)
		}

		if strings.Contains(buf.String(), "warn") {
			t.Errorf("expected no warning, got %q", buf.String())
		}
	})
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "canonical zone", input: "America/New_York", expected: true},
		{name: "UTC", input: "UTC", expected: true},
		{name: "Etc offset zone", input: "Etc/GMT+5", expected: true},
		{name: "empty string", input: "", expected: false},
		{name: "Local pseudo-zone", input: "Local", expected: false},
		{name: "unknown zone", input: "Invalid/Timezone", expected: false},
		{name: "leading whitespace", input: " UTC", expected: false},
		{name: "trailing whitespace", input: "UTC ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timezone.IsValid(tt.input); got != tt.expected {
				t.Errorf("IsValid(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	loc := timezone.Location("Asia/Tokyo")
	if loc.String() != "Asia/Tokyo" {
		t.Errorf("expected Asia/Tokyo, got %s", loc.String())
	}

	captureLog(t)

	fallback := timezone.Location("Invalid/Timezone")
	if fallback == nil {
		t.Error("expected a location for an unknown name, got nil")
	}

	if timezone.Location("") == nil {
		t.Error("expected the default location for an empty name, got nil")
	}
}

func TestDefault(t *testing.T) {
	name := timezone.Default()
	if !timezone.IsValid(name) {
		t.Errorf("expected default %q to be valid", name)
	}

	if timezone.DefaultLocation() == nil {
		t.Error("expected a default location, got nil")
	}
}
