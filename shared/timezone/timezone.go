package timezone

import (
	"localtime/config"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
)

var (
	defaultName     string
	defaultLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		defaultName = "UTC"
		defaultLocation = time.UTC
		return
	}

	defaultName = cfg.App.Timezone
	defaultLocation = loc
	log.Info().
		Str("timezone", defaultName).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Default returns the application default timezone name, always a valid one.
func Default() string {
	if defaultName == "" {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return "UTC"
	}
	return defaultName
}

// DefaultLocation returns the location for the application default timezone.
func DefaultLocation() *time.Location {
	if defaultLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")
		return time.UTC
	}
	return defaultLocation
}

// IsValid reports whether name is a member of the IANA Time Zone Database.
// The check is verbatim: names with surrounding whitespace fail, and the
// pseudo-zone "Local" is not an IANA name.
func IsValid(name string) bool {
	if name == "" || name == "Local" {
		return false
	}

	_, err := time.LoadLocation(name)

	return err == nil
}

// Resolve turns an untrusted candidate timezone name into a safe one.
// An empty candidate silently resolves to fallback (the browser simply never
// reported one). An unrecognized candidate resolves to fallback with a
// warning naming the offender. A valid candidate is returned unchanged.
// Resolve never fails; fallback is assumed valid and is not re-checked.
func Resolve(candidate, fallback string) string {
	if candidate == "" {
		return fallback
	}

	if !IsValid(candidate) {
		log.Warn().
			Str("timezone", candidate).
			Msg("Client reported an unrecognized timezone, falling back")

		return fallback
	}

	return candidate
}

// ResolveClient resolves a per-viewer candidate that may be absent entirely.
// A nil candidate means no viewer session was available to read from, which
// is a distinct condition from a session that reported nothing; it gets its
// own warning before degrading to fallback.
func ResolveClient(candidate *string, fallback string) string {
	if candidate == nil {
		log.Warn().Msg("No active viewer session, falling back to default timezone")

		return fallback
	}

	return Resolve(*candidate, fallback)
}

// Location loads the location for a resolved timezone name. Unknown names
// degrade to the application default location rather than failing; callers
// are expected to have resolved the name first.
func Location(name string) *time.Location {
	if name == "" {
		return DefaultLocation()
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone location, using application default")

		return DefaultLocation()
	}

	return loc
}
