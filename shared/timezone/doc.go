// Package timezone resolves untrusted client-reported timezone names into
// validated IANA timezone names.
//
// Usage Examples:
//
//  1. Resolving a browser-reported name against the app default:
//     tz := timezone.Resolve(clientTz, timezone.Default())
//
//  2. Resolving from a viewer session that may be absent:
//     tz := timezone.ResolveClient(sessionTz, timezone.Default())
//
//  3. Checking a name before storing it:
//     ok := timezone.IsValid("America/New_York")
//
//  4. Getting the location for a resolved name:
//     loc := timezone.Location(tz)
//
// Candidate names are checked verbatim against the IANA Time Zone Database:
// whitespace-padded names and the pseudo-zone "Local" are rejected, not
// auto-corrected. Resolution never fails; unknown names degrade to the given
// fallback with a warning-level log.
//
// The application default timezone is configured via the APP_TIMEZONE
// environment variable and is initialized when the package is imported.
// The IANA database itself is embedded (time/tzdata), so lookups behave the
// same on every platform.
package timezone
