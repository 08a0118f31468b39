// Package timestamp renders instants as text in a target timezone using
// strftime-style templates.
//
// Usage Examples:
//
//  1. Formatting in a resolved viewer timezone:
//     s := timestamp.Format(&t, "%Y-%m-%d %H:%M:%S", "America/New_York")
//
//  2. Appending the zone abbreviation in effect at that instant:
//     s := timestamp.FormatWith(&t, "Asia/Tokyo", timestamp.Options{
//         Layout:     "%H:%M",
//         AppendZone: true,
//     })
//
//  3. Substituting a custom formatter for the template:
//     s := timestamp.FormatWith(&t, tz, timestamp.Options{
//         Func: func(t time.Time, loc *time.Location) string { ... },
//     })
//
// The conversion is a same-instant wall-clock transform: the target zone's
// UTC offset and abbreviation are the ones in effect at that instant,
// including across DST transitions. A nil or zero timestamp renders as the
// empty string, never as an error.
//
// Template tokens follow POSIX strftime(3); rendering is delegated to
// github.com/itchyny/timefmt-go. The Locale option is accepted but currently
// has no effect.
package timestamp
