package timestamp

import (
	"fmt"
	"strings"
	"time"

	timefmt "github.com/itchyny/timefmt-go"

	"localtime/shared/failure"
	"localtime/shared/timezone"
)

// Default strftime layouts for the three render surfaces.
const (
	LayoutDatetime = "%Y-%m-%d %H:%M:%S"
	LayoutDate     = "%Y-%m-%d"
	LayoutTime     = "%H:%M:%S"
)

// Formatter produces display text for an instant in a resolved location.
// When supplied it replaces template rendering entirely but still receives
// the resolved zone.
type Formatter func(t time.Time, loc *time.Location) string

// Options controls rendering beyond the plain layout string.
type Options struct {
	// Layout is the strftime template. Ignored when Func is set.
	Layout string

	// Locale is accepted for forward compatibility and currently has no effect.
	Locale string

	// AppendZone appends the zone abbreviation in effect at the instant,
	// separated by a space, computed independently of the layout.
	AppendZone bool

	// Func substitutes a caller-supplied formatter for the layout.
	Func Formatter
}

// Format renders t in the tz timezone using a strftime layout. A nil or zero
// timestamp renders as the empty string. An empty tz means the application
// default timezone; tz is otherwise assumed already resolved and an unknown
// name degrades to the default zone.
func Format(t *time.Time, layout, tz string) string {
	return FormatWith(t, tz, Options{Layout: layout})
}

// FormatWith is Format with full Options.
func FormatWith(t *time.Time, tz string, opts Options) string {
	if t == nil || t.IsZero() {
		return ""
	}

	loc := location(tz)
	local := t.In(loc)

	var out string
	if opts.Func != nil {
		out = opts.Func(*t, loc)
	} else {
		out = timefmt.Format(local, opts.Layout)
	}

	if opts.AppendZone {
		out += " " + abbreviation(local)
	}

	return out
}

// FormatAll renders each element independently; nil and zero elements render
// as empty strings without failing the whole call.
func FormatAll(ts []*time.Time, layout, tz string) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = Format(t, layout, tz)
	}

	return out
}

// Abbreviation returns the zone abbreviation in effect for t in tz,
// equivalent to the %Z token.
func Abbreviation(t time.Time, tz string) string {
	return abbreviation(t.In(location(tz)))
}

// FormatValue renders a dynamically typed value. Missing values (nil, zero
// timestamps, all-empty collections) render as the empty string; a value
// that is not a recognized date/time kind at all returns a visible failure
// instead of silently recovering.
func FormatValue(v any, layout, tz string) (string, error) {
	return FormatValueWith(v, tz, Options{Layout: layout})
}

// FormatValueWith is FormatValue with full Options. Collection elements are
// rendered independently and joined with ", "; invalid elements are skipped.
func FormatValueWith(v any, tz string, opts Options) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case time.Time:
		return FormatWith(&val, tz, opts), nil
	case *time.Time:
		return FormatWith(val, tz, opts), nil
	case []time.Time:
		parts := make([]string, len(val))
		for i := range val {
			parts[i] = FormatWith(&val[i], tz, opts)
		}
		return joinNonEmpty(parts), nil
	case []*time.Time:
		parts := make([]string, len(val))
		for i := range val {
			parts[i] = FormatWith(val[i], tz, opts)
		}
		return joinNonEmpty(parts), nil
	case int64:
		t := time.Unix(val, 0).UTC()
		return FormatWith(&t, tz, opts), nil
	case float64:
		sec := int64(val)
		nsec := int64((val - float64(sec)) * float64(time.Second))
		t := time.Unix(sec, nsec).UTC()
		return FormatWith(&t, tz, opts), nil
	case string:
		if val == "" {
			return "", nil
		}
		t, err := time.Parse(time.RFC3339, val)
		if err != nil {
			return "", failure.UnsupportedValue(fmt.Sprintf("input value %q is not a date/time", val))
		}
		return FormatWith(&t, tz, opts), nil
	default:
		return "", failure.UnsupportedValue(fmt.Sprintf("input value of type %T is not a date/time", v))
	}
}

func joinNonEmpty(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, ", ")
}

func location(tz string) *time.Location {
	if tz == "" {
		return timezone.DefaultLocation()
	}

	return timezone.Location(tz)
}

func abbreviation(t time.Time) string {
	return t.Format("MST")
}
