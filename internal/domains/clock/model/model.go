package model

import "localtime/shared/timestamp"

const (
	EntityName = "clock"
)

// Kind selects one of the three render surfaces.
type Kind string

const (
	KindDatetime Kind = "datetime"
	KindDate     Kind = "date"
	KindTime     Kind = "time"
)

// Layout returns the default strftime template for the surface.
func (k Kind) Layout() string {
	switch k {
	case KindDate:
		return timestamp.LayoutDate
	case KindTime:
		return timestamp.LayoutTime
	default:
		return timestamp.LayoutDatetime
	}
}

// Valid reports whether k names a known render surface.
func (k Kind) Valid() bool {
	switch k {
	case KindDatetime, KindDate, KindTime:
		return true
	}

	return false
}
