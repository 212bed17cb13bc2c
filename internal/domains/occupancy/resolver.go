// Package occupancy projects the live state of a room or hall record from its stored
// status and the wall clock. The projection is never written back.
package occupancy

import "time"

// Stay is a record that can hold a reservation ending at CheckOutAt.
type Stay[T any] interface {
	// Engaged reports the reserved status, Occupied for rooms and Booked for halls.
	Engaged() bool
	CheckOutAt() *time.Time
	// Vacated returns the idle copy of the record with guest or customer fields cleared.
	Vacated() T
}

// Lapsed reports whether an engaged stay ended strictly before now.
func Lapsed(engaged bool, checkOut *time.Time, now time.Time) bool {
	return engaged && checkOut != nil && now.After(*checkOut)
}

// Resolve returns the vacated view of a lapsed stay and the record itself otherwise.
func Resolve[T Stay[T]](record T, now time.Time) T {
	if Lapsed(record.Engaged(), record.CheckOutAt(), now) {
		return record.Vacated()
	}

	return record
}

func ResolveAll[T Stay[T]](records []T, now time.Time) []T {
	resolved := make([]T, len(records))
	for i, record := range records {
		resolved[i] = Resolve(record, now)
	}

	return resolved
}
