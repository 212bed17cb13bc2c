// Package timezone pins every wall-clock operation to the property's zone.
//
// The zone comes from APP_TIMEZONE and is resolved once at import. Dates sent
// by the front desk without an offset ("2024-06-01T14:00", "2024-06-01") are
// read in that zone by ParseISO, and DayKey renders the calendar day used to
// file daily notes and filter bar sales.
package timezone
