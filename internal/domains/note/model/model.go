package model

import "frontdesk/shared/model"

const (
	TableName  = "daily_notes"
	EntityName = "daily_note"

	FieldID      = "id"
	FieldDate    = "date"
	FieldContent = "content"
)

// DailyNote is the single free-text note of a calendar day, keyed by YYYY-MM-DD.
type DailyNote struct {
	ID      string `db:"id"`
	Date    string `db:"date"`
	Content string `db:"content"`
	model.Metadata
}

func (d DailyNote) Key() string { return d.Date }
