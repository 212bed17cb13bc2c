package dto

import (
	"frontdesk/internal/domains/note/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

type PutNoteRequest struct {
	Content string `json:"content" validate:"max=10000"`
}

type NoteResponse struct {
	Date       string  `json:"date"`
	Content    string  `json:"content"`
	ModifiedAt *string `json:"modified_at,omitempty"`
	ModifiedBy string  `json:"modified_by,omitempty"`
}

func (r *NoteResponse) FromModel(note model.DailyNote) {
	r.Date = note.Date
	r.Content = note.Content
	r.ModifiedBy = note.ModifiedBy

	if !note.ModifiedAt.IsZero() {
		r.ModifiedAt = timezone.FormatPtr(&note.ModifiedAt, constant.DateFormat)
	}
}
