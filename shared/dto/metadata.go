package dto

import (
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

// Metadata is the audit trail of a record as rendered to clients. Seeded
// records that never touched the database have no timestamps and render empty.
type Metadata struct {
	CreatedAt  string `json:"created_at,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(metadata model.Metadata) {
	m.CreatedAt = formatAudit(metadata.CreatedAt)
	m.ModifiedAt = formatAudit(metadata.ModifiedAt)
	m.CreatedBy = metadata.CreatedBy
	m.ModifiedBy = metadata.ModifiedBy
}

func formatAudit(at time.Time) string {
	if at.IsZero() {
		return constant.Empty
	}

	return timezone.Format(at, constant.DateFormat)
}
