package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}

func NewMetadata(user string, at time.Time) Metadata {
	return Metadata{
		CreatedAt:  at,
		ModifiedAt: at,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

// Touch stamps a modification by user at the given instant.
func (m *Metadata) Touch(user string, at time.Time) {
	m.ModifiedAt = at
	m.ModifiedBy = user
}
