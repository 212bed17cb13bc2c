package model

import (
	"frontdesk/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID      = "id"
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldEmail   = "email"
	FieldAddress = "address"
	FieldIDProof = "id_proof"
	FieldHistory = "history"
)

type Guest struct {
	ID      string         `db:"id"`
	Name    string         `db:"name"`
	Phone   string         `db:"phone"`
	Email   string         `db:"email"`
	Address string         `db:"address"`
	IDProof string         `db:"id_proof"`
	History pq.StringArray `db:"history"`
	model.Metadata
}
