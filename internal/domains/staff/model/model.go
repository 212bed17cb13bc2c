package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldName      = "name"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

type Staff struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Name      string     `db:"name"`
	Role      string     `db:"role"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
