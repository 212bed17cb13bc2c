package constant

import (
	"time"
)

// SystemUser stamps records written by the process itself, e.g. seeded collections.
const SystemUser = "system"

type contextKey string

// Identity placed in the request context by the auth middleware.
const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

// Staff roles. Each one lands on its own workspace after login.
const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
	RoleRestaurant   = "restaurant"
	RoleBar          = "bar"
)

// Audit columns shared by every table.
const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
	MaxValueLimit     = 100
)

const (
	DateFormat       = time.RFC3339
	MinutesToSeconds = 60
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
