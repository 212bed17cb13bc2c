package model_test

import (
	"testing"
	"time"

	"frontdesk/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_Touch(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	metadata := model.NewMetadata("admin", created)
	metadata.Touch("clerk", later)

	assert.Equal(t, created, metadata.CreatedAt)
	assert.Equal(t, "admin", metadata.CreatedBy)
	assert.Equal(t, later, metadata.ModifiedAt)
	assert.Equal(t, "clerk", metadata.ModifiedBy)
}
