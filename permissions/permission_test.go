package permissions_test

import (
	"net/http"
	"testing"

	"frontdesk/permissions"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	if !assert.NotNil(t, data) {
		return
	}

	assert.False(t, data.Skip)
	assert.True(t, data.FindPermissions("/v1/auth/login", http.MethodPost).Skip)
	assert.Equal(t, []string{"admin"}, data.FindPermissions("/v1/staff/{id}", http.MethodDelete).Permissions)
	assert.Empty(t, data.FindPermissions("/v1/rooms/", http.MethodGet).Permissions)
}

func TestFindPermissions_Normalizes(t *testing.T) {
	data := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/staff/", Method: "GET", Permissions: []string{"admin"}},
		},
	}

	assert.True(t, data.FindPermissions("/v1/staff", http.MethodGet).Allows("admin"))
	assert.False(t, data.FindPermissions("/v1/staff/", "get").Allows("bar"))
	assert.True(t, data.FindPermissions("/v1/rooms", http.MethodGet).Allows("bar"))
}

func TestParse(t *testing.T) {
	_, err := permissions.Parse([]byte("{"))
	assert.Error(t, err)

	data, err := permissions.Parse([]byte(`{"skip":true}`))
	assert.NoError(t, err)
	assert.True(t, data.Skip)
}
