package base64_test

import (
	"testing"

	"frontdesk/shared/base64"

	"github.com/stretchr/testify/assert"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"data:image/png;base64,iVBORw0KGgo=", "image/png"},
		{"data:application/pdf;base64,JVBERi0=", "application/pdf"},
		{"data:image/png,raw", ""},
		{"data:;base64,AAAA", ""},
		{"plain text", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, base64.GetContentType(tt.input))
		})
	}
}

func TestDecodedLen(t *testing.T) {
	assert.Equal(t, 5, base64.DecodedLen("data:text/plain;base64,aGVsbG8="))
	assert.Equal(t, 6, base64.DecodedLen("data:text/plain;base64,aGVsbG8h"))
	assert.Equal(t, 4, base64.DecodedLen("abcd"))
}

func TestDataURL_Decode(t *testing.T) {
	url, ok := base64.Parse("data:text/plain;base64,aGVsbG8=")
	assert.True(t, ok)

	data, err := url.Decode()
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = base64.DataURL{Payload: "%%%"}.Decode()
	assert.Error(t, err)
}
