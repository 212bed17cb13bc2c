package s3

import (
	"testing"

	"frontdesk/config"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.PublicDomain = "https://cdn.example.com"
	cfg.External.S3.APIEndpoint = "https://s3.example.com"
	cfg.External.S3.BucketName = "docs"

	svc := &s3Impl{cfg: cfg}

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "public url from upload", url: "https://cdn.example.com/guest/a.png", want: "guest/a.png"},
		{name: "public url with bucket", url: "https://cdn.example.com/docs/guest/a.png", want: "guest/a.png"},
		{name: "api endpoint url", url: "https://s3.example.com/docs/guest/a.png", want: "guest/a.png"},
		{name: "foreign url", url: "https://elsewhere.example.com/a.png", want: ""},
		{name: "plain document number", url: "AADHAAR-1234", want: ""},
		{name: "empty", url: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.KeyFromURL("docs", tt.url))
		})
	}
}

func TestKeyFromURL_DefaultBucket(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.APIEndpoint = "https://s3.example.com"
	cfg.External.S3.BucketName = "docs"

	svc := &s3Impl{cfg: cfg}

	assert.Equal(t, "guest/a.png", svc.KeyFromURL("", "https://s3.example.com/docs/guest/a.png"))
	assert.Empty(t, svc.KeyFromURL("", "/guest/a.png"))
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "guest/a.png", Object{Directory: "guest", Name: "a.png"}.key())
	assert.Equal(t, "a.png", Object{Name: "a.png"}.key())
}
