package s3_test

import (
	"testing"

	"playcourt/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestObjectNameFromURL(t *testing.T) {
	tests := []struct {
		name         string
		publicDomain string
		apiEndpoint  string
		url          string
		expected     string
	}{
		{
			name:         "public domain url",
			publicDomain: "https://cdn.example.com",
			url:          "https://cdn.example.com/courts/abc.png",
			expected:     "courts/abc.png",
		},
		{
			name:         "public domain with trailing slash",
			publicDomain: "https://cdn.example.com/",
			url:          "https://cdn.example.com/courts/abc.png",
			expected:     "courts/abc.png",
		},
		{
			name:        "api endpoint url",
			apiEndpoint: "https://s3.example.com",
			url:         "https://s3.example.com/playcourt/courts/abc.png",
			expected:    "courts/abc.png",
		},
		{
			name:         "foreign url",
			publicDomain: "https://cdn.example.com",
			apiEndpoint:  "https://s3.example.com",
			url:          "https://images.example.org/abc.png",
			expected:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s3.ObjectNameFromURL(tt.publicDomain, tt.apiEndpoint, "playcourt", tt.url))
		})
	}
}
