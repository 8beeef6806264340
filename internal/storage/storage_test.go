package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
		marker string
		want   string
	}{
		{
			name:   "marker present",
			rawURL: "http://localhost:9000/images/4f1c2d3e.jpg",
			marker: "images",
			want:   "4f1c2d3e.jpg",
		},
		{
			name:   "marker absent falls back to last segment",
			rawURL: "https://cdn.example.com/a/b/4f1c2d3e.jpg",
			marker: "images",
			want:   "4f1c2d3e.jpg",
		},
		{
			name:   "key is url-decoded",
			rawURL: "http://localhost:9000/images/my%20image.jpg",
			marker: "images",
			want:   "my image.jpg",
		},
		{
			name:   "marker in the middle of a longer path",
			rawURL: "https://storage.example.com/v1/object/public/images/abc.jpg",
			marker: "images",
			want:   "abc.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := keyFromURL(tt.rawURL, tt.marker)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyFromURLInvalid(t *testing.T) {
	_, err := keyFromURL("http://bad url with spaces", "images")
	assert.Error(t, err)
}
