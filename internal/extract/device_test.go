package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"file:///photos/card.jpg", "/photos/card.jpg"},
		{"/photos/card.jpg", "/photos/card.jpg"},
		{"card.jpg", "card.jpg"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, localPath(tt.in))
	}
}

func TestLocalPathResolvesFileURIOnDisk(t *testing.T) {
	// A file:// reference must resolve to the same on-disk file for every
	// tier; the raw URI string is not a valid filesystem path.
	path := filepath.Join(t.TempDir(), "card.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not a real jpeg"), 0o644))

	ref := "file://" + path
	_, err := os.Stat(ref)
	require.Error(t, err)

	_, err = os.Stat(localPath(ref))
	require.NoError(t, err)
}
