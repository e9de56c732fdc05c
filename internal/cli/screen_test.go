package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenClearer(t *testing.T) {
	t.Run("buffer is not cleared", func(t *testing.T) {
		assert.Nil(t, screenClearer(&bytes.Buffer{}))
	})

	t.Run("regular file is not cleared", func(t *testing.T) {
		f, err := os.Create(filepath.Join(t.TempDir(), "out"))
		require.NoError(t, err)
		defer f.Close()
		assert.Nil(t, screenClearer(f))
	})
}
