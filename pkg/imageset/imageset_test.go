package imageset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0644))
	}
}

func TestLoadSortsNumerically(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "2.jpg", "10.jpg", "1.jpg")

	set, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"1.jpg", "2.jpg", "10.jpg"}, set.Names())
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, filepath.Join(dir, "10.jpg"), set.Path(2))
	assert.Equal(t, "2.jpg", set.Name(1))
	assert.Equal(t, dir, set.Dir())
}

func TestLoadAllowsGapsAndMixedExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "100.png", "7.jpg", "30.bmp")

	set, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"7.jpg", "30.bmp", "100.png"}, set.Names())
}

func TestLoadSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "0.jpg")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "thumbs"), 0755))

	set, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"0.jpg"}, set.Names())
}

func TestLoadRejectsNonNumericNames(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "0.jpg", "cat.jpg")

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestSortKey(t *testing.T) {
	tests := []struct {
		name    string
		key     int
		wantErr bool
	}{
		{"0.jpg", 0, false},
		{"42.png", 42, false},
		{"007.jpg", 7, false},
		// the last four characters are stripped regardless of shape
		{"12.jpeg", 0, true},
		{"a.jpg", 0, true},
		{".jpg", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := SortKey(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "0.jpg", "1.jpg")

	set, err := Load(dir)
	require.NoError(t, err)

	names := set.Names()
	names[0] = "mutated"
	assert.Equal(t, "0.jpg", set.Name(0))
}
