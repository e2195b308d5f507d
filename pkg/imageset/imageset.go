// Package imageset lists a dataset directory in numeric filename order.
//
// Filenames must look like N.ext with a three character extension. The sort
// key is the filename with its last four characters removed, parsed as an
// integer, so "10.jpg" sorts after "2.jpg".
package imageset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// suffixLen is the length of ".ext" stripped before parsing the sort key.
const suffixLen = 4

// Set is the ordered list of images to annotate. An image's position in
// the set is its image_index in the ledger.
type Set struct {
	dir   string
	names []string
}

// Load reads dir and orders its files by numeric key. Subdirectories are
// skipped; any file whose key does not parse is an error.
func Load(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset directory: %w", err)
	}

	type keyed struct {
		name string
		key  int
	}
	files := make([]keyed, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		key, err := SortKey(entry.Name())
		if err != nil {
			return nil, err
		}
		files = append(files, keyed{name: entry.Name(), key: key})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].key < files[j].key
	})

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.name
	}

	return &Set{dir: dir, names: names}, nil
}

// SortKey parses the integer embedded in an N.ext filename.
func SortKey(name string) (int, error) {
	if len(name) <= suffixLen {
		return 0, fmt.Errorf("image filename %q is not of the form N.ext", name)
	}
	key, err := strconv.Atoi(name[:len(name)-suffixLen])
	if err != nil {
		return 0, fmt.Errorf("image filename %q has no numeric key: %w", name, err)
	}
	return key, nil
}

// Len returns the number of images.
func (s *Set) Len() int {
	return len(s.names)
}

// Name returns the filename at index i.
func (s *Set) Name(i int) string {
	return s.names[i]
}

// Path returns the full path of the image at index i.
func (s *Set) Path(i int) string {
	return filepath.Join(s.dir, s.names[i])
}

// Names returns a copy of the ordered filenames.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Dir returns the dataset directory.
func (s *Set) Dir() string {
	return s.dir
}
