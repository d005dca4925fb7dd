package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.txt
var LevelsFS embed.FS

// DefaultDir is the map directory used by the package level Load and List.
const DefaultDir = "levels"

const ext = ".txt"

// Name strips directories and the .txt extension, so "levels/2.txt" and
// "2" name the same map.
func Name(path string) string {
	base := filepath.Base(filepath.ToSlash(path))
	return strings.TrimSuffix(base, ext)
}

// Library finds maps in Dir before falling back to the embedded copies,
// so a map can be edited on disk without rebuilding.
type Library struct {
	Dir string
}

func NewLibrary(dir string) *Library { return &Library{Dir: dir} }

// Load reads the map called name from DefaultDir or the embedded maps.
func Load(name string) (*Map, error) { return NewLibrary(DefaultDir).Load(name) }

// List names the maps in DefaultDir and the embedded maps.
func List() ([]string, error) { return NewLibrary(DefaultDir).List() }

// Path is the on-disk location of the map called name.
func (l *Library) Path(name string) string {
	return filepath.Join(l.Dir, Name(name)+ext)
}

func (l *Library) read(name string) ([]byte, error) {
	if data, err := os.ReadFile(l.Path(name)); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(Name(name) + ext)
}

// Load reads the map called name, preferring the copy in Dir.
func (l *Library) Load(name string) (*Map, error) {
	data, err := l.read(name)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	m.Name = Name(name)
	return m, nil
}

// List returns the names of every embedded map and every map in Dir,
// numbered maps first in numeric order.
func (l *Library) List() ([]string, error) {
	seen := make(map[string]bool)
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
			seen[Name(e.Name())] = true
		}
	}
	if disk, err := os.ReadDir(l.Dir); err == nil {
		for _, e := range disk {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
				seen[Name(e.Name())] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		a, aErr := strconv.Atoi(names[i])
		b, bErr := strconv.Atoi(names[j])
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		}
		return names[i] < names[j]
	})
	return names, nil
}
