package catalog

import (
	"fmt"
	"io/fs"
	"strings"
)

// NamesFile is the name list asset at the root of the data directory.
const NamesFile = "nameslist.txt"

// Names is the ordered name list. Line N of the asset is global index N.
type Names struct {
	raw   string
	names []string
}

// ParseNames builds a name list from raw asset content.
func ParseNames(content string) *Names {
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	names := make([]string, len(lines))
	for i, l := range lines {
		names[i] = strings.TrimSpace(l)
	}
	return &Names{raw: content, names: names}
}

// LoadNames reads the name list asset from fsys.
func LoadNames(fsys fs.FS) (*Names, error) {
	content, err := fs.ReadFile(fsys, NamesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read name list: %w", err)
	}
	return ParseNames(string(content)), nil
}

// At returns the name at the 1-based global index.
func (n *Names) At(index int) (string, error) {
	if index < 1 || index > len(n.names) {
		return "", fmt.Errorf("global index %d outside name list of %d entries", index, len(n.names))
	}
	return n.names[index-1], nil
}

// Count returns the number of names.
func (n *Names) Count() int {
	return len(n.names)
}

// Raw returns the asset content exactly as read.
func (n *Names) Raw() string {
	return n.raw
}
