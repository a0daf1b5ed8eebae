// Package ui writes creature artwork and titles to the terminal.
package ui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ArtDir is the directory under the data root holding the artwork.
const ArtDir = "colorscripts"

// Variant selects which rendering of a creature is shown.
type Variant int

const (
	// Regular is the normal coloring.
	Regular Variant = iota
	// Shiny is the rare alternate coloring.
	Shiny
)

// VariantOf maps a shiny flag to a Variant.
func VariantOf(shiny bool) Variant {
	if shiny {
		return Shiny
	}
	return Regular
}

// Dir returns the artwork subdirectory for the variant.
func (v Variant) Dir() string {
	if v == Shiny {
		return "shiny"
	}
	return "regular"
}

// String returns a human-readable variant name.
func (v Variant) String() string {
	return v.Dir()
}

// ErrEntityNotFound means no artwork exists for the requested name and variant.
var ErrEntityNotFound = errors.New("entity not found")

// EntityError reports a name with no artwork. It carries the name as given.
type EntityError struct {
	Name    string
	Variant Variant
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("Invalid pokemon '%s'", e.Name)
}

func (e *EntityError) Is(target error) bool {
	return target == ErrEntityNotFound
}

// TitleStyle colors the title line. tcell.ColorDefault leaves it plain.
type TitleStyle struct {
	Regular tcell.Color
	Shiny   tcell.Color
}

// PlainTitles disables title coloring.
var PlainTitles = TitleStyle{Regular: tcell.ColorDefault, Shiny: tcell.ColorDefault}

// Printer locates artwork in a data directory and writes it out.
type Printer struct {
	fsys  fs.FS
	out   io.Writer
	style TitleStyle
}

// NewPrinter creates a printer reading artwork from fsys, which must be rooted
// at the data directory.
func NewPrinter(fsys fs.FS, out io.Writer, style TitleStyle) *Printer {
	return &Printer{
		fsys:  fsys,
		out:   out,
		style: style,
	}
}

// ArtPath returns the path of the artwork for name and variant inside the data directory.
func ArtPath(name string, variant Variant) string {
	return path.Join(ArtDir, variant.Dir(), name+".txt")
}

// Show writes the artwork for name, preceded by a title line when showTitle is set.
func (p *Printer) Show(name string, showTitle bool, variant Variant) error {
	art, err := p.read(name, variant)
	if err != nil {
		return err
	}

	if showTitle {
		if err := p.writeTitle(name, variant); err != nil {
			return err
		}
	}

	_, err = io.WriteString(p.out, art+"\n")
	return err
}

// List writes the name list content verbatim.
func (p *Printer) List(raw string) error {
	_, err := io.WriteString(p.out, raw+"\n")
	return err
}

func (p *Printer) read(name string, variant Variant) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", &EntityError{Name: name, Variant: variant}
	}

	content, err := fs.ReadFile(p.fsys, ArtPath(name, variant))
	if err == nil {
		return string(content), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to read artwork for %s: %w", name, err)
	}
	return "", &EntityError{Name: name, Variant: variant}
}

func (p *Printer) writeTitle(name string, variant Variant) error {
	title := name
	color := p.style.Regular
	if variant == Shiny {
		title = name + " (shiny)"
		color = p.style.Shiny
	}

	if prefix := sgrForeground(color); prefix != "" {
		title = prefix + title + sgrReset
	}

	_, err := io.WriteString(p.out, title+"\n")
	return err
}
