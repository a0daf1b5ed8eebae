package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// ParseColor accepts a hex color or a named color known to tcell ("gold",
// "red"). An empty string yields tcell.ColorDefault, meaning no color.
func ParseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return tcell.ColorDefault, nil
	}
	if c, err := ParseHexColor(s); err == nil {
		return c, nil
	}
	if c := tcell.GetColor(strings.ToLower(s)); c != tcell.ColorDefault {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}

// sgrForeground returns the 24-bit foreground escape for c, or "" for the
// default color.
func sgrForeground(c tcell.Color) string {
	if c == tcell.ColorDefault || !c.Valid() {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

const sgrReset = "\x1b[0m"
