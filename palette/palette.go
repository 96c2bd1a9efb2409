// Package palette holds the tri-tone color tables consumed by the
// render package. Tables are plain values passed into rendering
// options; nothing in this package is mutated after construction.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
)

// Entry is the tri-tone ramp for one material id. Lighting intensity
// below 0.5 interpolates Shadow→Base, at or above 0.5 Base→Highlight.
type Entry struct {
	Base      color.RGBA
	Highlight color.RGBA
	Shadow    color.RGBA
}

// Palette maps a material id to its tri-tone entry.
type Palette map[byte]Entry

// fallback is used when a palette is missing both the requested id
// and id 1: a neutral gray ramp rather than undefined behavior.
var fallback = Entry{
	Base:      color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
	Highlight: color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
	Shadow:    color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff},
}

// Lookup returns the entry for id, falling back to id 1 when id is
// absent and to a hard-coded gray ramp when id 1 is absent too.
func (p Palette) Lookup(id byte) Entry {
	if e, ok := p[id]; ok {
		return e
	}
	if e, ok := p[1]; ok {
		return e
	}
	return fallback
}

// Hex parses a #RRGGBB color. It panics on malformed input; the
// tables below are the only intended callers.
func Hex(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		panic(fmt.Sprintf("palette: malformed hex color %q", s))
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		panic(fmt.Sprintf("palette: malformed hex color %q", s))
	}
	return color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xff,
	}
}

func entry(base, highlight, shadow string) Entry {
	return Entry{Base: Hex(base), Highlight: Hex(highlight), Shadow: Hex(shadow)}
}

// Material ids shared with the model package:
// 1 skin, 2 cloth, 3 trim, 4 metal, 5 glass, 6 leaves, 7 wood,
// 8 wall, 9 roof.
var (
	// Default is the standard daylight palette.
	Default = Palette{
		1: entry("#d9a066", "#f3c892", "#8f6136"),
		2: entry("#3f7fbf", "#7fb3e6", "#1f4066"),
		3: entry("#56606b", "#8b97a5", "#2b3138"),
		4: entry("#9aa4ad", "#dfe6ec", "#565e66"),
		5: entry("#7fd4e6", "#ccf2fa", "#3a7f8f"),
		6: entry("#3f9e4d", "#7fd48c", "#1f5e28"),
		7: entry("#7a5230", "#a8794f", "#462e1a"),
		8: entry("#c9b7a0", "#efe4d3", "#7d7060"),
		9: entry("#b0433a", "#e07a6f", "#66241f"),
	}

	// Warm shifts every ramp toward sunset tones.
	Warm = Palette{
		1: entry("#e6b075", "#ffd9a6", "#995f33"),
		2: entry("#c46a3c", "#f2a06b", "#703318"),
		3: entry("#8a6453", "#c2957e", "#4d372d"),
		4: entry("#bfa27a", "#f2dfb8", "#70603f"),
		5: entry("#f2c86b", "#ffe9b3", "#8f7333"),
		6: entry("#a5913c", "#d9c978", "#5c511f"),
		7: entry("#8f5a2e", "#c28a52", "#52331a"),
		8: entry("#dbbf9a", "#fae9cc", "#8a7657"),
		9: entry("#cc5f33", "#f29366", "#732f14"),
	}

	// Cool shifts every ramp toward moonlight tones.
	Cool = Palette{
		1: entry("#8fa3c2", "#c4d4ea", "#4d5c73"),
		2: entry("#4d6b99", "#84a3cc", "#293a54"),
		3: entry("#5c6673", "#94a1b0", "#313740"),
		4: entry("#8c99a8", "#ccd9e6", "#4d545c"),
		5: entry("#73c2d9", "#b8e9f5", "#36707f"),
		6: entry("#4d8a73", "#84c2a8", "#27473b"),
		7: entry("#5c4d5e", "#8c7a8f", "#322a33"),
		8: entry("#9aa3b8", "#d0d8e8", "#565c6b"),
		9: entry("#7a5287", "#ab82b8", "#432d4a"),
	}
)

// Named resolves a palette by name for hosts that take palette
// selection as text. Unknown names return Default and false.
func Named(name string) (Palette, bool) {
	switch name {
	case "default":
		return Default, true
	case "warm":
		return Warm, true
	case "cool":
		return Cool, true
	}
	return Default, false
}
