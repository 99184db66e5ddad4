// Package color parses, normalizes and transforms the color tokens found in
// SVG markup. All functions are pure; unparseable tokens pass through
// unchanged rather than erroring so a single bad token never aborts a scan.
package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as canonical lowercase 6-digit hex.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Markers are keywords that occupy a color slot in markup but carry no
// numeric value. They are excluded from all filter math.
var markers = map[string]bool{
	"none":         true,
	"transparent":  true,
	"currentcolor": true,
	"inherit":      true,
}

// IsMarker reports whether token is a non-color keyword (none, transparent,
// currentColor, inherit).
func IsMarker(token string) bool {
	return markers[strings.ToLower(strings.TrimSpace(token))]
}

// named maps the basic CSS color names the scanner resolves. Anything not
// listed here is treated as an opaque token.
var named = map[string]RGB{
	"black":   {0x00, 0x00, 0x00},
	"white":   {0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00},
	"green":   {0x00, 0x80, 0x00},
	"blue":    {0x00, 0x00, 0xff},
	"yellow":  {0xff, 0xff, 0x00},
	"cyan":    {0x00, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff},
	"gray":    {0x80, 0x80, 0x80},
	"grey":    {0x80, 0x80, 0x80},
	"orange":  {0xff, 0xa5, 0x00},
	"purple":  {0x80, 0x00, 0x80},
	"pink":    {0xff, 0xc0, 0xcb},
	"brown":   {0xa5, 0x2a, 0x2a},
	"silver":  {0xc0, 0xc0, 0xc0},
	"maroon":  {0x80, 0x00, 0x00},
	"navy":    {0x00, 0x00, 0x80},
	"teal":    {0x00, 0x80, 0x80},
	"olive":   {0x80, 0x80, 0x00},
	"lime":    {0x00, 0xff, 0x00},
}

var (
	hex3Re = regexp.MustCompile(`^#([0-9a-fA-F]{3})$`)
	hex6Re = regexp.MustCompile(`^#([0-9a-fA-F]{6})$`)
	rgbRe  = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})`)
)

// Parse converts a color token to an RGB triple. The second return is false
// for markers and anything Parse does not understand. Supported forms:
// 3/6-digit hex, rgb()/rgba() (alpha discarded) and the named table above.
func Parse(token string) (RGB, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if markers[t] {
		return RGB{}, false
	}
	if m := hex6Re.FindStringSubmatch(t); m != nil {
		v, _ := strconv.ParseUint(m[1], 16, 32)
		return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, true
	}
	if m := hex3Re.FindStringSubmatch(t); m != nil {
		// each digit duplicates: #abc -> #aabbcc
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			d, _ := strconv.ParseUint(string(m[1][i]), 16, 8)
			ch[i] = uint8(d*16 + d)
		}
		return RGB{ch[0], ch[1], ch[2]}, true
	}
	if m := rgbRe.FindStringSubmatch(t); m != nil {
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(m[i+1])
			if err != nil || v > 255 {
				return RGB{}, false
			}
			ch[i] = uint8(v)
		}
		return RGB{ch[0], ch[1], ch[2]}, true
	}
	if c, ok := named[t]; ok {
		return c, true
	}
	return RGB{}, false
}

// Normalize returns the canonical form of a token: lowercase 6-digit hex for
// anything parseable, the lowercase keyword for markers, and the token
// unchanged otherwise. Normalize is idempotent.
func Normalize(token string) string {
	t := strings.ToLower(strings.TrimSpace(token))
	if markers[t] {
		return t
	}
	if c, ok := Parse(t); ok {
		return c.Hex()
	}
	return token
}
