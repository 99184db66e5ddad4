package color

import "math"

// Settings is a CSS-filter-style global recolor: hue rotation in degrees and
// saturation/brightness as percentages. The zero-effect value is Identity.
type Settings struct {
	Hue        int `json:"hue"`
	Saturation int `json:"saturation"`
	Brightness int `json:"brightness"`
}

// Identity returns the settings that leave every color unchanged.
func Identity() Settings {
	return Settings{Hue: 0, Saturation: 100, Brightness: 100}
}

// IsIdentity reports whether applying s would be a no-op.
func (s Settings) IsIdentity() bool {
	return s == Identity()
}

// Clamp saturates the percentage fields into [0,200]. Hue is left as given;
// the rotation matrix is periodic so any degree value is valid.
func (s Settings) Clamp() Settings {
	s.Saturation = clampInt(s.Saturation, 0, 200)
	s.Brightness = clampInt(s.Brightness, 0, 200)
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NTSC luminance weights used by the browser hue-rotate and saturate
// matrices. Keeping these exact makes offline output agree with a live
// CSS-filter preview within rounding.
const (
	lumR = 0.213
	lumG = 0.715
	lumB = 0.072
)

// Apply runs the filter pipeline on one color: hue-rotate, then saturate,
// then brightness, then clamp and round. The order is fixed to match the
// browser compositing order.
func (s Settings) Apply(c RGB) RGB {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	theta := float64(s.Hue) * math.Pi / 180
	cos, sin := math.Cos(theta), math.Sin(theta)
	r, g, b = mul3(r, g, b,
		lumR+cos*(1-lumR)-sin*lumR, lumG-cos*lumG-sin*lumG, lumB-cos*lumB+sin*(1-lumB),
		lumR-cos*lumR+sin*0.143, lumG+cos*(1-lumG)+sin*0.140, lumB-cos*lumB-sin*0.283,
		lumR-cos*lumR-sin*(1-lumR), lumG-cos*lumG+sin*lumG, lumB+cos*(1-lumB)+sin*lumB)

	sat := float64(s.Saturation) / 100
	r, g, b = mul3(r, g, b,
		lumR+(1-lumR)*sat, lumG*(1-sat), lumB*(1-sat),
		lumR*(1-sat), lumG+(1-lumG)*sat, lumB*(1-sat),
		lumR*(1-sat), lumG*(1-sat), lumB+(1-lumB)*sat)

	bright := float64(s.Brightness) / 100
	r, g, b = r*bright, g*bright, b*bright

	return RGB{clampChannel(r), clampChannel(g), clampChannel(b)}
}

// ApplyToken applies the filter to any color token, preserving markers and
// unparseable tokens as-is. Parseable input always comes back as canonical
// lowercase hex.
func (s Settings) ApplyToken(token string) string {
	c, ok := Parse(token)
	if !ok {
		return Normalize(token)
	}
	return s.Apply(c).Hex()
}

// ApplyAll maps ApplyToken over a color list, producing a parallel list in
// the same order.
func (s Settings) ApplyAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = s.ApplyToken(t)
	}
	return out
}

func mul3(r, g, b,
	a00, a01, a02,
	a10, a11, a12,
	a20, a21, a22 float64) (float64, float64, float64) {
	return a00*r + a01*g + a02*b,
		a10*r + a11*g + a12*b,
		a20*r + a21*g + a22*b
}

func clampChannel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
