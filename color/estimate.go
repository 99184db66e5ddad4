package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// epsilon below which a saturation or lightness channel is too small to form
// a reliable ratio; the estimator falls back to the identity 100% instead of
// dividing by a near-zero value.
const epsilon = 0.001

// Estimate solves the inverse filter problem: given the colors an icon
// started with and the colors it shows now, infer the Settings that best
// explain the change. The estimate is exact when one consistent global
// filter produced every current color; otherwise it is a single-sample
// heuristic taken from the most saturated mid-lightness color.
//
// Degenerate input (empty lists or a length mismatch) yields Identity.
func Estimate(original, current []string) Settings {
	if len(original) == 0 || len(original) != len(current) {
		return Identity()
	}

	type hsl struct{ h, s, l float64 }
	toHSL := func(token string) (hsl, bool) {
		c, ok := Parse(token)
		if !ok {
			return hsl{}, false
		}
		h, s, l := colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}.Hsl()
		return hsl{h, s, l}, true
	}

	// Pick the representative index: highest original saturation among
	// colors whose lightness sits strictly inside (0.1, 0.9). Near-black and
	// near-white hues are numerically unstable and would skew the hue diff.
	rep := -1
	var repHSL hsl
	for i, token := range original {
		o, ok := toHSL(token)
		if !ok {
			continue
		}
		if o.l <= 0.1 || o.l >= 0.9 {
			continue
		}
		if rep == -1 || o.s > repHSL.s {
			rep, repHSL = i, o
		}
	}
	if rep == -1 {
		rep = 0
		var ok bool
		if repHSL, ok = toHSL(original[0]); !ok {
			return Identity()
		}
	}

	cur, ok := toHSL(current[rep])
	if !ok {
		return Identity()
	}

	hueDiff := cur.h - repHSL.h
	if hueDiff > 180 {
		hueDiff -= 360
	} else if hueDiff <= -180 {
		hueDiff += 360
	}

	satRatio := 100.0
	if repHSL.s > epsilon {
		satRatio = cur.s / repHSL.s * 100
	}
	brightRatio := 100.0
	if repHSL.l > epsilon {
		brightRatio = cur.l / repHSL.l * 100
	}

	return Settings{
		Hue:        int(math.Round(hueDiff)),
		Saturation: int(math.Round(satRatio)),
		Brightness: int(math.Round(brightRatio)),
	}.Clamp()
}
