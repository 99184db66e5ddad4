package svg

import (
	"regexp"
	"strings"

	"github.com/kastheco/iconforge/color"
)

// Replace substitutes every occurrence of oldColor with newColor, leaving
// quoting, attribute names and the surrounding markup untouched. Matching is
// case-insensitive against both the canonical form of oldColor and any
// literal spelling in the markup that normalizes to it (so replacing
// "#000000" also rewrites a hand-written "#000"). When kinds are given, only
// those attribute classes are touched; with none, every class is.
func Replace(markup, oldColor, newColor string, kinds ...AttrKind) string {
	canon := color.Normalize(oldColor)

	alts := map[string]bool{regexp.QuoteMeta(canon): true, regexp.QuoteMeta(oldColor): true}
	for _, o := range scan(markup) {
		if color.Normalize(o.literal) == canon {
			alts[regexp.QuoteMeta(o.literal)] = true
		}
	}
	pattern := joinAlts(alts)

	want := func(k AttrKind) bool {
		if len(kinds) == 0 {
			return true
		}
		for _, kk := range kinds {
			if kk == k {
				return true
			}
		}
		return false
	}

	var attrNames []string
	for _, k := range []AttrKind{KindFill, KindStroke, KindStopColor} {
		if want(k) {
			attrNames = append(attrNames, string(k))
		}
	}

	// $ in the replacement is a capture reference in regexp templates; the
	// new color is user input and must stay literal.
	literal := strings.ReplaceAll(newColor, "$", "$$")

	if len(attrNames) > 0 {
		names := strings.Join(attrNames, "|")
		dq := regexp.MustCompile(`(?i)\b(` + names + `)(\s*=\s*")(?:` + pattern + `)(")`)
		markup = dq.ReplaceAllString(markup, "${1}${2}"+literal+"${3}")
		sq := regexp.MustCompile(`(?i)\b(` + names + `)(\s*=\s*')(?:` + pattern + `)(')`)
		markup = sq.ReplaceAllString(markup, "${1}${2}"+literal+"${3}")
	}

	if want(KindStyle) {
		decl := regexp.MustCompile(`(?i)\b(fill|stroke)(\s*:\s*)(?:` + pattern + `)\b`)
		markup = replaceInStyleAttrs(markup, func(body string) string {
			return decl.ReplaceAllString(body, "${1}${2}"+literal)
		})
	}

	return markup
}

// ReplaceAll applies a positional remap oldColors[i] -> newColors[i] across
// every attribute class. The remap is simultaneous: every occurrence is
// rewritten exactly once against its original value, so palettes that swap
// or rotate colors (new color at one slot equal to the old color at another)
// never cascade. Duplicate old colors keep their first mapping; lists of
// different lengths remap only the shared prefix.
func ReplaceAll(markup string, oldColors, newColors []string) string {
	n := min(len(oldColors), len(newColors))
	remap := make(map[string]string, n)
	for i := 0; i < n; i++ {
		o := color.Normalize(oldColors[i])
		if _, seen := remap[o]; seen || o == color.Normalize(newColors[i]) {
			continue
		}
		remap[o] = newColors[i]
	}
	if len(remap) == 0 {
		return markup
	}

	swap := func(token string) (string, bool) {
		next, ok := remap[color.Normalize(token)]
		return next, ok
	}

	markup = attrRe.ReplaceAllStringFunc(markup, func(m string) string {
		sub := attrRe.FindStringSubmatchIndex(m)
		start, end := sub[4], sub[5]
		if start < 0 {
			start, end = sub[6], sub[7]
		}
		token := strings.TrimSpace(m[start:end])
		next, ok := swap(token)
		if !ok {
			return m
		}
		return m[:start] + strings.Replace(m[start:end], token, next, 1) + m[end:]
	})

	return replaceInStyleAttrs(markup, func(body string) string {
		return declRe.ReplaceAllStringFunc(body, func(d string) string {
			sub := declRe.FindStringSubmatchIndex(d)
			start, end := sub[4], sub[5]
			token := strings.TrimSpace(d[start:end])
			next, ok := swap(token)
			if !ok {
				return d
			}
			return d[:start] + strings.Replace(d[start:end], token, next, 1) + d[end:]
		})
	})
}

// ReplaceCurrentColor rewrites every currentColor keyword to a concrete
// color so the icon no longer inherits from its surroundings.
func ReplaceCurrentColor(markup, newColor string) string {
	return Replace(markup, "currentColor", newColor)
}

var shapeRe = regexp.MustCompile(`(?i)<(path|rect|circle|ellipse|polygon|polyline|line)\b[^>]*`)

// AddFill sets fill on every shape element that has neither a fill attribute
// nor a fill declaration in its style attribute. Elements already carrying a
// fill are left alone.
func AddFill(markup, fillColor string) string {
	hasFillAttr := regexp.MustCompile(`(?i)\bfill\s*=`)
	hasFillDecl := regexp.MustCompile(`(?i)\bfill\s*:`)
	return shapeRe.ReplaceAllStringFunc(markup, func(tag string) string {
		if hasFillAttr.MatchString(tag) || hasFillDecl.MatchString(tag) {
			return tag
		}
		name := tag[:len("<")+shapeNameLen(tag)]
		return name + ` fill="` + fillColor + `"` + tag[len(name):]
	})
}

func shapeNameLen(tag string) int {
	i := 1
	for i < len(tag) && tag[i] != ' ' && tag[i] != '\t' && tag[i] != '\n' && tag[i] != '/' && tag[i] != '>' {
		i++
	}
	return i - 1
}

// replaceInStyleAttrs rewrites the body of each style attribute with fn,
// preserving everything outside the quotes.
func replaceInStyleAttrs(markup string, fn func(string) string) string {
	return styleRe.ReplaceAllStringFunc(markup, func(attr string) string {
		open := strings.IndexAny(attr, `"'`)
		if open < 0 {
			return attr
		}
		quote := attr[open]
		end := strings.LastIndexByte(attr, quote)
		if end <= open {
			return attr
		}
		return attr[:open+1] + fn(attr[open+1:end]) + attr[end:]
	})
}

func joinAlts(alts map[string]bool) string {
	parts := make([]string, 0, len(alts))
	for a := range alts {
		parts = append(parts, a)
	}
	// longest-first so "#aabbcc" wins over a prefix like "#aab" in alternation
	for i := 0; i < len(parts); i++ {
		for j := i + 1; j < len(parts); j++ {
			if len(parts[j]) > len(parts[i]) {
				parts[i], parts[j] = parts[j], parts[i]
			}
		}
	}
	return strings.Join(parts, "|")
}
