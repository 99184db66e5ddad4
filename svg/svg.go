// Package svg finds and rewrites color tokens in raw SVG markup. It operates
// on text rather than a parsed tree so edits never reformat whitespace,
// comments or attribute order in hand-authored sources. The scan/replace
// surface is deliberately narrow so a tokenizer could replace the regex
// internals without touching callers.
package svg

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kastheco/iconforge/color"
)

// AttrKind classifies where in the markup a color occurrence was found.
type AttrKind string

const (
	KindFill      AttrKind = "fill"
	KindStroke    AttrKind = "stroke"
	KindStopColor AttrKind = "stop-color"
	KindStyle     AttrKind = "style"
)

// ColorEntry is one scanned occurrence class: a canonical color in a given
// attribute role, with how often it appears and the literal spelling it had
// before normalization (first spelling wins).
type ColorEntry struct {
	Color   string   `json:"color"`
	Kind    AttrKind `json:"kind"`
	Count   int      `json:"count"`
	Literal string   `json:"literal"`
}

var (
	// fill="..." / stroke='...' / stop-color="..."
	attrRe = regexp.MustCompile(`(?i)\b(fill|stroke|stop-color)\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	// style="..." attribute
	styleRe = regexp.MustCompile(`(?i)\bstyle\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	// fill:/stroke: declarations inside a style value
	declRe = regexp.MustCompile(`(?i)\b(fill|stroke)\s*:\s*([^;'"}]+)`)
)

type occurrence struct {
	pos     int
	kind    AttrKind
	literal string
}

// scan walks the markup once and returns every color-bearing occurrence in
// document order. Malformed values simply never match; they cannot abort the
// scan.
func scan(markup string) []occurrence {
	var occ []occurrence

	for _, m := range attrRe.FindAllStringSubmatchIndex(markup, -1) {
		kind := AttrKind(strings.ToLower(markup[m[2]:m[3]]))
		start, end := m[4], m[5]
		if start < 0 {
			start, end = m[6], m[7]
		}
		occ = append(occ, occurrence{pos: m[0], kind: kind, literal: strings.TrimSpace(markup[start:end])})
	}

	for _, m := range styleRe.FindAllStringSubmatchIndex(markup, -1) {
		start, end := m[2], m[3]
		if start < 0 {
			start, end = m[4], m[5]
		}
		body := markup[start:end]
		for _, d := range declRe.FindAllStringSubmatchIndex(body, -1) {
			occ = append(occ, occurrence{
				pos:     start + d[0],
				kind:    KindStyle,
				literal: strings.TrimSpace(body[d[4]:d[5]]),
			})
		}
	}

	sort.SliceStable(occ, func(i, j int) bool { return occ[i].pos < occ[j].pos })
	return occ
}

// Extract scans markup and accumulates occurrences into an ordered
// ColorEntry list. Entries are keyed by (canonical color, kind), appear in
// first-seen order, and none/transparent values are dropped.
func Extract(markup string) []ColorEntry {
	type key struct {
		color string
		kind  AttrKind
	}
	index := make(map[key]int)
	var entries []ColorEntry

	for _, o := range scan(markup) {
		norm := color.Normalize(o.literal)
		if norm == "" || norm == "none" || norm == "transparent" {
			continue
		}
		k := key{norm, o.kind}
		if i, ok := index[k]; ok {
			entries[i].Count++
			continue
		}
		index[k] = len(entries)
		entries = append(entries, ColorEntry{Color: norm, Kind: o.kind, Count: 1, Literal: o.literal})
	}
	return entries
}

// Colors returns the canonical color list of entries, in entry order.
func Colors(entries []ColorEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Color
	}
	return out
}
