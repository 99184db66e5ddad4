package editor

import (
	"github.com/muesli/gamut"

	"github.com/kastheco/iconforge/color"
)

// Suggestion is a generated palette positionally aligned to the baseline,
// ready to be saved as a variant under its name.
type Suggestion struct {
	Name   string
	Colors []string
}

// SuggestVariants derives candidate palettes from the baseline colors:
// a darker and a lighter rendition plus the complementary palette. Markers
// and unparseable tokens keep their slots unchanged so the lists stay
// positionally aligned.
func (s *Session) SuggestVariants() []Suggestion {
	base := s.profile.BaselineColors
	return []Suggestion{
		{Name: "darker", Colors: mapColors(base, func(hex string) string {
			return gamut.ToHex(gamut.Darker(gamut.Hex(hex), 0.25))
		})},
		{Name: "lighter", Colors: mapColors(base, func(hex string) string {
			return gamut.ToHex(gamut.Lighter(gamut.Hex(hex), 0.25))
		})},
		{Name: "complementary", Colors: mapColors(base, func(hex string) string {
			return gamut.ToHex(gamut.Complementary(gamut.Hex(hex)))
		})},
	}
}

// SaveSuggestions stores every generated suggestion as a saved variant.
// The icon's current colors are untouched; the variants become available for
// ApplyVariant like any hand-saved one.
func (s *Session) SaveSuggestions() {
	for _, sug := range s.SuggestVariants() {
		s.profile.SaveVariant(sug.Name, sug.Colors)
	}
}

func mapColors(tokens []string, fn func(string) string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		c, ok := color.Parse(t)
		if !ok {
			out[i] = color.Normalize(t)
			continue
		}
		out[i] = color.Normalize(fn(c.Hex()))
	}
	return out
}
