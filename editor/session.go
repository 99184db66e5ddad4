package editor

import (
	"errors"
	"fmt"

	"github.com/kastheco/iconforge/color"
	"github.com/kastheco/iconforge/svg"
	"github.com/kastheco/iconforge/variants"
)

// Session is one icon open for editing. It is the single authority for
// filter math and rewriting: both live preview and commit go through the
// same code paths, so the two can never drift in rounding behavior.
//
// Every operation is synchronous and bounded by the markup length; nothing
// persists until the caller invokes Flush.
type Session struct {
	store   variants.Store
	library string

	icon     string
	markup   string
	original string // markup as loaded, for reset-to-original
	entries  []svg.ColorEntry

	profile *variants.Profile

	state   State
	applied string         // variant name when state == StateApplied
	pending color.Settings // filter settings when state == StateFilterPending
}

// NewSession opens an icon for editing. The profile is loaded from the
// store, or lazily created with the scanned colors as baseline when the icon
// has never been edited before.
func NewSession(store variants.Store, library, icon, markup string) (*Session, error) {
	s := &Session{
		store:    store,
		library:  library,
		icon:     icon,
		markup:   markup,
		original: markup,
		state:    StateBaseline,
		pending:  color.Identity(),
	}
	s.rescan()

	p, err := store.Get(library, icon)
	switch {
	case err == nil:
		s.profile = &p
	case errors.Is(err, variants.ErrNotFound):
		s.profile = variants.NewProfile(icon, s.uniqueColors())
	default:
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return s, nil
}

// Markup returns the current markup text.
func (s *Session) Markup() string { return s.markup }

// Entries returns the current color inventory for re-render.
func (s *Session) Entries() []svg.ColorEntry { return s.entries }

// State returns the edit state of the session.
func (s *Session) State() State { return s.state }

// AppliedVariant returns the name of the variant the icon currently shows,
// or "" outside StateApplied.
func (s *Session) AppliedVariant() string {
	if s.state != StateApplied {
		return ""
	}
	return s.applied
}

// PendingFilter returns the uncommitted filter settings; Identity outside
// StateFilterPending.
func (s *Session) PendingFilter() color.Settings {
	if s.state != StateFilterPending {
		return color.Identity()
	}
	return s.pending
}

// Profile returns a copy of the icon's color profile.
func (s *Session) Profile() variants.Profile { return *s.profile }

// Icon returns the icon name this session edits.
func (s *Session) Icon() string { return s.icon }

// PreviewColor returns the markup as it would look with oldColor replaced by
// newColor, without committing anything.
func (s *Session) PreviewColor(oldColor, newColor string, kinds ...svg.AttrKind) string {
	return svg.Replace(s.markup, oldColor, newColor, kinds...)
}

// CommitColor replaces oldColor with newColor in the markup and records the
// edit in the profile mapping. When kinds are given only those attribute
// classes change, so a color shared between fill and stroke can move
// independently.
func (s *Session) CommitColor(oldColor, newColor string, kinds ...svg.AttrKind) string {
	oldCanon := color.Normalize(oldColor)
	newCanon := color.Normalize(newColor)

	s.markup = svg.Replace(s.markup, oldColor, newColor, kinds...)
	s.rescan()

	// Track which baseline slot moved. An edit to a color that did not come
	// from the baseline (say, a freshly added fill) has no slot to update.
	cur := s.profile.CurrentColors()
	for i, b := range s.profile.BaselineColors {
		if cur[i] == oldCanon {
			s.profile.SetCurrent(b, newCanon)
		}
	}

	s.transition(ColorEdited)
	return s.markup
}

// PreviewFilter enters (or adjusts) pending filter settings and returns the
// markup as it would look once committed. Safe to call at any rate; nothing
// mutates except the pending settings.
func (s *Session) PreviewFilter(f color.Settings) string {
	s.pending = f.Clamp()
	s.transition(FilterEntered)
	cur := s.profile.CurrentColors()
	return svg.ReplaceAll(s.markup, cur, s.pending.ApplyAll(cur))
}

// CommitFilter applies the pending filter settings to every current color.
// A no-op unless a filter is pending.
func (s *Session) CommitFilter() string {
	if s.state != StateFilterPending {
		return s.markup
	}
	cur := s.profile.CurrentColors()
	next := s.pending.ApplyAll(cur)
	s.markup = svg.ReplaceAll(s.markup, cur, next)
	s.rescan()
	for i, b := range s.profile.BaselineColors {
		s.profile.SetCurrent(b, next[i])
	}
	s.pending = color.Identity()
	s.transition(FilterCommitted)
	return s.markup
}

// ApplyFilter enters and immediately commits filter settings: the
// non-interactive equivalent of PreviewFilter followed by CommitFilter.
func (s *Session) ApplyFilter(f color.Settings) string {
	s.PreviewFilter(f)
	return s.CommitFilter()
}

// EstimateFilter infers the filter settings that explain the difference
// between the baseline colors and what the icon shows now.
func (s *Session) EstimateFilter() color.Settings {
	return color.Estimate(s.profile.BaselineColors, s.profile.CurrentColors())
}

// AddFillColor gives a fill to every shape element that has none.
func (s *Session) AddFillColor(c string) string {
	s.markup = svg.AddFill(s.markup, color.Normalize(c))
	s.rescan()
	s.transition(ColorEdited)
	return s.markup
}

// ReplaceCurrentColor pins every currentColor keyword to a concrete color.
func (s *Session) ReplaceCurrentColor(c string) string {
	return s.CommitColor("currentColor", c)
}

// SaveVariant captures the icon's current colors as a named variant,
// overwriting any variant with the same name.
func (s *Session) SaveVariant(name string) {
	if name == "" {
		return
	}
	s.profile.SaveVariant(name, s.profile.CurrentColors())
	s.applied = name
	s.transition(VariantSaved)
}

// ApplyVariant recolors the icon to the variant at index: one simultaneous
// remap from what each baseline slot shows now to the variant color, which
// makes repeated application idempotent and keeps swapped palettes from
// cascading through each other. Slots beyond the shorter of baseline and
// variant keep their colors. An out-of-range index is a no-op.
func (s *Session) ApplyVariant(index int) string {
	v, ok := s.profile.Variant(index)
	if !ok {
		return s.markup
	}

	baseline := s.profile.BaselineColors
	cur := s.profile.CurrentColors()
	n := min(len(baseline), len(v.Colors))

	s.markup = svg.ReplaceAll(s.markup, cur[:n], v.Colors[:n])
	for i := 0; i < n; i++ {
		s.profile.SetCurrent(baseline[i], v.Colors[i])
	}

	s.rescan()
	s.applied = v.Name
	s.transition(VariantApplied)
	return s.markup
}

// ApplyBaseline restores every color to the captured baseline.
func (s *Session) ApplyBaseline() string {
	s.markup = svg.ReplaceAll(s.markup, s.profile.CurrentColors(), s.profile.BaselineColors)
	s.profile.ClearMapping()
	s.rescan()
	s.applied = ""
	s.transition(BaselineRestored)
	return s.markup
}

// DeleteVariant removes the variant at index; out of range is a no-op.
// Deleting the default variant clears the default pointer.
func (s *Session) DeleteVariant(index int) {
	s.profile.DeleteVariant(index)
}

// SetDefaultVariant points the icon's default appearance at a saved variant,
// or back at the baseline when name is empty.
func (s *Session) SetDefaultVariant(name string) {
	s.profile.SetDefaultVariant(name)
}

// ResetToOriginal throws away every edit and recaptures the baseline from
// the markup the session was opened with. This is the one path that changes
// a profile's baseline.
func (s *Session) ResetToOriginal() string {
	s.markup = s.original
	s.rescan()
	s.profile.ResetBaseline(s.uniqueColors())
	s.applied = ""
	s.transition(BaselineRestored)
	return s.markup
}

// Flush persists the profile. Nothing else writes to the store; a session
// that never flushes leaves the store exactly as it found it.
func (s *Session) Flush() error {
	if err := s.store.Put(s.library, *s.profile); err != nil {
		return fmt.Errorf("flush profile: %w", err)
	}
	return nil
}

func (s *Session) rescan() {
	s.entries = svg.Extract(s.markup)
}

// uniqueColors returns the canonical colors of the current inventory in
// first-seen order, deduplicated across attribute kinds. This is the shape
// baselines and variant color lists use.
func (s *Session) uniqueColors() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range s.entries {
		if seen[e.Color] {
			continue
		}
		seen[e.Color] = true
		out = append(out, e.Color)
	}
	return out
}

// transition applies an edit event. The operations above only raise events
// their current state accepts, so a table miss is a programming error; the
// state is left unchanged rather than corrupted.
func (s *Session) transition(e Event) {
	next, err := Transition(s.state, e)
	if err != nil {
		return
	}
	s.state = next
}
