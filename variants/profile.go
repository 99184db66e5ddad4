// Package variants holds the per-icon color model: the baseline colors
// captured when an icon is first observed, named alternate appearances, and
// the store backends that persist them.
package variants

// Variant is a named, ordered color list positionally aligned to the icon's
// baseline colors. Name is the identity key within a profile.
type Variant struct {
	Name    string   `json:"name"`
	Colors  []string `json:"colors"`
	Primary bool     `json:"primary,omitempty"`
}

// Profile is the persistent color model of one icon. BaselineColors is
// captured once on first observation and never changes except through an
// explicit reset. Mapping records where each baseline color currently sits.
type Profile struct {
	Icon           string            `json:"icon"`
	BaselineColors []string          `json:"baselineColors"`
	Mapping        map[string]string `json:"colorMapping,omitempty"`
	Variants       []Variant         `json:"variants,omitempty"`
	DefaultVariant string            `json:"defaultVariant,omitempty"`
}

// NewProfile captures a baseline for an icon seen for the first time.
func NewProfile(icon string, baseline []string) *Profile {
	return &Profile{
		Icon:           icon,
		BaselineColors: append([]string(nil), baseline...),
		Mapping:        make(map[string]string),
	}
}

// CurrentColors returns the baseline list with the mapping applied: the
// colors the icon shows now, in baseline order. Callable on Profile copies.
func (p Profile) CurrentColors() []string {
	out := make([]string, len(p.BaselineColors))
	for i, b := range p.BaselineColors {
		if cur, ok := p.Mapping[b]; ok {
			out[i] = cur
		} else {
			out[i] = b
		}
	}
	return out
}

// SetCurrent records that the baseline color now renders as current.
// Mapping an entry back to its baseline value removes it.
func (p *Profile) SetCurrent(baseline, current string) {
	if p.Mapping == nil {
		p.Mapping = make(map[string]string)
	}
	if baseline == current {
		delete(p.Mapping, baseline)
		return
	}
	p.Mapping[baseline] = current
}

// ClearMapping drops every recorded edit, returning the profile to its
// baseline appearance.
func (p *Profile) ClearMapping() {
	p.Mapping = make(map[string]string)
}

// ResetBaseline replaces the captured baseline. This is the only way a
// profile's baseline changes after first observation.
func (p *Profile) ResetBaseline(colors []string) {
	p.BaselineColors = append([]string(nil), colors...)
	p.Mapping = make(map[string]string)
}

// SaveVariant upserts a variant by name: an existing name is overwritten in
// place (last write wins), a new one is appended.
func (p *Profile) SaveVariant(name string, colors []string) {
	v := Variant{Name: name, Colors: append([]string(nil), colors...)}
	for i := range p.Variants {
		if p.Variants[i].Name == name {
			v.Primary = p.Variants[i].Primary
			p.Variants[i] = v
			return
		}
	}
	p.Variants = append(p.Variants, v)
}

// Variant returns the variant at index, or false when the index is out of
// range.
func (p *Profile) Variant(index int) (Variant, bool) {
	if index < 0 || index >= len(p.Variants) {
		return Variant{}, false
	}
	return p.Variants[index], true
}

// VariantByName returns the named variant, or false when absent.
func (p *Profile) VariantByName(name string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// DeleteVariant removes the variant at index. Out-of-range indexes are a
// no-op. Deleting the default variant clears the default pointer back to
// baseline.
func (p *Profile) DeleteVariant(index int) {
	if index < 0 || index >= len(p.Variants) {
		return
	}
	if p.Variants[index].Name == p.DefaultVariant {
		p.DefaultVariant = ""
	}
	p.Variants = append(p.Variants[:index], p.Variants[index+1:]...)
}

// SetDefaultVariant points the default at a saved variant, or at the
// baseline when name is empty. Naming an unknown variant is a no-op.
func (p *Profile) SetDefaultVariant(name string) {
	if name == "" {
		p.DefaultVariant = ""
		return
	}
	if _, ok := p.VariantByName(name); ok {
		p.DefaultVariant = name
	}
}
