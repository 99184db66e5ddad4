package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kastheco/iconforge/svg"
	"github.com/kastheco/iconforge/variants"
)

// Manifest selects which icons a bundle exports and, per icon, which saved
// variant to export with. An empty variant means "use the icon's default".
type Manifest struct {
	Name  string        `yaml:"name"`
	Icons []BundleEntry `yaml:"icons"`
}

// BundleEntry is one icon line in bundle.yaml.
type BundleEntry struct {
	Icon    string `yaml:"icon"`
	Variant string `yaml:"variant,omitempty"`
}

const manifestFile = "bundle.yaml"

// LoadManifest reads bundle.yaml from dir. A missing manifest returns an
// empty one rather than an error; the bundle then simply exports nothing.
func LoadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Finalize resolves an icon's markup for export: the named variant (or the
// profile's default when variantName is empty) is applied over the baseline.
// Icons without a profile, and profiles without a matching variant, export
// the markup unchanged. Downstream consumers never see variants or filters,
// only final markup.
func Finalize(store variants.Store, libraryName, iconName, markup, variantName string) string {
	p, err := store.Get(libraryName, iconName)
	if err != nil {
		return markup
	}
	name := variantName
	if name == "" {
		name = p.DefaultVariant
	}
	if name == "" {
		return markup
	}
	v, ok := p.VariantByName(name)
	if !ok {
		return markup
	}
	n := min(len(p.BaselineColors), len(v.Colors))
	return svg.ReplaceAll(markup, p.BaselineColors[:n], v.Colors[:n])
}
