package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/iconforge/config"
	"github.com/kastheco/iconforge/editor"
	"github.com/kastheco/iconforge/library"
	"github.com/kastheco/iconforge/variants"
)

func newTestModel(t *testing.T) (*Model, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.svg"), []byte(`<path fill="#ff0000"/>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "search.svg"), []byte(`<path fill="#00ff00"/>`), 0o644))

	icons, err := library.Scan(dir)
	require.NoError(t, err)
	store := variants.NewTestSQLiteStore(t)
	steps := config.FilterConfig{HueStep: 5, SaturationStep: 5, BrightnessStep: 5}
	return New(store, "icons", icons, steps), dir
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewListsIconsAndColors(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "home")
	assert.Contains(t, view, "search")
	assert.Contains(t, view, "#ff0000")
}

func TestFilterAdjustKeysEnterPending(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyRunes("H"))
	m.Update(keyRunes("H"))

	s, err := m.session()
	require.NoError(t, err)
	assert.Equal(t, editor.StateFilterPending, s.State())
	assert.Equal(t, 10, s.PendingFilter().Hue)
	assert.Contains(t, m.View(), "pending filter")
}

func TestEnterCommitsPendingFilter(t *testing.T) {
	m, _ := newTestModel(t)

	for i := 0; i < 36; i++ {
		m.Update(keyRunes("H")) // 36 * 5° = 180°
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	s, err := m.session()
	require.NoError(t, err)
	assert.Equal(t, editor.StateCustom, s.State())
	assert.Contains(t, s.Markup(), "#006d6d")
}

func TestNavigationSwitchesIcon(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(keyRunes("j"))

	s, err := m.session()
	require.NoError(t, err)
	assert.Equal(t, "search", s.Icon())
}

func TestSaveVariantPrompt(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyRunes("v"))
	assert.True(t, m.naming)

	for _, r := range "dark" {
		m.Update(keyRunes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	s, err := m.session()
	require.NoError(t, err)
	require.Len(t, s.Profile().Variants, 1)
	assert.Equal(t, "dark", s.Profile().Variants[0].Name)
	assert.False(t, m.naming)
}

func TestWriteKeyPersists(t *testing.T) {
	m, dir := newTestModel(t)

	for i := 0; i < 36; i++ {
		m.Update(keyRunes("H"))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(keyRunes("w"))

	data, err := os.ReadFile(filepath.Join(dir, "home.svg"))
	require.NoError(t, err)
	assert.Equal(t, `<path fill="#006d6d"/>`, string(data))

	p, err := m.store.Get("icons", "home")
	require.NoError(t, err)
	assert.Equal(t, "#006d6d", p.Mapping["#ff0000"])
}

func TestFillBackground(t *testing.T) {
	out := FillBackground("a\nb", 4)
	assert.Equal(t, "a\nb\n\n", out)
	assert.Equal(t, "a\nb", FillBackground("a\nb", 0))
}
