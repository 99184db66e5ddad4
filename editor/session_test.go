package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/iconforge/color"
	"github.com/kastheco/iconforge/editor"
	"github.com/kastheco/iconforge/svg"
	"github.com/kastheco/iconforge/variants"
)

const testMarkup = `<svg><path fill="#ff0000"/><path fill="#00ff00" stroke="#0000ff"/></svg>`

func newTestSession(t *testing.T) (*editor.Session, variants.Store) {
	t.Helper()
	store := variants.NewTestSQLiteStore(t)
	s, err := editor.NewSession(store, "icons", "home", testMarkup)
	require.NoError(t, err)
	return s, store
}

func TestNewSessionCapturesBaseline(t *testing.T) {
	s, _ := newTestSession(t)
	assert.Equal(t, editor.StateBaseline, s.State())
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff"}, s.Profile().BaselineColors)
	assert.Len(t, s.Entries(), 3)
}

func TestNewSessionLoadsExistingProfile(t *testing.T) {
	store := variants.NewTestSQLiteStore(t)
	p := *variants.NewProfile("home", []string{"#ff0000"})
	p.SaveVariant("dark", []string{"#111111"})
	require.NoError(t, store.Put("icons", p))

	s, err := editor.NewSession(store, "icons", "home", `<path fill="#ff0000"/>`)
	require.NoError(t, err)
	require.Len(t, s.Profile().Variants, 1)
	assert.Equal(t, "dark", s.Profile().Variants[0].Name)
}

func TestPreviewColorDoesNotMutate(t *testing.T) {
	s, _ := newTestSession(t)
	preview := s.PreviewColor("#ff0000", "#123456")
	assert.Contains(t, preview, `#123456`)
	assert.Equal(t, testMarkup, s.Markup())
	assert.Equal(t, editor.StateBaseline, s.State())
}

func TestCommitColor(t *testing.T) {
	s, _ := newTestSession(t)
	got := s.CommitColor("#ff0000", "#123456")
	assert.Contains(t, got, `fill="#123456"`)
	assert.Equal(t, editor.StateCustom, s.State())
	assert.Equal(t, "#123456", s.Profile().Mapping["#ff0000"])
	assert.Equal(t, []string{"#123456", "#00ff00", "#0000ff"}, s.Profile().CurrentColors())
}

func TestCommitColorKindScoped(t *testing.T) {
	store := variants.NewTestSQLiteStore(t)
	s, err := editor.NewSession(store, "icons", "x", `<path fill="#333333" stroke="#333333"/>`)
	require.NoError(t, err)

	got := s.CommitColor("#333333", "#444444", svg.KindFill)
	assert.Equal(t, `<path fill="#444444" stroke="#333333"/>`, got)
}

func TestFilterPreviewThenCommit(t *testing.T) {
	store := variants.NewTestSQLiteStore(t)
	s, err := editor.NewSession(store, "icons", "x", `<path fill="#ff0000"/>`)
	require.NoError(t, err)

	f := color.Settings{Hue: 180, Saturation: 100, Brightness: 100}
	preview := s.PreviewFilter(f)
	assert.Contains(t, preview, "#006d6d")
	assert.Equal(t, editor.StateFilterPending, s.State())
	assert.Equal(t, f, s.PendingFilter())
	assert.Equal(t, `<path fill="#ff0000"/>`, s.Markup(), "preview does not commit")

	got := s.CommitFilter()
	assert.Equal(t, `<path fill="#006d6d"/>`, got)
	assert.Equal(t, editor.StateCustom, s.State())
	assert.Equal(t, "#006d6d", s.Profile().Mapping["#ff0000"])
}

func TestCommitFilterWithoutPendingIsNoop(t *testing.T) {
	s, _ := newTestSession(t)
	assert.Equal(t, testMarkup, s.CommitFilter())
	assert.Equal(t, editor.StateBaseline, s.State())
}

func TestApplyFilterMatchesPreviewCommit(t *testing.T) {
	store := variants.NewTestSQLiteStore(t)
	f := color.Settings{Hue: 90, Saturation: 120, Brightness: 80}

	a, err := editor.NewSession(store, "icons", "a", `<path fill="#008080"/>`)
	require.NoError(t, err)
	b, err := editor.NewSession(store, "icons", "b", `<path fill="#008080"/>`)
	require.NoError(t, err)

	b.PreviewFilter(f)
	assert.Equal(t, a.ApplyFilter(f), b.CommitFilter(), "preview and commit share one pipeline")
}

func TestEstimateFilterAfterEdit(t *testing.T) {
	store := variants.NewTestSQLiteStore(t)
	s, err := editor.NewSession(store, "icons", "x", `<path fill="#ff0000"/>`)
	require.NoError(t, err)

	s.CommitColor("#ff0000", "#00ff00")
	got := s.EstimateFilter()
	assert.Equal(t, 120, got.Hue)
	assert.Equal(t, 100, got.Saturation)
	assert.Equal(t, 100, got.Brightness)
}

func TestAddFillColor(t *testing.T) {
	store := variants.NewTestSQLiteStore(t)
	s, err := editor.NewSession(store, "icons", "x", `<svg><path d="M0 0"/></svg>`)
	require.NoError(t, err)

	got := s.AddFillColor("#fa0")
	assert.Equal(t, `<svg><path fill="#ffaa00" d="M0 0"/></svg>`, got)
	assert.Equal(t, editor.StateCustom, s.State())
	require.Len(t, s.Entries(), 1)
}

func TestReplaceCurrentColor(t *testing.T) {
	store := variants.NewTestSQLiteStore(t)
	s, err := editor.NewSession(store, "icons", "x", `<path fill="currentColor"/>`)
	require.NoError(t, err)

	got := s.ReplaceCurrentColor("#336699")
	assert.Equal(t, `<path fill="#336699"/>`, got)
	assert.Equal(t, "#336699", s.Profile().Mapping["currentcolor"])
}

func TestSaveAndApplyVariant(t *testing.T) {
	s, _ := newTestSession(t)
	s.CommitColor("#ff0000", "#123456")
	s.SaveVariant("dark")
	assert.Equal(t, editor.StateApplied, s.State())
	assert.Equal(t, "dark", s.AppliedVariant())

	s.ApplyBaseline()
	assert.Equal(t, editor.StateBaseline, s.State())
	assert.Equal(t, testMarkup, s.Markup())

	got := s.ApplyVariant(0)
	assert.Contains(t, got, "#123456")
	assert.Equal(t, "dark", s.AppliedVariant())
}

func TestApplyVariantIdempotent(t *testing.T) {
	s, _ := newTestSession(t)
	s.CommitColor("#ff0000", "#123456")
	s.SaveVariant("dark")

	once := s.ApplyVariant(0)
	twice := s.ApplyVariant(0)
	assert.Equal(t, once, twice)
}

func TestApplyVariantFromCustomState(t *testing.T) {
	s, _ := newTestSession(t)
	s.CommitColor("#ff0000", "#123456")
	s.SaveVariant("dark")
	s.ApplyBaseline()

	// wander off to an unrelated custom color, then apply the variant: the
	// remap puts every slot where the variant says.
	s.CommitColor("#00ff00", "#0f0f0f")
	got := s.ApplyVariant(0)
	assert.Contains(t, got, "#123456")
	assert.Contains(t, got, "#00ff00")
	assert.NotContains(t, got, "#0f0f0f")
}

func TestApplyVariantOutOfRangeIsNoop(t *testing.T) {
	s, _ := newTestSession(t)
	got := s.ApplyVariant(7)
	assert.Equal(t, testMarkup, got)
	assert.Equal(t, editor.StateBaseline, s.State())
}

func TestApplyVariantSharedPrefixOnly(t *testing.T) {
	store := variants.NewTestSQLiteStore(t)
	p := *variants.NewProfile("x", []string{"#ff0000", "#00ff00"})
	p.SaveVariant("short", []string{"#111111"})
	require.NoError(t, store.Put("icons", p))

	s, err := editor.NewSession(store, "icons", "x", `<path fill="#ff0000" stroke="#00ff00"/>`)
	require.NoError(t, err)

	// a variant shorter than the baseline remaps only the overlap
	got := s.ApplyVariant(0)
	assert.Equal(t, `<path fill="#111111" stroke="#00ff00"/>`, got)
	assert.Equal(t, []string{"#111111", "#00ff00"}, s.Profile().CurrentColors())
}

func TestApplyVariantSwappedPalette(t *testing.T) {
	store := variants.NewTestSQLiteStore(t)
	p := *variants.NewProfile("x", []string{"#ff0000", "#00ff00"})
	p.SaveVariant("swap", []string{"#00ff00", "#0000ff"})
	require.NoError(t, store.Put("icons", p))

	s, err := editor.NewSession(store, "icons", "x", `<path fill="#ff0000" stroke="#00ff00"/>`)
	require.NoError(t, err)

	// the variant reuses slot 0's new color as slot 1's old color; the markup
	// must end up showing exactly what the mapping records
	got := s.ApplyVariant(0)
	assert.Equal(t, `<path fill="#00ff00" stroke="#0000ff"/>`, got)
	assert.Equal(t, []string{"#00ff00", "#0000ff"}, s.Profile().CurrentColors())

	// and restoring the baseline walks the swap back in one pass too
	assert.Equal(t, `<path fill="#ff0000" stroke="#00ff00"/>`, s.ApplyBaseline())
	assert.Equal(t, []string{"#ff0000", "#00ff00"}, s.Profile().CurrentColors())
}

func TestDefaultVariantLifecycle(t *testing.T) {
	s, _ := newTestSession(t)
	s.SaveVariant("dark")
	s.SetDefaultVariant("dark")
	assert.Equal(t, "dark", s.Profile().DefaultVariant)

	s.DeleteVariant(0)
	assert.Equal(t, "", s.Profile().DefaultVariant, "deleting the default reverts to baseline")

	// deleting out of range and naming unknown variants are no-ops
	s.DeleteVariant(3)
	s.SetDefaultVariant("missing")
	assert.Equal(t, "", s.Profile().DefaultVariant)
}

func TestResetToOriginalRecapturesBaseline(t *testing.T) {
	s, _ := newTestSession(t)
	s.CommitColor("#ff0000", "#123456")

	got := s.ResetToOriginal()
	assert.Equal(t, testMarkup, got)
	assert.Equal(t, editor.StateBaseline, s.State())
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff"}, s.Profile().BaselineColors)
	assert.Empty(t, s.Profile().Mapping)
}

func TestFlushIsExplicit(t *testing.T) {
	s, store := newTestSession(t)
	s.CommitColor("#ff0000", "#123456")
	s.SaveVariant("dark")

	_, err := store.Get("icons", "home")
	assert.ErrorIs(t, err, variants.ErrNotFound, "nothing persists before Flush")

	require.NoError(t, s.Flush())
	got, err := store.Get("icons", "home")
	require.NoError(t, err)
	assert.Len(t, got.Variants, 1)
	assert.Equal(t, "#123456", got.Mapping["#ff0000"])
}

func TestSuggestVariantsAlignment(t *testing.T) {
	store := variants.NewTestSQLiteStore(t)
	s, err := editor.NewSession(store, "icons", "x", `<path fill="#808080" stroke="currentColor"/>`)
	require.NoError(t, err)

	suggestions := s.SuggestVariants()
	require.Len(t, suggestions, 3)
	for _, sug := range suggestions {
		require.Len(t, sug.Colors, 2, sug.Name)
		_, ok := color.Parse(sug.Colors[0])
		assert.True(t, ok, "%s: %q should be a parseable color", sug.Name, sug.Colors[0])
		assert.Equal(t, "currentcolor", sug.Colors[1], "markers keep their slot")
	}
}

func TestSaveSuggestionsBecomeVariants(t *testing.T) {
	s, _ := newTestSession(t)

	s.SaveSuggestions()

	p := s.Profile()
	require.Len(t, p.Variants, 3)
	names := []string{p.Variants[0].Name, p.Variants[1].Name, p.Variants[2].Name}
	assert.Equal(t, []string{"darker", "lighter", "complementary"}, names)

	// Saving suggestions leaves the shown colors alone.
	assert.Equal(t, testMarkup, s.Markup())

	// And a saved suggestion applies like any other variant.
	out := s.ApplyVariant(0)
	assert.NotEqual(t, testMarkup, out)
}
