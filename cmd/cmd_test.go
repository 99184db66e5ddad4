package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/iconforge/variants"
)

// writeTestLibrary lays out a temp icon library plus a config file pointing
// at it, and returns the config path.
func writeTestLibrary(t *testing.T, icons map[string]string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	libDir := filepath.Join(dir, "icons")
	require.NoError(t, os.MkdirAll(libDir, 0o755))
	for name, markup := range icons {
		require.NoError(t, os.WriteFile(filepath.Join(libDir, name+".svg"), []byte(markup), 0o644))
	}
	cfgPath := filepath.Join(dir, "iconforge.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("library = \""+libDir+"\"\n"), 0o644))
	return cfgPath, libDir
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestScanCmd(t *testing.T) {
	cfgPath, _ := writeTestLibrary(t, map[string]string{
		"home":   `<path fill="#ff0000" stroke="#ff0000"/>`,
		"search": `<path fill="none"/>`,
	})

	out := runCommand(t, "scan", "--config", cfgPath)
	assert.Contains(t, out, "home")
	assert.Contains(t, out, "#ff0000(fill)")
	assert.Contains(t, out, "#ff0000(stroke)")
	assert.Contains(t, out, "search")
}

func TestApplyCmd(t *testing.T) {
	cfgPath, _ := writeTestLibrary(t, map[string]string{
		"home": `<path fill="#ff0000"/>`,
	})

	out := runCommand(t, "apply", "--config", cfgPath, "--icon", "home", "--hue", "180")
	assert.Contains(t, out, `fill="#006d6d"`)
}

func TestApplyCmdWrite(t *testing.T) {
	cfgPath, libDir := writeTestLibrary(t, map[string]string{
		"home": `<path fill="#ff0000"/>`,
	})

	runCommand(t, "apply", "--config", cfgPath, "--icon", "home", "--hue", "180", "--write", "--save")

	data, err := os.ReadFile(filepath.Join(libDir, "home.svg"))
	require.NoError(t, err)
	assert.Equal(t, `<path fill="#006d6d"/>`, string(data))

	// --save flushed the profile next to the icons
	store, err := variants.NewFileStore(libDir)
	require.NoError(t, err)
	p, err := store.Get("icons", "home")
	require.NoError(t, err)
	assert.Equal(t, []string{"#ff0000"}, p.BaselineColors)
	assert.Equal(t, "#006d6d", p.Mapping["#ff0000"])
}

func TestApplyCmdUnknownIcon(t *testing.T) {
	cfgPath, _ := writeTestLibrary(t, map[string]string{
		"home": `<path fill="#ff0000"/>`,
	})

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"apply", "--config", cfgPath, "--icon", "ghost"})
	assert.Error(t, root.Execute())
}

func TestBundleCmd(t *testing.T) {
	cfgPath, libDir := writeTestLibrary(t, map[string]string{
		"home": `<path fill="#111111"/>`,
	})
	require.NoError(t, os.WriteFile(filepath.Join(libDir, "bundle.yaml"), []byte(`
name: web
icons:
  - icon: home
    variant: dark
`), 0o644))

	store, err := variants.NewFileStore(libDir)
	require.NoError(t, err)
	p := *variants.NewProfile("home", []string{"#111111"})
	p.SaveVariant("dark", []string{"#000000"})
	require.NoError(t, store.Put("icons", p))

	outDir := filepath.Join(t.TempDir(), "dist")
	out := runCommand(t, "bundle", "--config", cfgPath, "--out", outDir)
	assert.Contains(t, out, "home.svg")

	data, err := os.ReadFile(filepath.Join(outDir, "home.svg"))
	require.NoError(t, err)
	assert.Equal(t, `<path fill="#000000"/>`, string(data))
}

func TestEditCmd_Exists(t *testing.T) {
	rootCmd := NewRootCmd()
	cmd, _, err := rootCmd.Find([]string{"edit"})
	require.NoError(t, err)
	assert.Equal(t, "edit", cmd.Name())
}
