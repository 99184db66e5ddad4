// Package library scans a directory of SVG sources and resolves icons to
// their final exported markup.
package library

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Icon is one SVG source found in a library directory.
type Icon struct {
	Name string // file stem, the key used by the variant store
	Path string
}

// Scan walks dir for *.svg files, named by file stem, sorted by name.
// Subdirectories are included; hidden directories are skipped.
func Scan(dir string) ([]Icon, error) {
	var icons []Icon
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".svg") {
			return nil
		}
		icons = append(icons, Icon{
			Name: strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())),
			Path: path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan library: %w", err)
	}
	sort.Slice(icons, func(i, j int) bool { return icons[i].Name < icons[j].Name })
	return icons, nil
}

// Read returns the markup of one icon.
func Read(icon Icon) (string, error) {
	data, err := os.ReadFile(icon.Path)
	if err != nil {
		return "", fmt.Errorf("read icon %s: %w", icon.Name, err)
	}
	return string(data), nil
}

// Write saves markup back to the icon's source file.
func Write(icon Icon, markup string) error {
	if err := os.WriteFile(icon.Path, []byte(markup), 0o644); err != nil {
		return fmt.Errorf("write icon %s: %w", icon.Name, err)
	}
	return nil
}
