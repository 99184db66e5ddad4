package variants

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned by Store.Get for icons with no saved profile.
var ErrNotFound = errors.New("profile not found")

// isNotFound reports whether err indicates a missing profile, locally or
// from a remote store response.
func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || (err != nil && strings.Contains(err.Error(), "not found"))
}

// Store persists icon color profiles keyed by icon name within a library.
// Writes are last-write-wins; concurrent sessions are not merged.
type Store interface {
	List(library string) ([]Profile, error)
	Get(library, icon string) (Profile, error)
	Put(library string, p Profile) error
	Delete(library, icon string) error
	Ping() error
	Close() error
}

const variantsFile = "variants.json"

// FileStore keeps every profile of one library directory in a single
// variants.json document. The whole document is rewritten on each Put, which
// gives the last flush of a session the final word.
type FileStore struct {
	dir      string
	profiles map[string]Profile
}

// NewFileStore loads variants.json from dir. A missing file is an empty
// store, not an error.
func NewFileStore(dir string) (*FileStore, error) {
	s := &FileStore{dir: dir, profiles: make(map[string]Profile)}
	data, err := os.ReadFile(filepath.Join(dir, variantsFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read variants: %w", err)
	}
	if err := json.Unmarshal(data, &s.profiles); err != nil {
		return nil, fmt.Errorf("parse variants: %w", err)
	}
	if s.profiles == nil {
		s.profiles = make(map[string]Profile)
	}
	return s, nil
}

// List returns all profiles sorted by icon name. The library argument is
// ignored: a FileStore is scoped to the one library it was opened on.
func (s *FileStore) List(string) ([]Profile, error) {
	out := make([]Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Icon < out[j].Icon })
	return out, nil
}

func (s *FileStore) Get(_, icon string) (Profile, error) {
	p, ok := s.profiles[icon]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrNotFound, icon)
	}
	return p, nil
}

func (s *FileStore) Put(_ string, p Profile) error {
	s.profiles[p.Icon] = p
	return s.save()
}

func (s *FileStore) Delete(_, icon string) error {
	delete(s.profiles, icon)
	return s.save()
}

func (s *FileStore) Ping() error { return nil }

func (s *FileStore) Close() error { return nil }

func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal variants: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create library dir: %w", err)
	}
	path := filepath.Join(s.dir, variantsFile)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write variants: %w", err)
	}
	return nil
}
