package variants

import "testing"

// NewTestSQLiteStore returns an in-memory profile store scoped to the test,
// closed automatically when it finishes. Exported so the editor, ui and cmd
// tests can exercise sessions against a real store backend.
func NewTestSQLiteStore(t testing.TB) Store {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("open in-memory profile store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
