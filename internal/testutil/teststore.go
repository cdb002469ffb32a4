package testutil

import (
	"testing"

	"github.com/linyuchen/gantry/internal/store"
)

// NewTestStore creates an in-memory store with the schema applied. The store
// is closed when the test completes.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}
