package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/linyuchen/gantry/internal/store"
)

// loadDoc reads and unmarshals the JSON document under key. The boolean is
// false when the key is absent or the document is corrupt; corruption is
// logged and treated as absence so a bad document degrades to the seed
// instead of wedging the dataset.
func loadDoc[T any](ctx context.Context, st *store.Store, key string, out *T) (bool, error) {
	raw, ok, err := st.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("repository: discarding corrupt document %q: %v", key, err)
		return false, nil
	}
	return true, nil
}

// saveDoc marshals v and writes it under key, replacing the whole document.
func saveDoc(ctx context.Context, st *store.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding dataset %q: %w", key, err)
	}
	if err := st.Put(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("saving dataset %q: %w", key, err)
	}
	return nil
}
