// Package storage implements the record store: a flat key–value space of
// named slots, each holding one serialized collection (users, orders, reset
// tokens, reviews, cart). Collections are always read and written as whole
// units; there is no record-level access below a slot.
//
// Two implementations are provided: SQLiteStore persists slots in a local
// SQLite database, MemoryStore keeps them in a map for tests and ephemeral
// runs.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Canonical slot keys. The names mirror the storage layout of the original
// storefront so an existing store remains readable.
const (
	SlotUsers       = "easeshop_users"
	SlotSession     = "easeshop_session"
	SlotResetTokens = "easeshop_reset_tokens"
	SlotOrders      = "orders"
	SlotCart        = "cartProductLS"
	SlotReviews     = "productReviews"
)

// Store is the persistence primitive the collections live on.
type Store interface {
	// Get returns the slot's raw bytes, or (nil, nil) if the slot is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the slot, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all slots keyed by name.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every slot.
	Clear(ctx context.Context) error

	// InTx runs fn against a transactional view of the store, committing on
	// success and rolling back on error where the backend supports it.
	InTx(ctx context.Context, fn func(Store) error) error
}

// LoadJSON reads the slot named key and decodes it into a value of type T.
// Absent slots and corrupt payloads both decode to the zero collection
// (fail-closed); only storage I/O errors are surfaced.
func LoadJSON[T any](ctx context.Context, s Store, key string) (T, error) {
	var v T

	raw, err := s.Get(ctx, key)
	if err != nil {
		return v, fmt.Errorf("failed to load slot %s: %w", key, err)
	}
	if len(raw) == 0 {
		return v, nil
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		// A corrupt slot reads as empty; the next save repairs it.
		var zero T
		return zero, nil
	}
	return v, nil
}

// SaveJSON serializes v and writes it to the slot named key, replacing the
// previous collection in full.
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save slot %s: %w", key, err)
	}
	return nil
}
