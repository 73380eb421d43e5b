// Package memory is an in-process repository. Collections are kept in their
// encoded form so every load goes through the same codec as durable storage.
package memory

import (
	"context"
	"sort"
	"sync"

	"say-to-plan/internal/repository"
)

// Repository keeps encoded collections in a map. It is safe for concurrent use.
type Repository struct {
	mu      sync.Mutex
	entries map[string][]byte
}

var (
	_ repository.Repository = (*Repository)(nil)
	_ repository.Inspector  = (*Repository)(nil)
)

// New returns an empty repository.
func New() *Repository {
	return &Repository{entries: make(map[string][]byte)}
}

// Load decodes the owner's collection; a missing owner has an empty one.
func (r *Repository) Load(ctx context.Context, ownerID string) ([]repository.TaskRecord, error) {
	key, err := repository.CollectionKey(ownerID)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	data, ok := r.entries[key]
	r.mu.Unlock()
	if !ok {
		return []repository.TaskRecord{}, nil
	}
	return repository.DecodeCollection(data)
}

// Save encodes records and replaces the owner's collection.
func (r *Repository) Save(ctx context.Context, ownerID string, records []repository.TaskRecord) error {
	key, err := repository.CollectionKey(ownerID)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := repository.EncodeCollection(records)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.entries[key] = data
	r.mu.Unlock()
	return nil
}

// Keys lists the stored collection keys.
func (r *Repository) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	return keys
}

// SchemaVersion is always 0; nothing is migrated in memory.
func (r *Repository) SchemaVersion(ctx context.Context) (int64, error) {
	return 0, ctx.Err()
}

// Owners lists owners with a stored collection in sorted order.
func (r *Repository) Owners(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	owners := make([]string, 0)
	for _, k := range r.Keys() {
		if owner, ok := repository.OwnerFromKey(k); ok {
			owners = append(owners, owner)
		}
	}
	sort.Strings(owners)
	return owners, nil
}

// Close is a no-op.
func (r *Repository) Close() error {
	return nil
}
