// Package repository defines the persistence adapter for task collections.
//
// Storage is a key-value layout: one entry per owner, holding the whole
// serialized collection. Keys are namespaced by owner id so partitions never mix.
package repository

import (
	"context"
	"strings"
	"time"

	"say-to-plan/internal/errors"
)

const collectionKeyPrefix = "saytoplan:tasks:"

// TaskRecord is the persisted shape of a single task.
// A nil DueDate is encoded as an absent field, never as the zero time.
type TaskRecord struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	OwnerID     string     `json:"ownerId"`
}

// Repository loads and saves the task collection of one owner at a time.
type Repository interface {
	// Load returns the owner's collection in stored order. A missing entry
	// yields an empty collection, not an error.
	Load(ctx context.Context, ownerID string) ([]TaskRecord, error)

	// Save replaces the owner's whole collection.
	Save(ctx context.Context, ownerID string, records []TaskRecord) error

	Close() error
}

// Inspector is implemented by repositories that can describe what they hold.
type Inspector interface {
	// SchemaVersion is the applied storage schema version, 0 when unversioned.
	SchemaVersion(ctx context.Context) (int64, error)
	// Owners lists the owners with a stored collection.
	Owners(ctx context.Context) ([]string, error)
}

// CollectionKey returns the storage key for ownerID's partition.
func CollectionKey(ownerID string) (string, error) {
	if strings.TrimSpace(ownerID) == "" {
		return "", errors.NewInvalidInputError("owner_id", ownerID, "owner id is required")
	}
	return collectionKeyPrefix + ownerID, nil
}

// OwnerFromKey is the inverse of CollectionKey.
func OwnerFromKey(key string) (string, bool) {
	owner, ok := strings.CutPrefix(key, collectionKeyPrefix)
	if !ok || owner == "" {
		return "", false
	}
	return owner, true
}
