// Package snapshots persists the last confirmed merged state per list,
// so the list stays viewable when every relay is unreachable.
package snapshots

import (
	"context"

	"github.com/okuleshov/supportlist/internal/client/models"
)

type Repository interface {
	// Save replaces the cached snapshot for the list.
	Save(ctx context.Context, listID string, l *models.List) error

	// Get returns the cached snapshot, or common.ErrListNotFound when
	// none is cached.
	Get(ctx context.Context, listID string) (*models.List, error)

	// Delete removes the cached snapshot; deleting a missing entry is
	// not an error.
	Delete(ctx context.Context, listID string) error
}
