package repository

import (
	"context"

	"github.com/Yurisurdi/flats/internal/model"
)

// Media provides blob storage for files too large for the record store,
// indexed by owning apartment. Operations make one attempt each; callers
// surface failures to the user and do not retry.
type Media interface {
	// Save stores a blob for the owner and returns the assigned id.
	Save(ctx context.Context, ownerID string, f model.MediaFile) (string, error)
	// Get returns a blob including its payload.
	Get(ctx context.Context, id string) (*model.MediaFile, error)
	// ListByOwner returns the owner's blobs without payloads.
	ListByOwner(ctx context.Context, ownerID string) ([]model.MediaFile, error)
	// Delete removes one blob; deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
	// DeleteAllByOwner removes every blob owned by ownerID.
	DeleteAllByOwner(ctx context.Context, ownerID string) error
	// TotalSize returns the summed payload size across all blobs.
	TotalSize(ctx context.Context) (int64, error)
}
