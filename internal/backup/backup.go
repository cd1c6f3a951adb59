// Package backup exports and imports the full data set as a single JSON
// document.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Yurisurdi/flats/internal/errs"
	"github.com/Yurisurdi/flats/internal/model"
	"github.com/Yurisurdi/flats/internal/repository"
)

// Service snapshots and restores the shared partition plus the active user's
// partition.
type Service struct {
	parts repository.Partitions
	now   func() time.Time
}

// NewService constructs a backup service.
func NewService(parts repository.Partitions) *Service {
	return &Service{parts: parts, now: time.Now}
}

// Export collects both partitions into a versioned document.
func (s *Service) Export(ctx context.Context, userID string) (*model.BackupDocument, error) {
	shared, err := s.parts.SharedSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.parts.UserSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.BackupDocument{
		Shared:     shared,
		User:       user,
		Config:     user.Settings,
		ExportDate: s.now().UTC(),
		Version:    model.BackupVersion,
	}, nil
}

// Import parses and validates the document fully before touching storage,
// then replaces both partitions wholesale. Malformed input leaves the
// partitions untouched.
func (s *Service) Import(ctx context.Context, userID string, data []byte) error {
	var doc model.BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrBadBackup, err)
	}
	if doc.Version != model.BackupVersion {
		return fmt.Errorf("%w: unsupported version %q", errs.ErrBadBackup, doc.Version)
	}

	if doc.Shared.Clients == nil {
		doc.Shared.Clients = []model.Client{}
	}
	if doc.Shared.Agents == nil {
		doc.Shared.Agents = []model.Agent{}
	}
	if doc.Shared.Apartments == nil {
		doc.Shared.Apartments = []model.Apartment{}
	}
	if doc.User.Bookings == nil {
		doc.User.Bookings = []model.Booking{}
	}

	if err := s.parts.ReplaceShared(ctx, doc.Shared); err != nil {
		return err
	}
	return s.parts.ReplaceUser(ctx, userID, doc.User)
}
