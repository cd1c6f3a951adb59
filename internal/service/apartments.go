package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/Yurisurdi/flats/internal/errs"
	"github.com/Yurisurdi/flats/internal/model"
	"github.com/Yurisurdi/flats/internal/repository"
)

func validApartmentStatus(s string) bool {
	switch s {
	case model.ApartmentAvailable, model.ApartmentOccupied, model.ApartmentRenovation:
		return true
	}
	return false
}

// ApartmentService validates and persists apartment records, and owns the
// cascade into the media store: the store itself never deletes blobs, so the
// service does it explicitly when an apartment goes away.
type ApartmentService struct {
	repo  repository.Apartments
	media repository.Media
}

// NewApartmentService constructs an apartment service.
func NewApartmentService(repo repository.Apartments, media repository.Media) *ApartmentService {
	return &ApartmentService{repo: repo, media: media}
}

func (s *ApartmentService) List(ctx context.Context) ([]model.Apartment, error) {
	return s.repo.ListApartments(ctx)
}

func (s *ApartmentService) Get(ctx context.Context, id uuid.UUID) (*model.Apartment, error) {
	return s.repo.GetApartment(ctx, id)
}

// Add validates required fields and persists a new apartment.
func (s *ApartmentService) Add(ctx context.Context, a model.Apartment) (uuid.UUID, error) {
	a.Landlord = strings.TrimSpace(a.Landlord)
	a.City = strings.TrimSpace(a.City)
	if a.Landlord == "" {
		return uuid.Nil, fmt.Errorf("%w: landlord is required", errs.ErrValidation)
	}
	if a.City == "" {
		return uuid.Nil, fmt.Errorf("%w: cidade is required", errs.ErrValidation)
	}
	if a.Status == "" {
		a.Status = model.ApartmentAvailable
	}
	if !validApartmentStatus(a.Status) {
		return uuid.Nil, fmt.Errorf("%w: unknown status %q", errs.ErrValidation, a.Status)
	}
	if a.Rooms < 1 {
		a.Rooms = 1
	}
	return s.repo.AddApartment(ctx, a)
}

// Update shallow-merges the set fields into the stored apartment.
func (s *ApartmentService) Update(ctx context.Context, id uuid.UUID, upd model.ApartmentUpdate) error {
	if upd.Status != nil && !validApartmentStatus(*upd.Status) {
		return fmt.Errorf("%w: unknown status %q", errs.ErrValidation, *upd.Status)
	}
	return s.repo.UpdateApartment(ctx, id, upd)
}

// Delete removes the apartment and cascade-deletes its media blobs. The blob
// cleanup is best-effort after the record is gone; a media-store failure is
// reported but the apartment stays deleted.
func (s *ApartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteApartment(ctx, id); err != nil {
		return err
	}
	return s.media.DeleteAllByOwner(ctx, id.String())
}

// AttachVideo stores a video blob for the apartment and records its id on
// the apartment's video list.
func (s *ApartmentService) AttachVideo(ctx context.Context, id uuid.UUID, f model.MediaFile) (string, error) {
	apt, err := s.repo.GetApartment(ctx, id)
	if err != nil {
		return "", err
	}
	if len(f.Data) == 0 {
		return "", fmt.Errorf("%w: empty file", errs.ErrValidation)
	}
	mediaID, err := s.media.Save(ctx, id.String(), f)
	if err != nil {
		return "", err
	}
	videoIDs := append(append([]string{}, apt.VideoIDs...), mediaID)
	if err := s.repo.UpdateApartment(ctx, id, model.ApartmentUpdate{VideoIDs: videoIDs}); err != nil {
		return "", err
	}
	return mediaID, nil
}

// DetachVideo deletes one blob and strips its id from the owning apartment's
// video list. A dangling owner id is tolerated: the blob is removed anyway.
func (s *ApartmentService) DetachVideo(ctx context.Context, mediaID string) error {
	f, err := s.media.Get(ctx, mediaID)
	if err != nil {
		return err
	}
	if err := s.media.Delete(ctx, mediaID); err != nil {
		return err
	}

	ownerID, err := uuid.FromString(f.OwnerID)
	if err != nil {
		return nil
	}
	apt, err := s.repo.GetApartment(ctx, ownerID)
	if err != nil {
		return nil
	}
	videoIDs := []string{}
	for _, v := range apt.VideoIDs {
		if v != mediaID {
			videoIDs = append(videoIDs, v)
		}
	}
	return s.repo.UpdateApartment(ctx, ownerID, model.ApartmentUpdate{VideoIDs: videoIDs})
}

// Videos lists the apartment's stored blobs, metadata only.
func (s *ApartmentService) Videos(ctx context.Context, id uuid.UUID) ([]model.MediaFile, error) {
	return s.media.ListByOwner(ctx, id.String())
}

// Video returns one blob with payload, for download.
func (s *ApartmentService) Video(ctx context.Context, mediaID string) (*model.MediaFile, error) {
	return s.media.Get(ctx, mediaID)
}

// MediaUsage returns the total size of the media store.
func (s *ApartmentService) MediaUsage(ctx context.Context) (int64, error) {
	return s.media.TotalSize(ctx)
}
