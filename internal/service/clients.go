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

// ClientService validates and persists client records.
type ClientService struct {
	repo repository.Clients
}

// NewClientService constructs a client service.
func NewClientService(repo repository.Clients) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) List(ctx context.Context) ([]model.Client, error) {
	return s.repo.ListClients(ctx)
}

func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return s.repo.GetClient(ctx, id)
}

// Add validates required fields and persists a new client.
func (s *ClientService) Add(ctx context.Context, c model.Client) (uuid.UUID, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return uuid.Nil, fmt.Errorf("%w: nome is required", errs.ErrValidation)
	}
	return s.repo.AddClient(ctx, c)
}

// Update shallow-merges the set fields into the stored client.
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, upd model.ClientUpdate) error {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return fmt.Errorf("%w: nome must not be empty", errs.ErrValidation)
	}
	return s.repo.UpdateClient(ctx, id, upd)
}

// Delete removes a client. Bookings referencing it are left in place and
// display a placeholder afterwards.
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteClient(ctx, id)
}
