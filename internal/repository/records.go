// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Yurisurdi/flats/internal/model"
)

// Clients provides CRUD access to the shared client records.
type Clients interface {
	// ListClients returns every client in the shared partition.
	ListClients(ctx context.Context) ([]model.Client, error)
	// GetClient loads one client by id.
	GetClient(ctx context.Context, id uuid.UUID) (*model.Client, error)
	// AddClient assigns a fresh id and creation timestamp, persists, and returns the id.
	AddClient(ctx context.Context, c model.Client) (uuid.UUID, error)
	// UpdateClient shallow-merges the set fields into the stored record.
	UpdateClient(ctx context.Context, id uuid.UUID, upd model.ClientUpdate) error
	// DeleteClient removes the record; deleting an unknown id is a no-op.
	DeleteClient(ctx context.Context, id uuid.UUID) error
}

// Agents provides CRUD access to the shared agent records.
type Agents interface {
	ListAgents(ctx context.Context) ([]model.Agent, error)
	GetAgent(ctx context.Context, id uuid.UUID) (*model.Agent, error)
	AddAgent(ctx context.Context, a model.Agent) (uuid.UUID, error)
	UpdateAgent(ctx context.Context, id uuid.UUID, upd model.AgentUpdate) error
	DeleteAgent(ctx context.Context, id uuid.UUID) error
}

// Apartments provides CRUD access to the shared apartment records.
type Apartments interface {
	ListApartments(ctx context.Context) ([]model.Apartment, error)
	GetApartment(ctx context.Context, id uuid.UUID) (*model.Apartment, error)
	AddApartment(ctx context.Context, a model.Apartment) (uuid.UUID, error)
	UpdateApartment(ctx context.Context, id uuid.UUID, upd model.ApartmentUpdate) error
	DeleteApartment(ctx context.Context, id uuid.UUID) error
}

// Bookings provides CRUD access to a user's booking records. Bookings are not
// shared across logins; every call is scoped by userID.
type Bookings interface {
	ListBookings(ctx context.Context, userID string) ([]model.Booking, error)
	GetBooking(ctx context.Context, userID string, id uuid.UUID) (*model.Booking, error)
	// BookingsByClient returns the user's bookings referencing the client.
	BookingsByClient(ctx context.Context, userID string, clientID uuid.UUID) ([]model.Booking, error)
	AddBooking(ctx context.Context, userID string, b model.Booking) (uuid.UUID, error)
	UpdateBooking(ctx context.Context, userID string, id uuid.UUID, upd model.BookingUpdate) error
	DeleteBooking(ctx context.Context, userID string, id uuid.UUID) error
}

// Settings provides access to the per-user settings singleton.
type Settings interface {
	// GetSettings returns the user's settings with defaults applied.
	GetSettings(ctx context.Context, userID string) (model.Settings, error)
	// UpdateSettings shallow-merges the set fields and returns the result.
	UpdateSettings(ctx context.Context, userID string, upd model.SettingsUpdate) (model.Settings, error)
}

// Partitions exposes whole-partition snapshots for export/import. Replace
// operations overwrite the partition wholesale.
type Partitions interface {
	SharedSnapshot(ctx context.Context) (model.SharedPartition, error)
	ReplaceShared(ctx context.Context, p model.SharedPartition) error
	UserSnapshot(ctx context.Context, userID string) (model.UserPartition, error)
	ReplaceUser(ctx context.Context, userID string, p model.UserPartition) error
}

// RecordStore is the full record-store facade: two JSON partitions (shared
// and per-user) behind typed per-entity operations. There is no transactional
// guarantee across partitions.
type RecordStore interface {
	Clients
	Agents
	Apartments
	Bookings
	Settings
	Partitions
}
