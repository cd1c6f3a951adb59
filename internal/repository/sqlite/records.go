package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jmoiron/sqlx"

	"github.com/Yurisurdi/flats/internal/errs"
	"github.com/Yurisurdi/flats/internal/model"
)

const sharedKey = "shared"

func userKey(userID string) string { return "user_" + userID }

// RecordStore persists the two JSON partitions as full snapshots under fixed
// keys in the partitions table. A store-level mutex serializes mutations in
// process; there is no cross-process coordination (last write wins).
type RecordStore struct {
	db  *sqlx.DB
	mu  sync.Mutex
	now func() time.Time
}

// NewRecordStore constructs a record store over an opened database.
func NewRecordStore(db *sqlx.DB) *RecordStore {
	return &RecordStore{db: db, now: time.Now}
}

func (s *RecordStore) loadPartition(ctx context.Context, key string, dst any) (bool, error) {
	var data string
	err := s.db.GetContext(ctx, &data, `SELECT data FROM partitions WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load partition %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return false, fmt.Errorf("decode partition %s: %w", key, err)
	}
	return true, nil
}

func (s *RecordStore) savePartition(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode partition %s: %w", key, err)
	}
	const q = `
INSERT INTO partitions (key, data, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, q, key, string(data), s.now().UTC()); err != nil {
		return fmt.Errorf("save partition %s: %w", key, err)
	}
	return nil
}

// loadShared reads the shared partition; a missing row yields the empty
// default structure, never an error.
func (s *RecordStore) loadShared(ctx context.Context) (model.SharedPartition, error) {
	p := model.EmptyShared()
	if _, err := s.loadPartition(ctx, sharedKey, &p); err != nil {
		return p, err
	}
	return p, nil
}

// loadUser reads a user partition, normalizing never-written settings to
// their defaults.
func (s *RecordStore) loadUser(ctx context.Context, userID string) (model.UserPartition, error) {
	p := model.EmptyUser()
	found, err := s.loadPartition(ctx, userKey(userID), &p)
	if err != nil {
		return p, err
	}
	if found {
		if p.Bookings == nil {
			p.Bookings = []model.Booking{}
		}
		if p.Settings.Theme == "" {
			p.Settings.Theme = model.ThemeLight
		}
		if p.Settings.DefaultCommission == 0 {
			p.Settings.DefaultCommission = model.DefaultCommissionPerRoom
		}
	}
	return p, nil
}

func newID() (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate id: %w", err)
	}
	return id, nil
}

// ---- clients ----

func (s *RecordStore) ListClients(ctx context.Context) ([]model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return nil, err
	}
	return p.Clients, nil
}

func (s *RecordStore) GetClient(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return nil, err
	}
	for i := range p.Clients {
		if p.Clients[i].ID == id {
			c := p.Clients[i]
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (s *RecordStore) AddClient(ctx context.Context, c model.Client) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := newID()
	if err != nil {
		return uuid.Nil, err
	}
	c.ID = id
	c.CreatedAt = s.now().UTC()
	p.Clients = append(p.Clients, c)
	return id, s.savePartition(ctx, sharedKey, p)
}

func (s *RecordStore) UpdateClient(ctx context.Context, id uuid.UUID, upd model.ClientUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return err
	}
	for i := range p.Clients {
		if p.Clients[i].ID == id {
			upd.Apply(&p.Clients[i])
			return s.savePartition(ctx, sharedKey, p)
		}
	}
	return errs.ErrNotFound
}

func (s *RecordStore) DeleteClient(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return err
	}
	kept := p.Clients[:0]
	for _, c := range p.Clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	p.Clients = kept
	return s.savePartition(ctx, sharedKey, p)
}

// ---- agents ----

func (s *RecordStore) ListAgents(ctx context.Context) ([]model.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return nil, err
	}
	return p.Agents, nil
}

func (s *RecordStore) GetAgent(ctx context.Context, id uuid.UUID) (*model.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return nil, err
	}
	for i := range p.Agents {
		if p.Agents[i].ID == id {
			a := p.Agents[i]
			return &a, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (s *RecordStore) AddAgent(ctx context.Context, a model.Agent) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := newID()
	if err != nil {
		return uuid.Nil, err
	}
	a.ID = id
	a.CreatedAt = s.now().UTC()
	if a.Cities == nil {
		a.Cities = []string{}
	}
	p.Agents = append(p.Agents, a)
	return id, s.savePartition(ctx, sharedKey, p)
}

func (s *RecordStore) UpdateAgent(ctx context.Context, id uuid.UUID, upd model.AgentUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return err
	}
	for i := range p.Agents {
		if p.Agents[i].ID == id {
			upd.Apply(&p.Agents[i])
			return s.savePartition(ctx, sharedKey, p)
		}
	}
	return errs.ErrNotFound
}

func (s *RecordStore) DeleteAgent(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return err
	}
	kept := p.Agents[:0]
	for _, a := range p.Agents {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	p.Agents = kept
	return s.savePartition(ctx, sharedKey, p)
}

// ---- apartments ----

func (s *RecordStore) ListApartments(ctx context.Context) ([]model.Apartment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return nil, err
	}
	return p.Apartments, nil
}

func (s *RecordStore) GetApartment(ctx context.Context, id uuid.UUID) (*model.Apartment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return nil, err
	}
	for i := range p.Apartments {
		if p.Apartments[i].ID == id {
			a := p.Apartments[i]
			return &a, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (s *RecordStore) AddApartment(ctx context.Context, a model.Apartment) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := newID()
	if err != nil {
		return uuid.Nil, err
	}
	a.ID = id
	a.CreatedAt = s.now().UTC()
	if a.Photos == nil {
		a.Photos = []model.Photo{}
	}
	if a.VideoIDs == nil {
		a.VideoIDs = []string{}
	}
	p.Apartments = append(p.Apartments, a)
	return id, s.savePartition(ctx, sharedKey, p)
}

func (s *RecordStore) UpdateApartment(ctx context.Context, id uuid.UUID, upd model.ApartmentUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return err
	}
	for i := range p.Apartments {
		if p.Apartments[i].ID == id {
			upd.Apply(&p.Apartments[i])
			return s.savePartition(ctx, sharedKey, p)
		}
	}
	return errs.ErrNotFound
}

func (s *RecordStore) DeleteApartment(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadShared(ctx)
	if err != nil {
		return err
	}
	kept := p.Apartments[:0]
	for _, a := range p.Apartments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	p.Apartments = kept
	return s.savePartition(ctx, sharedKey, p)
}

// ---- bookings (per-user) ----

func (s *RecordStore) ListBookings(ctx context.Context, userID string) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.Bookings, nil
}

func (s *RecordStore) GetBooking(ctx context.Context, userID string, id uuid.UUID) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range p.Bookings {
		if p.Bookings[i].ID == id {
			b := p.Bookings[i]
			return &b, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (s *RecordStore) BookingsByClient(ctx context.Context, userID string, clientID uuid.UUID) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := []model.Booking{}
	for _, b := range p.Bookings {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *RecordStore) AddBooking(ctx context.Context, userID string, b model.Booking) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadUser(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := newID()
	if err != nil {
		return uuid.Nil, err
	}
	b.ID = id
	b.CreatedAt = s.now().UTC()
	p.Bookings = append(p.Bookings, b)
	return id, s.savePartition(ctx, userKey(userID), p)
}

func (s *RecordStore) UpdateBooking(ctx context.Context, userID string, id uuid.UUID, upd model.BookingUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	for i := range p.Bookings {
		if p.Bookings[i].ID == id {
			upd.Apply(&p.Bookings[i])
			return s.savePartition(ctx, userKey(userID), p)
		}
	}
	return errs.ErrNotFound
}

func (s *RecordStore) DeleteBooking(ctx context.Context, userID string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	kept := p.Bookings[:0]
	for _, b := range p.Bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	p.Bookings = kept
	return s.savePartition(ctx, userKey(userID), p)
}

// ---- settings ----

func (s *RecordStore) GetSettings(ctx context.Context, userID string) (model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadUser(ctx, userID)
	if err != nil {
		return model.Settings{}, err
	}
	return p.Settings, nil
}

func (s *RecordStore) UpdateSettings(ctx context.Context, userID string, upd model.SettingsUpdate) (model.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.loadUser(ctx, userID)
	if err != nil {
		return model.Settings{}, err
	}
	upd.Apply(&p.Settings)
	if err := s.savePartition(ctx, userKey(userID), p); err != nil {
		return model.Settings{}, err
	}
	return p.Settings, nil
}

// ---- partition snapshots (export/import) ----

func (s *RecordStore) SharedSnapshot(ctx context.Context) (model.SharedPartition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadShared(ctx)
}

func (s *RecordStore) ReplaceShared(ctx context.Context, p model.SharedPartition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savePartition(ctx, sharedKey, p)
}

func (s *RecordStore) UserSnapshot(ctx context.Context, userID string) (model.UserPartition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUser(ctx, userID)
}

func (s *RecordStore) ReplaceUser(ctx context.Context, userID string, p model.UserPartition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savePartition(ctx, userKey(userID), p)
}
