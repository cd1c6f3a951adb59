package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Yurisurdi/flats/internal/errs"
	"github.com/Yurisurdi/flats/internal/model"
	"github.com/Yurisurdi/flats/internal/repository"
)

// In-memory fakes for the repository interfaces. Mutation errors can be
// injected per fake; reads always reflect the current slice contents.

type fakeClients struct {
	items []model.Client
}

var _ repository.Clients = (*fakeClients)(nil)

func (f *fakeClients) ListClients(context.Context) ([]model.Client, error) {
	return f.items, nil
}
func (f *fakeClients) GetClient(_ context.Context, id uuid.UUID) (*model.Client, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}
func (f *fakeClients) AddClient(_ context.Context, c model.Client) (uuid.UUID, error) {
	c.ID = uuid.Must(uuid.NewV4())
	f.items = append(f.items, c)
	return c.ID, nil
}
func (f *fakeClients) UpdateClient(_ context.Context, id uuid.UUID, upd model.ClientUpdate) error {
	for i := range f.items {
		if f.items[i].ID == id {
			upd.Apply(&f.items[i])
			return nil
		}
	}
	return errs.ErrNotFound
}
func (f *fakeClients) DeleteClient(_ context.Context, id uuid.UUID) error {
	kept := f.items[:0]
	for _, c := range f.items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	f.items = kept
	return nil
}

type fakeAgents struct {
	items []model.Agent
}

var _ repository.Agents = (*fakeAgents)(nil)

func (f *fakeAgents) ListAgents(context.Context) ([]model.Agent, error) { return f.items, nil }
func (f *fakeAgents) GetAgent(_ context.Context, id uuid.UUID) (*model.Agent, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			a := f.items[i]
			return &a, nil
		}
	}
	return nil, errs.ErrNotFound
}
func (f *fakeAgents) AddAgent(_ context.Context, a model.Agent) (uuid.UUID, error) {
	a.ID = uuid.Must(uuid.NewV4())
	f.items = append(f.items, a)
	return a.ID, nil
}
func (f *fakeAgents) UpdateAgent(_ context.Context, id uuid.UUID, upd model.AgentUpdate) error {
	for i := range f.items {
		if f.items[i].ID == id {
			upd.Apply(&f.items[i])
			return nil
		}
	}
	return errs.ErrNotFound
}
func (f *fakeAgents) DeleteAgent(_ context.Context, id uuid.UUID) error {
	kept := f.items[:0]
	for _, a := range f.items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	f.items = kept
	return nil
}

type fakeApartments struct {
	items     []model.Apartment
	updateErr error
}

var _ repository.Apartments = (*fakeApartments)(nil)

func (f *fakeApartments) ListApartments(context.Context) ([]model.Apartment, error) {
	return f.items, nil
}
func (f *fakeApartments) GetApartment(_ context.Context, id uuid.UUID) (*model.Apartment, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			a := f.items[i]
			return &a, nil
		}
	}
	return nil, errs.ErrNotFound
}
func (f *fakeApartments) AddApartment(_ context.Context, a model.Apartment) (uuid.UUID, error) {
	a.ID = uuid.Must(uuid.NewV4())
	f.items = append(f.items, a)
	return a.ID, nil
}
func (f *fakeApartments) UpdateApartment(_ context.Context, id uuid.UUID, upd model.ApartmentUpdate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.items {
		if f.items[i].ID == id {
			upd.Apply(&f.items[i])
			return nil
		}
	}
	return errs.ErrNotFound
}
func (f *fakeApartments) DeleteApartment(_ context.Context, id uuid.UUID) error {
	kept := f.items[:0]
	for _, a := range f.items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	f.items = kept
	return nil
}

type fakeBookings struct {
	byUser map[string][]model.Booking
	addErr error
}

var _ repository.Bookings = (*fakeBookings)(nil)

func (f *fakeBookings) ListBookings(_ context.Context, userID string) ([]model.Booking, error) {
	return f.byUser[userID], nil
}
func (f *fakeBookings) GetBooking(_ context.Context, userID string, id uuid.UUID) (*model.Booking, error) {
	for _, b := range f.byUser[userID] {
		if b.ID == id {
			c := b
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}
func (f *fakeBookings) BookingsByClient(_ context.Context, userID string, clientID uuid.UUID) ([]model.Booking, error) {
	out := []model.Booking{}
	for _, b := range f.byUser[userID] {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeBookings) AddBooking(_ context.Context, userID string, b model.Booking) (uuid.UUID, error) {
	if f.addErr != nil {
		return uuid.Nil, f.addErr
	}
	if f.byUser == nil {
		f.byUser = map[string][]model.Booking{}
	}
	b.ID = uuid.Must(uuid.NewV4())
	f.byUser[userID] = append(f.byUser[userID], b)
	return b.ID, nil
}
func (f *fakeBookings) UpdateBooking(_ context.Context, userID string, id uuid.UUID, upd model.BookingUpdate) error {
	list := f.byUser[userID]
	for i := range list {
		if list[i].ID == id {
			upd.Apply(&list[i])
			return nil
		}
	}
	return errs.ErrNotFound
}
func (f *fakeBookings) DeleteBooking(_ context.Context, userID string, id uuid.UUID) error {
	list := f.byUser[userID]
	kept := list[:0]
	for _, b := range list {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	f.byUser[userID] = kept
	return nil
}

type fakeSettings struct {
	byUser map[string]model.Settings
}

var _ repository.Settings = (*fakeSettings)(nil)

func (f *fakeSettings) GetSettings(_ context.Context, userID string) (model.Settings, error) {
	if s, ok := f.byUser[userID]; ok {
		return s, nil
	}
	return model.DefaultSettings(), nil
}
func (f *fakeSettings) UpdateSettings(_ context.Context, userID string, upd model.SettingsUpdate) (model.Settings, error) {
	s, err := f.GetSettings(context.Background(), userID)
	if err != nil {
		return model.Settings{}, err
	}
	upd.Apply(&s)
	if f.byUser == nil {
		f.byUser = map[string]model.Settings{}
	}
	f.byUser[userID] = s
	return s, nil
}

type fakeMedia struct {
	byID    map[string]model.MediaFile
	saveErr error

	deletedOwners []string
}

var _ repository.Media = (*fakeMedia)(nil)

func (f *fakeMedia) Save(_ context.Context, ownerID string, file model.MediaFile) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	if f.byID == nil {
		f.byID = map[string]model.MediaFile{}
	}
	id := uuid.Must(uuid.NewV4()).String()
	file.ID = id
	file.OwnerID = ownerID
	file.Size = int64(len(file.Data))
	f.byID[id] = file
	return id, nil
}
func (f *fakeMedia) Get(_ context.Context, id string) (*model.MediaFile, error) {
	file, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &file, nil
}
func (f *fakeMedia) ListByOwner(_ context.Context, ownerID string) ([]model.MediaFile, error) {
	out := []model.MediaFile{}
	for _, file := range f.byID {
		if file.OwnerID == ownerID {
			file.Data = nil
			out = append(out, file)
		}
	}
	return out, nil
}
func (f *fakeMedia) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}
func (f *fakeMedia) DeleteAllByOwner(_ context.Context, ownerID string) error {
	f.deletedOwners = append(f.deletedOwners, ownerID)
	for id, file := range f.byID {
		if file.OwnerID == ownerID {
			delete(f.byID, id)
		}
	}
	return nil
}
func (f *fakeMedia) TotalSize(context.Context) (int64, error) {
	var total int64
	for _, file := range f.byID {
		total += file.Size
	}
	return total, nil
}

type fakeRates struct {
	rate     float64
	fallback bool
}

var _ RateSource = (*fakeRates)(nil)

func (f *fakeRates) Rate(context.Context) (float64, bool) { return f.rate, f.fallback }
