// Package model defines domain entities used by services and repositories.
//
// JSON tags follow the persisted partition layout, which predates this
// codebase: record fields keep their original Portuguese wire names so that
// previously exported backups remain importable.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Booking status values as stored on the wire.
const (
	BookingPending   = "pendente"
	BookingConfirmed = "confirmada"
	BookingCancelled = "cancelada"
	BookingCompleted = "finalizada"
)

// Apartment status values.
const (
	ApartmentAvailable  = "disponivel"
	ApartmentOccupied   = "ocupado"
	ApartmentRenovation = "reforma"
)

// Payment methods.
const (
	PaymentCash     = "dinheiro"
	PaymentTransfer = "transferencia"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultCommissionPerRoom is the commission charged per rented room when a
// booking does not set one explicitly (GBP).
const DefaultCommissionPerRoom = 50

// Client is a guest record in the shared partition.
type Client struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	Phone     string    `json:"telefone,omitempty"`
	WhatsApp  string    `json:"whatsapp,omitempty"`
	Email     string    `json:"email,omitempty"`
	Sexuality string    `json:"sexualidade,omitempty"`
	Notes     string    `json:"observacoes,omitempty"`
	Starred   bool      `json:"estrela"`
	Blocked   bool      `json:"bloqueado"`
	CreatedAt time.Time `json:"dataCadastro"`
}

// Agent is a partner agent record in the shared partition.
type Agent struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	WhatsApp  string    `json:"whatsapp,omitempty"`
	Cities    []string  `json:"cidades"`
	CreatedAt time.Time `json:"dataCadastro"`
}

// Photo is an inline image attachment stored with its apartment. Large video
// files live in the media store instead; see Apartment.VideoIDs.
type Photo struct {
	Name string `json:"name"`
	Mime string `json:"type"`
	Data string `json:"data"` // data URL
}

// Apartment is a rentable flat record in the shared partition.
type Apartment struct {
	ID          uuid.UUID `json:"id"`
	Landlord    string    `json:"landlord"`
	City        string    `json:"cidade"`
	Address     string    `json:"endereco,omitempty"`
	Rooms       int       `json:"quartos"`
	WeeklyPrice float64   `json:"valorSemanal"`
	Status      string    `json:"status"`
	Description string    `json:"descricao,omitempty"`
	Photos      []Photo   `json:"fotos"`
	VideoIDs    []string  `json:"videoIds"`
	CreatedAt   time.Time `json:"dataCadastro"`
}

// Booking reserves an apartment for a client over a date range, carrying the
// two-part payment state (deposit at reservation, balance at check-in) and
// the agent commission. Bookings live in the per-user partition.
//
// Referenced client/apartment/agent ids may dangle after deletions; readers
// fall back to a placeholder label rather than failing.
type Booking struct {
	ID            uuid.UUID  `json:"id"`
	ClientID      uuid.UUID  `json:"clienteId"`
	ApartmentID   uuid.UUID  `json:"apartamentoId"`
	AgentID       *uuid.UUID `json:"agenteId,omitempty"`
	CheckIn       Date       `json:"checkIn"`
	CheckOut      Date       `json:"checkOut"`
	RoomsRented   int        `json:"quartosAlugados"`
	TotalPrice    float64    `json:"valorTotal"`
	Commission    float64    `json:"valorComissao"`
	DepositAmount float64    `json:"valorSinal"`
	DepositPaid   bool       `json:"sinalPago"`
	DepositMethod string     `json:"metodoPagamentoSinal,omitempty"`
	BalanceAmount float64    `json:"valorRestante"`
	BalancePaid   bool       `json:"restantePago"`
	BalanceMethod string     `json:"metodoPagamentoRestante,omitempty"`
	PaymentNote   string     `json:"observacaoPagamento,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"dataCadastro"`
}

// Covers reports whether day falls inside the booking's stay, bounds included.
func (b Booking) Covers(day Date) bool {
	return !day.Before(b.CheckIn) && !day.After(b.CheckOut)
}

// Settings holds per-user preferences.
type Settings struct {
	DisplayName       string  `json:"displayName,omitempty"`
	ProfileImage      string  `json:"profileImage,omitempty"` // data URL
	Theme             string  `json:"tema"`
	DefaultCommission float64 `json:"comissaoPadrao"`
}

// DefaultSettings returns the settings applied to a user partition that has
// never been written.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeLight, DefaultCommission: DefaultCommissionPerRoom}
}

// MediaFile is a blob held in the media store, owned by an apartment. Its
// lifecycle is independent from the apartment's inline photo list.
type MediaFile struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	MimeType  string    `json:"mimeType"`
	Size      int64     `json:"size"`
	Data      []byte    `json:"data,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SharedPartition is the record set visible to every logged-in user.
type SharedPartition struct {
	Clients    []Client    `json:"clientes"`
	Agents     []Agent     `json:"agentes"`
	Apartments []Apartment `json:"apartamentos"`
}

// EmptyShared returns a shared partition with non-nil collections, the shape
// a read of a missing partition yields.
func EmptyShared() SharedPartition {
	return SharedPartition{
		Clients:    []Client{},
		Agents:     []Agent{},
		Apartments: []Apartment{},
	}
}

// UserPartition is the record set scoped to a single user.
type UserPartition struct {
	Bookings []Booking `json:"reservas"`
	Settings Settings  `json:"configuracoes"`
}

// EmptyUser returns a user partition with defaults applied.
func EmptyUser() UserPartition {
	return UserPartition{Bookings: []Booking{}, Settings: DefaultSettings()}
}

// Session identifies an authenticated user for the lifetime of a token.
type Session struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Name      string    `json:"nome"`
	Role      string    `json:"role"`
	LoginTime time.Time `json:"loginTime"`
}

// BackupDocument is the export/import envelope: both partitions plus the
// active user's settings, tagged with a format version.
type BackupDocument struct {
	Shared     SharedPartition `json:"shared"`
	User       UserPartition   `json:"user"`
	Config     Settings        `json:"config"`
	ExportDate time.Time       `json:"exportDate"`
	Version    string          `json:"version"`
}

// BackupVersion is the only accepted format version tag.
const BackupVersion = "1.0"
