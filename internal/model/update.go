package model

import "github.com/gofrs/uuid/v5"

// Partial-update types. Each carries pointer fields; Apply performs a shallow
// merge onto an existing record, leaving nil fields untouched. This mirrors
// the stored-snapshot update semantics: top-level fields merge, list fields
// are replaced wholesale.

// ClientUpdate is a partial Client.
type ClientUpdate struct {
	Name      *string `json:"nome,omitempty"`
	Phone     *string `json:"telefone,omitempty"`
	WhatsApp  *string `json:"whatsapp,omitempty"`
	Email     *string `json:"email,omitempty"`
	Sexuality *string `json:"sexualidade,omitempty"`
	Notes     *string `json:"observacoes,omitempty"`
	Starred   *bool   `json:"estrela,omitempty"`
	Blocked   *bool   `json:"bloqueado,omitempty"`
}

// Apply merges the set fields onto c.
func (u ClientUpdate) Apply(c *Client) {
	setString(&c.Name, u.Name)
	setString(&c.Phone, u.Phone)
	setString(&c.WhatsApp, u.WhatsApp)
	setString(&c.Email, u.Email)
	setString(&c.Sexuality, u.Sexuality)
	setString(&c.Notes, u.Notes)
	setBool(&c.Starred, u.Starred)
	setBool(&c.Blocked, u.Blocked)
}

// AgentUpdate is a partial Agent.
type AgentUpdate struct {
	Name     *string  `json:"nome,omitempty"`
	WhatsApp *string  `json:"whatsapp,omitempty"`
	Cities   []string `json:"cidades,omitempty"`
}

// Apply merges the set fields onto a.
func (u AgentUpdate) Apply(a *Agent) {
	setString(&a.Name, u.Name)
	setString(&a.WhatsApp, u.WhatsApp)
	if u.Cities != nil {
		a.Cities = u.Cities
	}
}

// ApartmentUpdate is a partial Apartment.
type ApartmentUpdate struct {
	Landlord    *string  `json:"landlord,omitempty"`
	City        *string  `json:"cidade,omitempty"`
	Address     *string  `json:"endereco,omitempty"`
	Rooms       *int     `json:"quartos,omitempty"`
	WeeklyPrice *float64 `json:"valorSemanal,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Description *string  `json:"descricao,omitempty"`
	Photos      []Photo  `json:"fotos,omitempty"`
	VideoIDs    []string `json:"videoIds,omitempty"`
}

// Apply merges the set fields onto a.
func (u ApartmentUpdate) Apply(a *Apartment) {
	setString(&a.Landlord, u.Landlord)
	setString(&a.City, u.City)
	setString(&a.Address, u.Address)
	if u.Rooms != nil {
		a.Rooms = *u.Rooms
	}
	if u.WeeklyPrice != nil {
		a.WeeklyPrice = *u.WeeklyPrice
	}
	setString(&a.Status, u.Status)
	setString(&a.Description, u.Description)
	if u.Photos != nil {
		a.Photos = u.Photos
	}
	if u.VideoIDs != nil {
		a.VideoIDs = u.VideoIDs
	}
}

// BookingUpdate is a partial Booking. AgentID set to the nil UUID detaches
// the agent.
type BookingUpdate struct {
	ClientID      *uuid.UUID `json:"clienteId,omitempty"`
	ApartmentID   *uuid.UUID `json:"apartamentoId,omitempty"`
	AgentID       *uuid.UUID `json:"agenteId,omitempty"`
	CheckIn       *Date      `json:"checkIn,omitempty"`
	CheckOut      *Date      `json:"checkOut,omitempty"`
	RoomsRented   *int       `json:"quartosAlugados,omitempty"`
	TotalPrice    *float64   `json:"valorTotal,omitempty"`
	Commission    *float64   `json:"valorComissao,omitempty"`
	DepositAmount *float64   `json:"valorSinal,omitempty"`
	DepositPaid   *bool      `json:"sinalPago,omitempty"`
	DepositMethod *string    `json:"metodoPagamentoSinal,omitempty"`
	BalanceAmount *float64   `json:"valorRestante,omitempty"`
	BalancePaid   *bool      `json:"restantePago,omitempty"`
	BalanceMethod *string    `json:"metodoPagamentoRestante,omitempty"`
	PaymentNote   *string    `json:"observacaoPagamento,omitempty"`
	Status        *string    `json:"status,omitempty"`
}

// Apply merges the set fields onto b.
func (u BookingUpdate) Apply(b *Booking) {
	if u.ClientID != nil {
		b.ClientID = *u.ClientID
	}
	if u.ApartmentID != nil {
		b.ApartmentID = *u.ApartmentID
	}
	if u.AgentID != nil {
		if *u.AgentID == uuid.Nil {
			b.AgentID = nil
		} else {
			id := *u.AgentID
			b.AgentID = &id
		}
	}
	if u.CheckIn != nil {
		b.CheckIn = *u.CheckIn
	}
	if u.CheckOut != nil {
		b.CheckOut = *u.CheckOut
	}
	if u.RoomsRented != nil {
		b.RoomsRented = *u.RoomsRented
	}
	if u.TotalPrice != nil {
		b.TotalPrice = *u.TotalPrice
	}
	if u.Commission != nil {
		b.Commission = *u.Commission
	}
	if u.DepositAmount != nil {
		b.DepositAmount = *u.DepositAmount
	}
	setBool(&b.DepositPaid, u.DepositPaid)
	setString(&b.DepositMethod, u.DepositMethod)
	if u.BalanceAmount != nil {
		b.BalanceAmount = *u.BalanceAmount
	}
	setBool(&b.BalancePaid, u.BalancePaid)
	setString(&b.BalanceMethod, u.BalanceMethod)
	setString(&b.PaymentNote, u.PaymentNote)
	setString(&b.Status, u.Status)
}

// SettingsUpdate is a partial Settings.
type SettingsUpdate struct {
	DisplayName       *string  `json:"displayName,omitempty"`
	ProfileImage      *string  `json:"profileImage,omitempty"`
	Theme             *string  `json:"tema,omitempty"`
	DefaultCommission *float64 `json:"comissaoPadrao,omitempty"`
}

// Apply merges the set fields onto s.
func (u SettingsUpdate) Apply(s *Settings) {
	setString(&s.DisplayName, u.DisplayName)
	setString(&s.ProfileImage, u.ProfileImage)
	setString(&s.Theme, u.Theme)
	if u.DefaultCommission != nil {
		s.DefaultCommission = *u.DefaultCommission
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
