package model

import (
	"testing"

	"github.com/gofrs/uuid/v5"
)

func strp(s string) *string        { return &s }
func boolp(b bool) *bool           { return &b }
func f64p(f float64) *float64      { return &f }
func uuidp(u uuid.UUID) *uuid.UUID { return &u }

func TestClientUpdate_ApplyIsShallow(t *testing.T) {
	t.Parallel()
	c := Client{Name: "Ana", Phone: "111", Starred: true}
	ClientUpdate{Phone: strp("222")}.Apply(&c)
	if c.Name != "Ana" || c.Phone != "222" || !c.Starred {
		t.Fatalf("unexpected merge result: %+v", c)
	}

	// Explicit false still lands.
	ClientUpdate{Starred: boolp(false)}.Apply(&c)
	if c.Starred {
		t.Fatal("Starred should be cleared")
	}
}

func TestApartmentUpdate_ListsReplaceWholesale(t *testing.T) {
	t.Parallel()
	a := Apartment{
		Landlord: "Marcos",
		Photos:   []Photo{{Name: "a.jpg"}, {Name: "b.jpg"}},
		VideoIDs: []string{"v1", "v2"},
	}
	ApartmentUpdate{VideoIDs: []string{"v3"}}.Apply(&a)
	if len(a.VideoIDs) != 1 || a.VideoIDs[0] != "v3" {
		t.Fatalf("VideoIDs not replaced: %v", a.VideoIDs)
	}
	if len(a.Photos) != 2 {
		t.Fatalf("Photos should be untouched: %v", a.Photos)
	}
}

func TestBookingUpdate_AgentDetach(t *testing.T) {
	t.Parallel()
	agent := uuid.Must(uuid.NewV4())
	b := Booking{AgentID: &agent, Commission: 100}

	other := uuid.Must(uuid.NewV4())
	BookingUpdate{AgentID: uuidp(other)}.Apply(&b)
	if b.AgentID == nil || *b.AgentID != other {
		t.Fatalf("agent should be replaced, got %v", b.AgentID)
	}

	BookingUpdate{AgentID: uuidp(uuid.Nil)}.Apply(&b)
	if b.AgentID != nil {
		t.Fatalf("nil uuid should detach the agent, got %v", b.AgentID)
	}
	if b.Commission != 100 {
		t.Fatalf("untouched field changed: %v", b.Commission)
	}
}

func TestBookingUpdate_PaymentFlags(t *testing.T) {
	t.Parallel()
	b := Booking{DepositAmount: 250, BalanceAmount: 600}
	BookingUpdate{
		DepositPaid:   boolp(true),
		DepositMethod: strp(PaymentTransfer),
		BalanceAmount: f64p(550),
	}.Apply(&b)
	if !b.DepositPaid || b.DepositMethod != PaymentTransfer {
		t.Fatalf("deposit fields not applied: %+v", b)
	}
	if b.BalanceAmount != 550 || b.BalancePaid {
		t.Fatalf("balance fields wrong: %+v", b)
	}
}

func TestSettingsUpdate_Apply(t *testing.T) {
	t.Parallel()
	s := DefaultSettings()
	SettingsUpdate{Theme: strp(ThemeDark), DefaultCommission: f64p(75)}.Apply(&s)
	if s.Theme != ThemeDark || s.DefaultCommission != 75 {
		t.Fatalf("unexpected settings: %+v", s)
	}
}
