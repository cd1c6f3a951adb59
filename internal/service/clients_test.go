package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Yurisurdi/flats/internal/errs"
	"github.com/Yurisurdi/flats/internal/model"
)

func TestClients_AddRequiresName(t *testing.T) {
	t.Parallel()
	s := NewClientService(&fakeClients{})
	ctx := context.Background()

	if _, err := s.Add(ctx, model.Client{Name: "  "}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("blank name: want ErrValidation, got %v", err)
	}

	id, err := s.Add(ctx, model.Client{Name: "  Ana  ", Starred: true})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Ana" {
		t.Errorf("name not trimmed: %q", got.Name)
	}
	if !got.Starred {
		t.Error("flag lost on add")
	}
}

func TestClients_UpdateRejectsEmptyName(t *testing.T) {
	t.Parallel()
	repo := &fakeClients{}
	s := NewClientService(repo)
	ctx := context.Background()

	id, err := s.Add(ctx, model.Client{Name: "Ana"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	empty := ""
	if err := s.Update(ctx, id, model.ClientUpdate{Name: &empty}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("empty name: want ErrValidation, got %v", err)
	}
	// A nil name pointer is fine: other fields update alone.
	phone := "07700 900002"
	if err := s.Update(ctx, id, model.ClientUpdate{Phone: &phone}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := s.Get(ctx, id)
	if got.Name != "Ana" || got.Phone != phone {
		t.Fatalf("merge wrong: %+v", got)
	}
}

func TestAgents_Validation(t *testing.T) {
	t.Parallel()
	s := NewAgentService(&fakeAgents{})
	ctx := context.Background()

	if _, err := s.Add(ctx, model.Agent{}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("blank name: want ErrValidation, got %v", err)
	}
	id, err := s.Add(ctx, model.Agent{Name: "Paula", Cities: []string{"Londres", "Manchester"}})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	empty := " "
	if err := s.Update(ctx, id, model.AgentUpdate{Name: &empty}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("blank name update: want ErrValidation, got %v", err)
	}
	if err := s.Update(ctx, id, model.AgentUpdate{Cities: []string{"Leeds"}}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := s.Get(ctx, id)
	if len(got.Cities) != 1 || got.Cities[0] != "Leeds" {
		t.Fatalf("cities not replaced: %v", got.Cities)
	}
}

func TestSettings_Update(t *testing.T) {
	t.Parallel()
	s := NewSettingsService(&fakeSettings{})
	ctx := context.Background()

	bad := "solarized"
	if _, err := s.Update(ctx, "u1", model.SettingsUpdate{Theme: &bad}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("unknown theme: want ErrValidation, got %v", err)
	}
	neg := -5.0
	if _, err := s.Update(ctx, "u1", model.SettingsUpdate{DefaultCommission: &neg}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("negative commission: want ErrValidation, got %v", err)
	}

	dark := model.ThemeDark
	cfg, err := s.Update(ctx, "u1", model.SettingsUpdate{Theme: &dark})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if cfg.Theme != model.ThemeDark {
		t.Errorf("theme: got %q", cfg.Theme)
	}
	if cfg.DefaultCommission != model.DefaultCommissionPerRoom {
		t.Errorf("default commission lost: %v", cfg.DefaultCommission)
	}
}
