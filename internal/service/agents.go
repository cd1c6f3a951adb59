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

// AgentService validates and persists agent records.
type AgentService struct {
	repo repository.Agents
}

// NewAgentService constructs an agent service.
func NewAgentService(repo repository.Agents) *AgentService {
	return &AgentService{repo: repo}
}

func (s *AgentService) List(ctx context.Context) ([]model.Agent, error) {
	return s.repo.ListAgents(ctx)
}

func (s *AgentService) Get(ctx context.Context, id uuid.UUID) (*model.Agent, error) {
	return s.repo.GetAgent(ctx, id)
}

// Add validates required fields and persists a new agent.
func (s *AgentService) Add(ctx context.Context, a model.Agent) (uuid.UUID, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return uuid.Nil, fmt.Errorf("%w: nome is required", errs.ErrValidation)
	}
	return s.repo.AddAgent(ctx, a)
}

// Update shallow-merges the set fields into the stored agent.
func (s *AgentService) Update(ctx context.Context, id uuid.UUID, upd model.AgentUpdate) error {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return fmt.Errorf("%w: nome must not be empty", errs.ErrValidation)
	}
	return s.repo.UpdateAgent(ctx, id, upd)
}

func (s *AgentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAgent(ctx, id)
}
